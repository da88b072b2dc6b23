package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/batches/model"
	helper "lembagaku_backend/internals/helpers"
)

type BatchController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/a/batches?active=true
func (ctl *BatchController) GetBatches(c *fiber.Ctx) error {
	includeDeleted := c.Query("include_deleted") == "true" &&
		constants.IsPrivilegedRole(helper.GetRoleFromToken(c))

	q := ctl.DB.Model(&model.BatchModel{})
	q = helper.WithDeleted(q, "is_deleted", includeDeleted)
	q = helper.ApplyEnum(q, "is_active", c.Query("active"))
	q = helper.ApplySearch(q, c.Query("search"), "name")

	var batches []model.BatchModel
	if err := q.Order("name ASC").Find(&batches).Error; err != nil {
		log.Println("[ERROR] Gagal ambil batches:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data batch")
	}
	return helper.JsonOK(c, "Batches fetched successfully", batches)
}

// POST /api/a/batches
func (ctl *BatchController) CreateBatch(c *fiber.Ctx) error {
	var batch model.BatchModel
	if err := c.BodyParser(&batch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&batch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	batch.ID = uuid.Nil
	batch.IsDeleted = false
	if err := ctl.DB.Create(&batch).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}
	return helper.JsonCreated(c, "Batch created successfully", batch)
}

// PUT /api/a/batches/:id
func (ctl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch id invalid")
	}

	var existing model.BatchModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Batch tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var input model.BatchModel
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing.Name = input.Name
	existing.Time = input.Time
	existing.IsActive = input.IsActive

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}
	return helper.JsonUpdated(c, "Batch updated successfully", existing)
}

// DELETE /api/a/batches/:id — soft delete, idempotent
func (ctl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch id invalid")
	}

	var batch model.BatchModel
	if err := ctl.DB.First(&batch, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch tidak ditemukan")
	}

	if !batch.IsDeleted {
		if err := ctl.DB.Model(&batch).Update("is_deleted", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonDeleted(c, "Batch deleted successfully", fiber.Map{"id": id})
}

// POST /api/a/batches/:id/restore
func (ctl *BatchController) RestoreBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "batch id invalid")
	}

	var batch model.BatchModel
	if err := ctl.DB.First(&batch, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch tidak ditemukan")
	}

	if batch.IsDeleted {
		if err := ctl.DB.Model(&batch).Update("is_deleted", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		batch.IsDeleted = false
	}
	return helper.JsonUpdated(c, "Batch restored successfully", batch)
}
