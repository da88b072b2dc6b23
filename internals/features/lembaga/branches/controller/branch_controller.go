package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/lembaga/branches/model"
	helper "lembagaku_backend/internals/helpers"
)

type BranchController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/a/branches
func (ctl *BranchController) GetBranches(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.BranchModel{})
	q = helper.ApplySearch(q, c.Query("search"), "name", "short_code", "city")

	var branches []model.BranchModel
	if err := q.Order("name ASC").Find(&branches).Error; err != nil {
		log.Println("[ERROR] Gagal ambil branches:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data branch")
	}

	return helper.JsonOK(c, "Branches fetched successfully", branches)
}

// GET /api/a/branches/:id
func (ctl *BranchController) GetBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "branch id invalid")
	}

	var branch model.BranchModel
	if err := ctl.DB.First(&branch, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Branch tidak ditemukan")
	}
	return helper.JsonOK(c, "Branch fetched successfully", branch)
}

// POST /api/a/branches
func (ctl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var branch model.BranchModel
	if err := c.BodyParser(&branch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&branch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	branch.ID = uuid.Nil // id selalu dari DB
	if err := ctl.DB.Create(&branch).Error; err != nil {
		log.Println("[ERROR] Gagal buat branch:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	log.Printf("[SUCCESS] Branch %s (%s) dibuat", branch.Name, branch.ShortCode)
	return helper.JsonCreated(c, "Branch created successfully", branch)
}

// PUT /api/a/branches/:id
func (ctl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "branch id invalid")
	}

	var existing model.BranchModel
	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var input model.BranchModel
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing.Name = input.Name
	existing.ShortCode = input.ShortCode
	existing.Phone = input.Phone
	existing.Mobile = input.Mobile
	existing.Email = input.Email
	existing.Address = input.Address
	existing.City = input.City
	existing.State = input.State
	existing.IsActive = input.IsActive

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	return helper.JsonUpdated(c, "Branch updated successfully", existing)
}
