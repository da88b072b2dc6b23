package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/users/user_rights/dto"
	"lembagaku_backend/internals/features/users/user_rights/model"
	helper "lembagaku_backend/internals/helpers"
)

type UserRightController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserRightController(db *gorm.DB) *UserRightController {
	return &UserRightController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/a/user-rights/:userId
func (ctl *UserRightController) GetByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId invalid")
	}

	var ur model.UserRightModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&ur).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// tidak ada row = matrix kosong, bukan error
			return helper.JsonOK(c, "User rights fetched", dto.UserRightResponse{
				UserID:      userID,
				Permissions: []model.PagePermission{},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp, err := dto.FromModel(&ur)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Matrix permission rusak")
	}
	return helper.JsonOK(c, "User rights fetched", resp)
}

// POST /api/a/user-rights — replace seluruh matrix satu user
func (ctl *UserRightController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertUserRightRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	for _, p := range req.Permissions {
		if !constants.IsValidPage(p.Page) {
			return helper.JsonFromError(c, helper.NewValidation("permissions", "page tidak dikenal: "+p.Page))
		}
	}

	var ur model.UserRightModel
	err := ctl.DB.Where("user_id = ?", req.UserID).First(&ur).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ur = model.UserRightModel{UserID: req.UserID}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ur.SetPagePermissions(req.Permissions); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "permissions tidak bisa di-encode")
	}

	if err := ctl.DB.Save(&ur).Error; err != nil {
		log.Println("[ERROR] Gagal simpan user_rights:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	resp, _ := dto.FromModel(&ur)
	log.Printf("[SUCCESS] Matrix permission user %s diperbarui (%d halaman)", req.UserID, len(req.Permissions))
	return helper.JsonUpdated(c, "User rights saved", resp)
}
