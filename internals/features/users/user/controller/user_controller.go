package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "lembagaku_backend/internals/features/users/auth/helper"
	"lembagaku_backend/internals/features/users/user/dto"
	"lembagaku_backend/internals/features/users/user/model"
	helper "lembagaku_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/a/users?search=&role=&page=&per_page=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := uc.DB.Model(&model.UserModel{})
	q = helper.ApplySearch(q, c.Query("search"), "user_name", "email")
	q = helper.ApplyEnum(q, "role", c.Query("role"))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.JsonList(c, "Users fetched successfully",
		dto.FromUserModels(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	)
}

// GET /api/a/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "User fetched successfully", dto.FromUserModel(&user))
}

// POST /api/a/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := uc.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
		BranchID: req.BranchID,
		IsActive: true,
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] Failed to create user:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	log.Printf("[SUCCESS] Created user %s (%s)", user.Email, user.Role)
	return helper.JsonCreated(c, "User created successfully", dto.FromUserModel(&user))
}

// PUT /api/a/users/:id
// Password kosong TIDAK menimpa hash lama.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := uc.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	user.UserName = req.UserName
	user.Email = req.Email
	user.Role = req.Role
	user.BranchID = req.BranchID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := authHelper.HashPassword(req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		user.Password = hashed
	}

	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] Failed to update user:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	return helper.JsonUpdated(c, "User updated successfully", dto.FromUserModel(&user))
}

// DELETE /api/a/users/:id — hapus akun login.
// Akun yang ter-link ke karyawan sebaiknya dihapus lewat modul employee
// supaya pasangannya ikut dibereskan.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	res := uc.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Failed to delete user:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	log.Printf("[SUCCESS] Deleted user %s", id)
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}
