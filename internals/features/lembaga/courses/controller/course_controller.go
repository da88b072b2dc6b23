package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/courses/model"
	helper "lembagaku_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

// includeDeleted hanya dihormati untuk superadmin
func includeDeletedParam(c *fiber.Ctx) bool {
	return c.Query("include_deleted") == "true" &&
		constants.IsPrivilegedRole(helper.GetRoleFromToken(c))
}

// GET /api/a/courses
func (ctl *CourseController) GetCourses(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.CourseModel{})
	q = helper.WithDeleted(q, "is_deleted", includeDeletedParam(c))
	q = helper.ApplySearch(q, c.Query("search"), "name", "code")

	var courses []model.CourseModel
	if err := q.Order("name ASC").Find(&courses).Error; err != nil {
		log.Println("[ERROR] Gagal ambil courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data course")
	}
	return helper.JsonOK(c, "Courses fetched successfully", courses)
}

// GET /api/a/courses/:id
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course id invalid")
	}

	var course model.CourseModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", includeDeletedParam(c))
	if err := q.First(&course, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.JsonOK(c, "Course fetched successfully", course)
}

// POST /api/a/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := c.BodyParser(&course); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&course); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	course.ID = uuid.Nil
	course.IsDeleted = false
	if err := ctl.DB.Create(&course).Error; err != nil {
		log.Println("[ERROR] Gagal buat course:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	log.Printf("[SUCCESS] Course %s (%s) dibuat", course.Name, course.Code)
	return helper.JsonCreated(c, "Course created successfully", course)
}

// PUT /api/a/courses/:id
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course id invalid")
	}

	var existing model.CourseModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var input model.CourseModel
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	existing.Name = input.Name
	existing.Code = input.Code
	existing.Duration = input.Duration
	existing.Fees = input.Fees

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}
	return helper.JsonUpdated(c, "Course updated successfully", existing)
}

// DELETE /api/a/courses/:id — soft delete, idempotent
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course id invalid")
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	// sudah terhapus = no-op sukses
	if !course.IsDeleted {
		if err := ctl.DB.Model(&course).Update("is_deleted", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonDeleted(c, "Course deleted successfully", fiber.Map{"id": id})
}

// POST /api/a/courses/:id/restore
func (ctl *CourseController) RestoreCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course id invalid")
	}

	var course model.CourseModel
	if err := ctl.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	if course.IsDeleted {
		if err := ctl.DB.Model(&course).Update("is_deleted", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		course.IsDeleted = false
	}
	return helper.JsonUpdated(c, "Course restored successfully", course)
}
