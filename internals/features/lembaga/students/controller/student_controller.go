package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/students/dto"
	"lembagaku_backend/internals/features/lembaga/students/model"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/sequence"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func includeDeletedParam(c *fiber.Ctx) bool {
	return c.Query("include_deleted") == "true" &&
		constants.IsPrivilegedRole(helper.GetRoleFromToken(c))
}

// GET /api/a/students
// Filter: course_id, batch_id, gender, active, search (name/father_name/phone),
// from/to (tanggal admission, inklusif dua arah).
func (ctl *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.StudentModel{})
	q = helper.WithDeleted(q, "is_deleted", includeDeletedParam(c))
	q = helper.ApplyUUID(q, "course_id", c.Query("course_id"))
	q = helper.ApplyUUID(q, "batch_id", c.Query("batch_id"))
	q = helper.ApplyEnum(q, "gender", c.Query("gender"))
	q = helper.ApplyEnum(q, "is_active", c.Query("active"))
	q = helper.ApplySearch(q, c.Query("search"), "name", "father_name", "phone")
	q = helper.ApplyDateRange(q, "admission_date", c.Query("from"), c.Query("to"))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}

	var students []model.StudentModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		log.Println("[ERROR] Gagal ambil students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}

	return helper.JsonList(c, "Students fetched successfully", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/students/:id
func (ctl *StudentController) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id invalid")
	}

	var student model.StudentModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", includeDeletedParam(c))
	if err := q.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	return helper.JsonOK(c, "Student fetched successfully", student)
}

// POST /api/a/students
// reg_no dialokasikan atomik per tahun. Kalau insert kena 23505 di reg_no
// (seharusnya tidak terjadi, tapi unique index tetap jadi jaring pengaman),
// coba sekali lagi dengan nomor baru.
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	student := req.ToModel()

	for attempt := 1; attempt <= 2; attempt++ {
		regNo, err := sequence.NextStudentRegNo(ctl.DB, time.Now())
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		student.RegNo = regNo
		student.ID = uuid.Nil

		err = ctl.DB.Create(&student).Error
		if err == nil {
			log.Printf("[SUCCESS] Student %s terdaftar dengan reg_no %s", student.Name, student.RegNo)
			return helper.JsonCreated(c, "Student created successfully", student)
		}

		mapped := helper.FromPgError(err)
		var conflict *helper.ConflictError
		if errors.As(mapped, &conflict) && conflict.Field == "reg_no" && attempt == 1 {
			log.Printf("[WARN] reg_no %s tabrakan, alokasi ulang", student.RegNo)
			continue
		}
		log.Println("[ERROR] Gagal buat student:", err)
		return helper.JsonFromError(c, mapped)
	}

	return helper.JsonFromError(c, helper.ErrGenerationConflict)
}

// PUT /api/a/students/:id — reg_no tidak pernah diubah lewat update.
func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id invalid")
	}

	var existing model.StudentModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(&existing)

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}
	return helper.JsonUpdated(c, "Student updated successfully", existing)
}

// DELETE /api/a/students/:id — soft delete, idempotent
func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id invalid")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	if !student.IsDeleted {
		if err := ctl.DB.Model(&student).Update("is_deleted", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"id": id})
}

// POST /api/a/students/:id/restore
func (ctl *StudentController) RestoreStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id invalid")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	if student.IsDeleted {
		if err := ctl.DB.Model(&student).Update("is_deleted", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		student.IsDeleted = false
	}
	return helper.JsonUpdated(c, "Student restored successfully", student)
}
