package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/configs"
	"lembagaku_backend/internals/features/lembaga/attendance/dto"
	"lembagaku_backend/internals/features/lembaga/attendance/model"
	batchModel "lembagaku_backend/internals/features/lembaga/batches/model"
	studentModel "lembagaku_backend/internals/features/lembaga/students/model"
	helper "lembagaku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// uniquePerDay: kalau ATTENDANCE_UNIQUE_PER_DAY=true, absen kedua untuk
// (tanggal, siswa, batch) yang sama meng-update baris lama, bukan menambah.
// Default false — baris ganda diperbolehkan (mis. sesi ganda sehari).
func uniquePerDay() bool {
	return configs.GetEnv("ATTENDANCE_UNIQUE_PER_DAY", "false") == "true"
}

// POST /api/a/attendance
func (ctl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(req.Students) == 0 {
		return helper.JsonFromError(c, helper.NewValidation("students", "daftar siswa tidak boleh kosong"))
	}

	date, ok := helper.ParseDateParam(req.Date)
	if !ok {
		return helper.JsonFromError(c, helper.NewValidation("date", "format tanggal harus YYYY-MM-DD"))
	}

	var batch batchModel.BatchModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&batch, "id = ?", req.BatchID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Batch tidak ditemukan")
	}

	// course_id diambil dari data siswa saat absen dicatat (snapshot)
	studentIDs := make([]uuid.UUID, 0, len(req.Students))
	for _, e := range req.Students {
		studentIDs = append(studentIDs, e.StudentID)
	}
	var students []studentModel.StudentModel
	sq := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := helper.ApplyIDSubset(sq, "id", studentIDs).Find(&students).Error; err != nil {
		log.Println("[ERROR] Gagal ambil siswa untuk absen:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat absen")
	}
	courseByStudent := make(map[uuid.UUID]uuid.UUID, len(students))
	for _, s := range students {
		courseByStudent[s.ID] = s.CourseID
	}

	createdBy, _ := helper.GetUserIDFromToken(c)
	startOfDay := helper.StartOfDay(date)

	saved := make([]model.StudentAttendanceModel, 0, len(req.Students))
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Students {
			if _, known := courseByStudent[entry.StudentID]; !known {
				return helper.NewValidation("students", "student "+entry.StudentID.String()+" tidak ditemukan")
			}

			row := model.StudentAttendanceModel{
				Date:      startOfDay,
				BatchName: batch.Name,
				BatchTime: batch.Time,
				StudentID: entry.StudentID,
				CourseID:  courseByStudent[entry.StudentID],
				IsPresent: entry.IsPresent,
				Remarks:   entry.Remarks,
				CreatedBy: createdBy,
			}

			if uniquePerDay() {
				var existing model.StudentAttendanceModel
				err := tx.Where("date = ? AND student_id = ? AND batch_name = ?",
					startOfDay, entry.StudentID, batch.Name).
					First(&existing).Error
				if err == nil {
					existing.IsPresent = entry.IsPresent
					existing.Remarks = entry.Remarks
					existing.BatchTime = batch.Time
					if err := tx.Save(&existing).Error; err != nil {
						return err
					}
					saved = append(saved, existing)
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}

			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			saved = append(saved, row)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal mencatat absen:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	log.Printf("[SUCCESS] Absen %s batch %s: %d siswa", req.Date, batch.Name, len(saved))
	return helper.JsonCreated(c, "Attendance marked successfully", saved)
}

// GET /api/a/attendance
// Filter: from/to, batch_name, student_id, course_id (lewat subset id siswa:
// himpunan kosong → hasil kosong, bukan unfiltered).
func (ctl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Model(&model.StudentAttendanceModel{})
	q = helper.ApplyDateRange(q, "date", c.Query("from"), c.Query("to"))
	q = helper.ApplyEnum(q, "batch_name", c.Query("batch_name"))
	q = helper.ApplyUUID(q, "student_id", c.Query("student_id"))

	if courseRaw := c.Query("course_id"); courseRaw != "" {
		var ids []uuid.UUID
		sq := helper.WithDeleted(ctl.DB.Model(&studentModel.StudentModel{}), "is_deleted", false)
		sq = helper.ApplyUUID(sq, "course_id", courseRaw)
		if err := sq.Pluck("id", &ids).Error; err != nil {
			log.Println("[ERROR] Gagal resolve siswa per course:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absen")
		}
		q = helper.ApplyIDSubset(q, "student_id", ids)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absen")
	}

	var rows []model.StudentAttendanceModel
	if err := q.Order("date DESC, created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil absen:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absen")
	}

	return helper.JsonList(c, "Attendance fetched successfully", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/a/attendance/:id — koreksi satu baris absen. Tidak ada delete.
func (ctl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance id invalid")
	}

	var row model.StudentAttendanceModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data absen tidak ditemukan")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row.IsPresent = req.IsPresent
	row.Remarks = req.Remarks
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Attendance updated successfully", row)
}
