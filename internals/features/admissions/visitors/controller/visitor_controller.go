package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/admissions/visitors/dto"
	"lembagaku_backend/internals/features/admissions/visitors/model"
	helper "lembagaku_backend/internals/helpers"
)

type VisitorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVisitorController(db *gorm.DB) *VisitorController {
	return &VisitorController{
		DB:        db,
		Validator: validator.New(),
	}
}

func includeDeletedParam(c *fiber.Ctx) bool {
	return c.Query("include_deleted") == "true" &&
		constants.IsPrivilegedRole(helper.GetRoleFromToken(c))
}

// resolveBranch: superadmin boleh memilih branch lewat body; user biasa
// SELALU memakai branch dari tokennya sendiri.
func resolveBranch(c *fiber.Ctx, requested *uuid.UUID) (uuid.UUID, error) {
	if constants.IsPrivilegedRole(helper.GetRoleFromToken(c)) && requested != nil {
		return *requested, nil
	}
	branchID, ok := helper.GetBranchIDFromToken(c)
	if !ok {
		return uuid.Nil, helper.NewValidation("branch_id", "user tidak terikat ke branch mana pun")
	}
	return branchID, nil
}

// GET /api/a/visitors
// Filter: from/to (visiting_date), branch_id, attended_by, course_id,
// search (nama/nomor hp/reference).
func (ctl *VisitorController) GetVisitors(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.VisitorModel{})
	q = helper.WithDeleted(q, "is_deleted", includeDeletedParam(c))
	q = helper.ApplyDateRange(q, "visiting_date", c.Query("from"), c.Query("to"))
	q = helper.ApplyUUID(q, "branch_id", c.Query("branch_id"))
	q = helper.ApplyUUID(q, "attended_by", c.Query("attended_by"))
	q = helper.ApplyUUID(q, "course_id", c.Query("course_id"))
	q = helper.ApplySearch(q, c.Query("search"), "student_name", "mobile_number", "reference")

	// non-privileged hanya melihat visitor branch-nya sendiri
	if !constants.IsPrivilegedRole(helper.GetRoleFromToken(c)) {
		if branchID, ok := helper.GetBranchIDFromToken(c); ok {
			q = q.Where("branch_id = ?", branchID)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data visitor")
	}

	var visitors []model.VisitorModel
	if err := q.Order("visiting_date DESC, created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&visitors).Error; err != nil {
		log.Println("[ERROR] Gagal ambil visitors:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data visitor")
	}

	return helper.JsonList(c, "Visitors fetched successfully", visitors,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/visitors/:id
func (ctl *VisitorController) GetVisitor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "visitor id invalid")
	}

	var visitor model.VisitorModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", includeDeletedParam(c))
	if err := q.First(&visitor, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Visitor tidak ditemukan")
	}
	return helper.JsonOK(c, "Visitor fetched successfully", visitor)
}

// POST /api/a/visitors
func (ctl *VisitorController) CreateVisitor(c *fiber.Ctx) error {
	var req dto.VisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, ok := helper.ParseDateParam(req.VisitingDate)
	if !ok {
		return helper.JsonFromError(c, helper.NewValidation("visiting_date", "format tanggal harus YYYY-MM-DD"))
	}

	branchID, err := resolveBranch(c, req.BranchID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	visitor := model.VisitorModel{
		VisitingDate:     helper.StartOfDay(date),
		StudentName:      req.StudentName,
		MobileNumber:     req.MobileNumber,
		Reference:        req.Reference,
		ReferenceContact: req.ReferenceContact,
		CourseID:         req.CourseID,
		InTime:           req.InTime,
		OutTime:          req.OutTime,
		AttendedBy:       req.AttendedBy,
		Remarks:          req.Remarks,
		BranchID:         branchID,
		InquiryID:        req.InquiryID,
	}

	if err := ctl.DB.Create(&visitor).Error; err != nil {
		log.Println("[ERROR] Gagal buat visitor:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	log.Printf("[SUCCESS] Visitor %s dicatat di branch %s", visitor.StudentName, branchID)
	return helper.JsonCreated(c, "Visitor created successfully", visitor)
}

// PUT /api/a/visitors/:id
func (ctl *VisitorController) UpdateVisitor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "visitor id invalid")
	}

	var existing model.VisitorModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visitor tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.VisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, ok := helper.ParseDateParam(req.VisitingDate)
	if !ok {
		return helper.JsonFromError(c, helper.NewValidation("visiting_date", "format tanggal harus YYYY-MM-DD"))
	}

	existing.VisitingDate = helper.StartOfDay(date)
	existing.StudentName = req.StudentName
	existing.MobileNumber = req.MobileNumber
	existing.Reference = req.Reference
	existing.ReferenceContact = req.ReferenceContact
	existing.CourseID = req.CourseID
	existing.InTime = req.InTime
	existing.OutTime = req.OutTime
	existing.AttendedBy = req.AttendedBy
	existing.Remarks = req.Remarks
	existing.InquiryID = req.InquiryID

	// pindah branch hanya untuk privileged
	if constants.IsPrivilegedRole(helper.GetRoleFromToken(c)) && req.BranchID != nil {
		existing.BranchID = *req.BranchID
	}

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}
	return helper.JsonUpdated(c, "Visitor updated successfully", existing)
}

// DELETE /api/a/visitors/:id — soft delete, idempotent
func (ctl *VisitorController) DeleteVisitor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "visitor id invalid")
	}

	var visitor model.VisitorModel
	if err := ctl.DB.First(&visitor, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Visitor tidak ditemukan")
	}

	if !visitor.IsDeleted {
		if err := ctl.DB.Model(&visitor).Update("is_deleted", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonDeleted(c, "Visitor deleted successfully", fiber.Map{"id": id})
}

// POST /api/a/visitors/:id/restore
func (ctl *VisitorController) RestoreVisitor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "visitor id invalid")
	}

	var visitor model.VisitorModel
	if err := ctl.DB.First(&visitor, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Visitor tidak ditemukan")
	}

	if visitor.IsDeleted {
		if err := ctl.DB.Model(&visitor).Update("is_deleted", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		visitor.IsDeleted = false
	}
	return helper.JsonUpdated(c, "Visitor restored successfully", visitor)
}
