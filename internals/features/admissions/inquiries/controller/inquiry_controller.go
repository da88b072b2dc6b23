package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/admissions/inquiries/dto"
	"lembagaku_backend/internals/features/admissions/inquiries/model"
	helper "lembagaku_backend/internals/helpers"
)

type InquiryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInquiryController(db *gorm.DB) *InquiryController {
	return &InquiryController{
		DB:        db,
		Validator: validator.New(),
	}
}

func includeDeletedParam(c *fiber.Ctx) bool {
	return c.Query("include_deleted") == "true" &&
		constants.IsPrivilegedRole(helper.GetRoleFromToken(c))
}

func validateEnums(req *dto.CreateInquiryRequest) error {
	if !model.IsValidInquirySource(req.Source) {
		return helper.NewValidation("source", "source tidak dikenal")
	}
	if req.Status != "" && !model.IsValidInquiryStatus(req.Status) {
		return helper.NewValidation("status", "status tidak dikenal")
	}
	return nil
}

// GET /api/a/inquiries
// Filter: status, source, course_id, allocated_to, from/to (created),
// follow_up_from/follow_up_to, search (nama/phone).
func (ctl *InquiryController) GetInquiries(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.InquiryModel{})
	q = helper.WithDeleted(q, "is_deleted", includeDeletedParam(c))
	q = helper.ApplyEnum(q, "status", c.Query("status"))
	q = helper.ApplyEnum(q, "source", c.Query("source"))
	q = helper.ApplyUUID(q, "course_id", c.Query("course_id"))
	q = helper.ApplyUUID(q, "allocated_to", c.Query("allocated_to"))
	q = helper.ApplyDateRange(q, "created_at", c.Query("from"), c.Query("to"))
	q = helper.ApplyDateRange(q, "follow_up_date", c.Query("follow_up_from"), c.Query("follow_up_to"))
	q = helper.ApplySearch(q, c.Query("search"), "first_name", "last_name", "phone")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data inquiry")
	}

	var inquiries []model.InquiryModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&inquiries).Error; err != nil {
		log.Println("[ERROR] Gagal ambil inquiries:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data inquiry")
	}

	return helper.JsonList(c, "Inquiries fetched successfully", inquiries,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/inquiries/:id
func (ctl *InquiryController) GetInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "inquiry id invalid")
	}

	var inquiry model.InquiryModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", includeDeletedParam(c))
	if err := q.First(&inquiry, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}
	return helper.JsonOK(c, "Inquiry fetched successfully", inquiry)
}

// POST /api/a/inquiries
func (ctl *InquiryController) CreateInquiry(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validateEnums(&req); err != nil {
		return helper.JsonFromError(c, err)
	}

	inquiry := req.ToModel()
	if err := ctl.DB.Create(&inquiry).Error; err != nil {
		log.Println("[ERROR] Gagal buat inquiry:", err)
		return helper.JsonFromError(c, helper.FromPgError(err))
	}

	log.Printf("[SUCCESS] Inquiry %s %s (%s) dibuat", inquiry.FirstName, inquiry.LastName, inquiry.Source)
	return helper.JsonCreated(c, "Inquiry created successfully", inquiry)
}

// PUT /api/a/inquiries/:id
func (ctl *InquiryController) UpdateInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "inquiry id invalid")
	}

	var existing model.InquiryModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validateEnums(&req); err != nil {
		return helper.JsonFromError(c, err)
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.CourseID = req.CourseID
	existing.Source = req.Source
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.Remarks = req.Remarks
	existing.FollowUpDate = req.FollowUpDate
	existing.FollowUpDetails = req.FollowUpDetails
	existing.AllocatedTo = req.AllocatedTo

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonFromError(c, helper.FromPgError(err))
	}
	return helper.JsonUpdated(c, "Inquiry updated successfully", existing)
}

// POST /api/a/inquiries/:id/photo — multipart field "photo" (≤5MB,
// jpeg/png/webp). Pipeline decode → resize → webp → upload, URL disimpan.
func (ctl *InquiryController) UploadInquiryPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "inquiry id invalid")
	}

	var inquiry model.InquiryModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", false)
	if err := q.First(&inquiry, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonFromError(c, helper.NewValidation("photo", "file photo wajib disertakan"))
	}

	url, err := helper.UploadPhoto("inquiries", fileHeader)
	if err != nil {
		log.Println("[ERROR] Gagal upload foto inquiry:", err)
		return helper.JsonFromError(c, err)
	}

	if err := ctl.DB.Model(&inquiry).Update("photo_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	inquiry.PhotoURL = url
	return helper.JsonUpdated(c, "Inquiry photo uploaded successfully", inquiry)
}

// DELETE /api/a/inquiries/:id — soft delete, idempotent
func (ctl *InquiryController) DeleteInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "inquiry id invalid")
	}

	var inquiry model.InquiryModel
	if err := ctl.DB.First(&inquiry, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}

	if !inquiry.IsDeleted {
		if err := ctl.DB.Model(&inquiry).Update("is_deleted", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonDeleted(c, "Inquiry deleted successfully", fiber.Map{"id": id})
}

// POST /api/a/inquiries/:id/restore
func (ctl *InquiryController) RestoreInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "inquiry id invalid")
	}

	var inquiry model.InquiryModel
	if err := ctl.DB.First(&inquiry, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}

	if inquiry.IsDeleted {
		if err := ctl.DB.Model(&inquiry).Update("is_deleted", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		inquiry.IsDeleted = false
	}
	return helper.JsonUpdated(c, "Inquiry restored successfully", inquiry)
}
