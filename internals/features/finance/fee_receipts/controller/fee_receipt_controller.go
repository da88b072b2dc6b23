package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/fee_receipts/dto"
	"lembagaku_backend/internals/features/finance/fee_receipts/model"
	"lembagaku_backend/internals/features/finance/fee_receipts/service"
	helper "lembagaku_backend/internals/helpers"
)

type FeeReceiptController struct {
	DB        *gorm.DB
	Service   *service.FeeReceiptService
	Validator *validator.Validate
}

func NewFeeReceiptController(db *gorm.DB) *FeeReceiptController {
	return &FeeReceiptController{
		DB:        db,
		Service:   service.NewFeeReceiptService(db),
		Validator: validator.New(),
	}
}

// GET /api/a/fee-receipts
// Filter: from/to (tanggal bayar), student_id, payment_mode, created_by.
func (ctl *FeeReceiptController) GetReceipts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeReceiptModel{})
	q = helper.ApplyDateRange(q, "date", c.Query("from"), c.Query("to"))
	q = helper.ApplyUUID(q, "student_id", c.Query("student_id"))
	q = helper.ApplyEnum(q, "payment_mode", c.Query("payment_mode"))
	q = helper.ApplyUUID(q, "created_by", c.Query("created_by"))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kwitansi")
	}

	var receipts []model.FeeReceiptModel
	if err := q.Order("date DESC, created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&receipts).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kwitansi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kwitansi")
	}

	return helper.JsonList(c, "Fee receipts fetched successfully", receipts,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/fee-receipts/:id
func (ctl *FeeReceiptController) GetReceipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "receipt id invalid")
	}

	var receipt model.FeeReceiptModel
	if err := ctl.DB.First(&receipt, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kwitansi tidak ditemukan")
	}
	return helper.JsonOK(c, "Fee receipt fetched successfully", receipt)
}

// POST /api/a/fee-receipts
func (ctl *FeeReceiptController) CreateReceipt(c *fiber.Ctx) error {
	var req dto.CreateReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	receipt, err := ctl.Service.CreateReceipt(req, createdBy)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Fee receipt created successfully", receipt)
}

// GET /api/a/students/:id/ledger
func (ctl *FeeReceiptController) GetStudentLedger(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id invalid")
	}

	ledger, err := ctl.Service.StudentLedger(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Student ledger fetched successfully", ledger)
}
