package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/fee_receipts/dto"
	"lembagaku_backend/internals/features/finance/fee_receipts/model"
	studentModel "lembagaku_backend/internals/features/lembaga/students/model"
	helper "lembagaku_backend/internals/helpers"
	"lembagaku_backend/internals/helpers/sequence"
)

type FeeReceiptService struct {
	DB *gorm.DB
}

func NewFeeReceiptService(db *gorm.DB) *FeeReceiptService {
	return &FeeReceiptService{DB: db}
}

// CreateReceipt menerbitkan kwitansi untuk siswa hidup (non-deleted).
// amount harus > 0; course diambil dari record siswa. receipt_no
// dialokasikan atomik; tabrakan 23505 di receipt_no dicoba ulang sekali.
func (s *FeeReceiptService) CreateReceipt(req dto.CreateReceiptRequest, createdBy uuid.UUID) (*model.FeeReceiptModel, error) {
	if req.AmountPaid <= 0 {
		return nil, helper.NewValidation("amount_paid", "jumlah bayar harus lebih dari 0")
	}
	if !model.IsValidPaymentMode(req.PaymentMode) {
		return nil, helper.NewValidation("payment_mode", "mode pembayaran tidak dikenal")
	}

	var student studentModel.StudentModel
	q := helper.WithDeleted(s.DB, "is_deleted", false)
	if err := q.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}

	receipt := model.FeeReceiptModel{
		StudentID:     student.ID,
		CourseID:      student.CourseID,
		AmountPaid:    req.AmountPaid,
		PaymentMode:   req.PaymentMode,
		TransactionID: req.TransactionID,
		Remarks:       req.Remarks,
		CreatedBy:     createdBy,
	}

	for attempt := 1; attempt <= 2; attempt++ {
		receiptNo, err := sequence.NextReceiptNo(s.DB)
		if err != nil {
			return nil, err
		}
		receipt.ReceiptNo = receiptNo
		receipt.ID = uuid.Nil

		err = s.DB.Create(&receipt).Error
		if err == nil {
			log.Printf("[SUCCESS] Kwitansi %s diterbitkan untuk %s (%.2f %s)",
				receipt.ReceiptNo, student.RegNo, receipt.AmountPaid, receipt.PaymentMode)
			return &receipt, nil
		}

		mapped := helper.FromPgError(err)
		var conflict *helper.ConflictError
		if errors.As(mapped, &conflict) && conflict.Field == "receipt_no" && attempt == 1 {
			log.Printf("[WARN] receipt_no %s tabrakan, alokasi ulang", receipt.ReceiptNo)
			continue
		}
		return nil, mapped
	}

	return nil, helper.ErrGenerationConflict
}

// StudentLedger: semua kwitansi siswa, terbaru dulu, plus angka rencana
// biaya milik siswa (diteruskan mentah, bukan dihitung).
func (s *FeeReceiptService) StudentLedger(studentID uuid.UUID) (*dto.StudentLedgerResponse, error) {
	var student studentModel.StudentModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}

	var receipts []model.FeeReceiptModel
	if err := s.DB.Where("student_id = ?", studentID).
		Order("date DESC, created_at DESC").
		Find(&receipts).Error; err != nil {
		return nil, err
	}

	return &dto.StudentLedgerResponse{
		StudentID:   student.ID,
		StudentName: student.Name,
		RegNo:       student.RegNo,
		TotalFees:   student.TotalFees,
		DueFees:     student.DueFees,
		Receipts:    receipts,
	}, nil
}
