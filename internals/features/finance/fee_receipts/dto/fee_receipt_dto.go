package dto

import (
	"github.com/google/uuid"

	"lembagaku_backend/internals/features/finance/fee_receipts/model"
)

type CreateReceiptRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentMode   string    `json:"payment_mode" validate:"required"`
	TransactionID string    `json:"transaction_id" validate:"omitempty,max=100"`
	Remarks       string    `json:"remarks" validate:"omitempty,max=255"`
}

// StudentLedgerResponse: kwitansi terbaru dulu + angka rencana biaya milik
// siswa apa adanya. Saldo TIDAK dihitung di sini — sumber angka due/total
// adalah record siswa.
type StudentLedgerResponse struct {
	StudentID   uuid.UUID               `json:"student_id"`
	StudentName string                  `json:"student_name"`
	RegNo       string                  `json:"reg_no"`
	TotalFees   float64                 `json:"total_fees"`
	DueFees     float64                 `json:"due_fees"`
	Receipts    []model.FeeReceiptModel `json:"receipts"`
}
