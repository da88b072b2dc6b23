package model

import (
	"time"

	"github.com/google/uuid"
)

// Mode pembayaran yang dikenal kasir.
var PaymentModes = []string{"Cash", "UPI", "Bank Transfer", "Cheque"}

func IsValidPaymentMode(m string) bool {
	for _, v := range PaymentModes {
		if v == m {
			return true
		}
	}
	return false
}

// FeeReceiptModel: kwitansi pembayaran. Append-only — tidak pernah dihapus,
// soft maupun hard; koreksi dilakukan dengan kwitansi baru.
type FeeReceiptModel struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReceiptNo     string    `gorm:"size:30;not null;uniqueIndex:uni_fee_receipts_receipt_no" json:"receipt_no"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID      uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	AmountPaid    float64   `gorm:"type:numeric(12,2);not null" json:"amount_paid"`
	PaymentMode   string    `gorm:"size:20;not null" json:"payment_mode"`
	TransactionID string    `gorm:"size:100" json:"transaction_id"`
	Remarks       string    `gorm:"size:255" json:"remarks"`
	Date          time.Time `gorm:"not null;autoCreateTime" json:"date"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FeeReceiptModel) TableName() string {
	return "fee_receipts"
}
