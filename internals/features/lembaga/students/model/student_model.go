package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel merepresentasikan tabel students.
// reg_no dialokasikan lewat helpers/sequence saat create, bukan dari input.
type StudentModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RegNo      string     `gorm:"size:30;not null;uniqueIndex:uni_students_reg_no" json:"reg_no"`
	Name       string     `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150"`
	FatherName string     `gorm:"size:150" json:"father_name"`
	Phone      string     `gorm:"size:20;not null;uniqueIndex:uni_students_phone" json:"phone" validate:"required,min=7,max=20"`
	CourseID   uuid.UUID  `gorm:"type:uuid;not null" json:"course_id" validate:"required"`
	BatchID    *uuid.UUID `gorm:"type:uuid" json:"batch_id,omitempty"`
	DOB        *time.Time `gorm:"type:date" json:"dob,omitempty"`
	Gender     string     `gorm:"size:10" json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address    string     `gorm:"type:text" json:"address"`

	// Rencana biaya milik siswa — ledger kwitansi hanya meneruskan angka ini,
	// tidak pernah menghitung ulang saldo.
	TotalFees float64 `gorm:"type:numeric(12,2);not null;default:0" json:"total_fees" validate:"gte=0"`
	DueFees   float64 `gorm:"type:numeric(12,2);not null;default:0" json:"due_fees" validate:"gte=0"`

	AdmissionDate time.Time `gorm:"not null;autoCreateTime" json:"admission_date"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	IsDeleted     bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
