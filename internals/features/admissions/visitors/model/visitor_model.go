package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VisitorModel mencatat tamu yang datang ke cabang.
// reference_contact berisi kontak ad-hoc (nama/telepon/alamat) dalam JSONB
// kalau reference bukan entitas yang terdaftar.
type VisitorModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VisitingDate     time.Time      `gorm:"type:date;not null;index" json:"visiting_date"`
	StudentName      string         `gorm:"size:150;not null" json:"student_name" validate:"required,min=2,max=150"`
	MobileNumber     string         `gorm:"size:20;not null" json:"mobile_number" validate:"required,min=7,max=20"`
	Reference        string         `gorm:"size:150" json:"reference"`
	ReferenceContact datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"reference_contact"`
	CourseID         *uuid.UUID     `gorm:"type:uuid" json:"course_id,omitempty"`
	InTime           string         `gorm:"size:20" json:"in_time"`
	OutTime          string         `gorm:"size:20" json:"out_time"`
	AttendedBy       *uuid.UUID     `gorm:"type:uuid" json:"attended_by,omitempty"`
	Remarks          string         `gorm:"type:text" json:"remarks"`
	BranchID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	InquiryID        *uuid.UUID     `gorm:"type:uuid" json:"inquiry_id,omitempty"`
	IsDeleted        bool           `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VisitorModel) TableName() string {
	return "visitors"
}
