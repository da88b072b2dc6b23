package model

import (
	"time"

	"github.com/google/uuid"
)

// Sumber dan status inquiry adalah himpunan string tertutup.
// Transisi status SENGAJA tidak dibatasi (Closed boleh dibuka lagi) —
// aturan produk belum memutuskan status terminal.
var (
	InquirySources  = []string{"Walk-in", "Social Media", "Reference", "Online", "DSR"}
	InquiryStatuses = []string{"Pending", "Follow-up", "Converted", "Closed"}
)

func IsValidInquirySource(s string) bool {
	for _, v := range InquirySources {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidInquiryStatus(s string) bool {
	for _, v := range InquiryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type InquiryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName       string     `gorm:"size:100;not null" json:"first_name" validate:"required,min=2,max=100"`
	LastName        string     `gorm:"size:100" json:"last_name" validate:"omitempty,max=100"`
	Phone           string     `gorm:"size:20;not null" json:"phone" validate:"required,min=7,max=20"`
	Email           string     `gorm:"size:255" json:"email" validate:"omitempty,email"`
	CourseID        *uuid.UUID `gorm:"type:uuid" json:"course_id,omitempty"`
	Source          string     `gorm:"size:30;not null" json:"source"`
	Status          string     `gorm:"size:30;not null;default:'Pending'" json:"status"`
	Remarks         string     `gorm:"type:text" json:"remarks"`
	FollowUpDate    *time.Time `gorm:"type:date" json:"follow_up_date,omitempty"`
	FollowUpDetails string     `gorm:"type:text" json:"follow_up_details"`
	AllocatedTo     *uuid.UUID `gorm:"type:uuid" json:"allocated_to,omitempty"`
	PhotoURL        string     `gorm:"size:500" json:"photo_url"`
	IsDeleted       bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InquiryModel) TableName() string {
	return "inquiries"
}
