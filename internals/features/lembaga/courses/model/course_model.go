package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150"`
	Code      string    `gorm:"size:20;not null;uniqueIndex:uni_courses_code" json:"code" validate:"required,min=2,max=20"`
	Duration  string    `gorm:"size:50" json:"duration"`
	Fees      float64   `gorm:"type:numeric(12,2);not null;default:0" json:"fees" validate:"gte=0"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
