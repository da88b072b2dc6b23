package model

import (
	"time"

	"github.com/google/uuid"
)

type BatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Time      string    `gorm:"size:50" json:"time"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BatchModel) TableName() string {
	return "batches"
}
