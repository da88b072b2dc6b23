package model

import (
	"time"

	"github.com/google/uuid"
)

type BranchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:uni_branches_name" json:"name" validate:"required,min=3,max=100"`
	ShortCode string    `gorm:"size:10;not null;uniqueIndex:uni_branches_short_code" json:"short_code" validate:"required,min=2,max=10"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Mobile    string    `gorm:"size:20" json:"mobile"`
	Email     string    `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Address   string    `gorm:"size:300" json:"address"`
	City      string    `gorm:"size:100" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BranchModel) TableName() string {
	return "branches"
}
