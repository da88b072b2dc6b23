package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel merepresentasikan tabel employees.
// linked_user_id terisi kalau karyawan punya akun login (pairing 1:1 dengan
// users). Karyawan di-soft-delete seperti entitas lain — riwayat tidak
// pernah dihapus fisik.
type EmployeeModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RegNo         string     `gorm:"size:30;not null;uniqueIndex:uni_employees_reg_no" json:"reg_no"`
	Name          string     `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:uni_employees_email" json:"email" validate:"required,email"`
	Mobile        string     `gorm:"size:20" json:"mobile" validate:"omitempty,min=7,max=20"`
	Gender        string     `gorm:"size:10" json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Role          string     `gorm:"type:varchar(20);not null;default:'other'" json:"role"`
	DateOfJoining *time.Time `gorm:"type:date" json:"date_of_joining,omitempty"`
	LinkedUserID  *uuid.UUID `gorm:"type:uuid" json:"linked_user_id,omitempty"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	IsDeleted     bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
