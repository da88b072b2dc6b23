package dto

import (
	"time"

	"github.com/google/uuid"

	"lembagaku_backend/internals/features/hr/employees/model"
)

// CreateEmployeeRequest: kalau login_password diisi, akun login dibuat
// berpasangan dengan karyawan (lihat service.CreateWithLogin).
type CreateEmployeeRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=150"`
	Email         string     `json:"email" validate:"required,email"`
	Mobile        string     `json:"mobile" validate:"omitempty,min=7,max=20"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Role          string     `json:"role" validate:"required"`
	DateOfJoining *time.Time `json:"date_of_joining"`

	LoginPassword string `json:"login_password" validate:"omitempty,min=8"`
}

type UpdateEmployeeRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=150"`
	Mobile        string     `json:"mobile" validate:"omitempty,min=7,max=20"`
	Gender        string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Role          string     `json:"role" validate:"required"`
	DateOfJoining *time.Time `json:"date_of_joining"`
	IsActive      *bool      `json:"is_active"`

	// Password kosong = hash lama dipertahankan.
	LoginPassword string `json:"login_password" validate:"omitempty,min=8"`
}

type EmployeeResponse struct {
	ID            uuid.UUID  `json:"id"`
	RegNo         string     `json:"reg_no"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Mobile        string     `json:"mobile"`
	Gender        string     `json:"gender"`
	Role          string     `json:"role"`
	DateOfJoining *time.Time `json:"date_of_joining,omitempty"`
	LinkedUserID  *uuid.UUID `json:"linked_user_id,omitempty"`
	HasLogin      bool       `json:"has_login"`
	IsActive      bool       `json:"is_active"`
	IsDeleted     bool       `json:"is_deleted"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromEmployeeModel(m *model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:            m.ID,
		RegNo:         m.RegNo,
		Name:          m.Name,
		Email:         m.Email,
		Mobile:        m.Mobile,
		Gender:        m.Gender,
		Role:          m.Role,
		DateOfJoining: m.DateOfJoining,
		LinkedUserID:  m.LinkedUserID,
		HasLogin:      m.LinkedUserID != nil,
		IsActive:      m.IsActive,
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromEmployeeModels(ms []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromEmployeeModel(&ms[i]))
	}
	return out
}
