package dto

import (
	"time"

	"github.com/google/uuid"

	"lembagaku_backend/internals/features/lembaga/students/model"
)

// CreateStudentRequest: reg_no TIDAK diterima dari client, selalu digenerate.
type CreateStudentRequest struct {
	Name       string     `json:"name" validate:"required,min=2,max=150"`
	FatherName string     `json:"father_name" validate:"omitempty,max=150"`
	Phone      string     `json:"phone" validate:"required,min=7,max=20"`
	CourseID   uuid.UUID  `json:"course_id" validate:"required"`
	BatchID    *uuid.UUID `json:"batch_id"`
	DOB        *time.Time `json:"dob"`
	Gender     string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address    string     `json:"address"`
	TotalFees  float64    `json:"total_fees" validate:"gte=0"`
	DueFees    float64    `json:"due_fees" validate:"gte=0"`
}

type UpdateStudentRequest struct {
	Name       string     `json:"name" validate:"required,min=2,max=150"`
	FatherName string     `json:"father_name" validate:"omitempty,max=150"`
	Phone      string     `json:"phone" validate:"required,min=7,max=20"`
	CourseID   uuid.UUID  `json:"course_id" validate:"required"`
	BatchID    *uuid.UUID `json:"batch_id"`
	DOB        *time.Time `json:"dob"`
	Gender     string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Address    string     `json:"address"`
	TotalFees  float64    `json:"total_fees" validate:"gte=0"`
	DueFees    float64    `json:"due_fees" validate:"gte=0"`
	IsActive   *bool      `json:"is_active"`
}

func (r *CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		Name:       r.Name,
		FatherName: r.FatherName,
		Phone:      r.Phone,
		CourseID:   r.CourseID,
		BatchID:    r.BatchID,
		DOB:        r.DOB,
		Gender:     r.Gender,
		Address:    r.Address,
		TotalFees:  r.TotalFees,
		DueFees:    r.DueFees,
		IsActive:   true,
	}
}

func (r *UpdateStudentRequest) ApplyTo(s *model.StudentModel) {
	s.Name = r.Name
	s.FatherName = r.FatherName
	s.Phone = r.Phone
	s.CourseID = r.CourseID
	s.BatchID = r.BatchID
	s.DOB = r.DOB
	s.Gender = r.Gender
	s.Address = r.Address
	s.TotalFees = r.TotalFees
	s.DueFees = r.DueFees
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}
