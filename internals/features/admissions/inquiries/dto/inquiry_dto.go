package dto

import (
	"time"

	"github.com/google/uuid"

	"lembagaku_backend/internals/features/admissions/inquiries/model"
)

type CreateInquiryRequest struct {
	FirstName       string     `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string     `json:"last_name" validate:"omitempty,max=100"`
	Phone           string     `json:"phone" validate:"required,min=7,max=20"`
	Email           string     `json:"email" validate:"omitempty,email"`
	CourseID        *uuid.UUID `json:"course_id"`
	Source          string     `json:"source" validate:"required"`
	Status          string     `json:"status"`
	Remarks         string     `json:"remarks"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	FollowUpDetails string     `json:"follow_up_details"`
	AllocatedTo     *uuid.UUID `json:"allocated_to"`
}

type UpdateInquiryRequest = CreateInquiryRequest

func (r *CreateInquiryRequest) ToModel() model.InquiryModel {
	status := r.Status
	if status == "" {
		status = "Pending"
	}
	return model.InquiryModel{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		Email:           r.Email,
		CourseID:        r.CourseID,
		Source:          r.Source,
		Status:          status,
		Remarks:         r.Remarks,
		FollowUpDate:    r.FollowUpDate,
		FollowUpDetails: r.FollowUpDetails,
		AllocatedTo:     r.AllocatedTo,
	}
}
