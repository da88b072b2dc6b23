package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VisitorRequest struct {
	VisitingDate     string         `json:"visiting_date" validate:"required"`
	StudentName      string         `json:"student_name" validate:"required,min=2,max=150"`
	MobileNumber     string         `json:"mobile_number" validate:"required,min=7,max=20"`
	Reference        string         `json:"reference" validate:"omitempty,max=150"`
	ReferenceContact datatypes.JSON `json:"reference_contact"`
	CourseID         *uuid.UUID     `json:"course_id"`
	InTime           string         `json:"in_time" validate:"omitempty,max=20"`
	OutTime          string         `json:"out_time" validate:"omitempty,max=20"`
	AttendedBy       *uuid.UUID     `json:"attended_by"`
	Remarks          string         `json:"remarks"`

	// Hanya role privileged yang boleh memilih branch lain; selain itu
	// branch diambil dari token user yang mencatat.
	BranchID *uuid.UUID `json:"branch_id"`

	InquiryID *uuid.UUID `json:"inquiry_id"`
}
