package dto

import (
	"github.com/google/uuid"
)

type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	IsPresent bool      `json:"is_present"`
	Remarks   string    `json:"remarks" validate:"omitempty,max=255"`
}

// MarkAttendanceRequest: absen satu batch sekaligus untuk satu tanggal.
type MarkAttendanceRequest struct {
	Date     string            `json:"date" validate:"required"`
	BatchID  uuid.UUID         `json:"batch_id" validate:"required"`
	Students []AttendanceEntry `json:"students" validate:"dive"`
}

type UpdateAttendanceRequest struct {
	IsPresent bool   `json:"is_present"`
	Remarks   string `json:"remarks" validate:"omitempty,max=255"`
}
