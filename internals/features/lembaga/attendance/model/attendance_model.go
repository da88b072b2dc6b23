package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentAttendanceModel menyimpan kehadiran per siswa per hari.
// batch_name & batch_time adalah SNAPSHOT saat absen dicatat, bukan referensi
// live — perubahan jadwal batch tidak mengubah riwayat absen.
type StudentAttendanceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	BatchName string    `gorm:"size:100;not null" json:"batch_name"`
	BatchTime string    `gorm:"size:50" json:"batch_time"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	CourseID  uuid.UUID `gorm:"type:uuid" json:"course_id"`
	IsPresent bool      `gorm:"not null;default:false" json:"is_present"`
	Remarks   string    `gorm:"size:255" json:"remarks"`
	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentAttendanceModel) TableName() string {
	return "student_attendances"
}
