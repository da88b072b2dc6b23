// file: internals/helpers/sequence/sequence.go
//
// Nomor urut untuk kode human-readable (reg_no siswa, kode karyawan,
// nomor kwitansi). Counter per scope disimpan di tabel code_sequences dan
// dinaikkan lewat satu statement upsert atomik — aman untuk penulis paralel.
// Jangan pernah pakai COUNT(*) untuk nomor berikutnya: dua request bersamaan
// bisa membaca count yang sama dan menghasilkan kode kembar.
package sequence

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	helper "lembagaku_backend/internals/helpers"
)

const (
	// Nomor pertama yang diterbitkan adalah seedValue+1 (mis. 1001).
	seedValue = 1000

	maxRetries = 3
	retryDelay = 25 * time.Millisecond
)

const (
	ScopeStudent  = "student"
	ScopeEmployee = "employee"
	ScopeReceipt  = "receipt"
)

type CodeSequenceModel struct {
	Scope     string `gorm:"size:30;primaryKey" json:"scope"`
	Period    int    `gorm:"primaryKey" json:"period"`
	LastValue int64  `gorm:"not null" json:"last_value"`
}

func (CodeSequenceModel) TableName() string {
	return "code_sequences"
}

// Next mengembalikan nomor berikutnya untuk (scope, period).
// INSERT ... ON CONFLICT DO UPDATE ... RETURNING berjalan atomik di postgres,
// jadi setiap pemanggil paralel mendapat nilai berbeda.
// Period dipakai untuk reset tahunan (reg_no siswa/karyawan); scope tanpa
// reset (kwitansi) memakai period 0.
func Next(db *gorm.DB, scope string, period int) (int64, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		var value int64
		err := db.Raw(`
			INSERT INTO code_sequences (scope, period, last_value)
			VALUES (?, ?, ?)
			ON CONFLICT (scope, period)
			DO UPDATE SET last_value = code_sequences.last_value + 1
			RETURNING last_value
		`, scope, period, seedValue+1).Scan(&value).Error
		if err == nil {
			return value, nil
		}

		lastErr = err
		log.Printf("[WARN] sequence.Next(%s,%d) attempt %d gagal: %v", scope, period, attempt, err)
		time.Sleep(retryDelay * time.Duration(attempt))
	}

	log.Printf("[ERROR] sequence.Next(%s,%d) retry habis: %v", scope, period, lastErr)
	return 0, helper.ErrGenerationConflict
}

// ===== Formatter kode =====

// StudentRegNo → "2026-1001"
func StudentRegNo(year int, n int64) string {
	return fmt.Sprintf("%d-%d", year, n)
}

// EmployeeCode → "EMP-2026-1001"
func EmployeeCode(year int, n int64) string {
	return fmt.Sprintf("EMP-%d-%d", year, n)
}

// ReceiptNo → "REC-1001"
func ReceiptNo(n int64) string {
	return fmt.Sprintf("REC-%d", n)
}

// NextStudentRegNo alokasi + format sekaligus, per tahun berjalan.
func NextStudentRegNo(db *gorm.DB, now time.Time) (string, error) {
	n, err := Next(db, ScopeStudent, now.Year())
	if err != nil {
		return "", err
	}
	return StudentRegNo(now.Year(), n), nil
}

func NextEmployeeCode(db *gorm.DB, now time.Time) (string, error) {
	n, err := Next(db, ScopeEmployee, now.Year())
	if err != nil {
		return "", err
	}
	return EmployeeCode(now.Year(), n), nil
}

func NextReceiptNo(db *gorm.DB) (string, error) {
	n, err := Next(db, ScopeReceipt, 0)
	if err != nil {
		return "", err
	}
	return ReceiptNo(n), nil
}
