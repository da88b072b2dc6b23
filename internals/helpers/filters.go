// file: internals/helpers/filters.go
package helper

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Builder filter list yang dipakai semua modul (students, inquiries,
// attendance, visitors) supaya aturannya seragam.

const dateLayout = "2006-01-02"

// StartOfDay memotong timestamp ke 00:00:00 hari yang sama.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay menggeser timestamp ke 23:59:59.999999999 hari yang sama,
// supaya range tanggal inklusif dua arah.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// ParseDateParam parse "YYYY-MM-DD"; string kosong dianggap tidak ada filter.
func ParseDateParam(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ApplyDateRange menambahkan filter range tanggal inklusif pada kolom.
// Batas bawah di-clamp ke awal hari, batas atas ke akhir hari.
func ApplyDateRange(q *gorm.DB, column, fromStr, toStr string) *gorm.DB {
	if from, ok := ParseDateParam(fromStr); ok {
		q = q.Where(column+" >= ?", StartOfDay(from))
	}
	if to, ok := ParseDateParam(toStr); ok {
		q = q.Where(column+" <= ?", EndOfDay(to))
	}
	return q
}

// ApplySearch menambahkan ILIKE substring match, OR antar kolom nama.
func ApplySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}
	pattern := "%" + term + "%"
	cond := ""
	args := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		if i > 0 {
			cond += " OR "
		}
		cond += col + " ILIKE ?"
		args = append(args, pattern)
	}
	return q.Where(cond, args...)
}

// ApplyEnum menambahkan exact match hanya kalau value tidak kosong.
// Value kosong berarti filter di-skip, BUKAN match string kosong.
func ApplyEnum(q *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	return q.Where(column+" = ?", value)
}

// ApplyUUID: sama seperti ApplyEnum tapi untuk param uuid.
func ApplyUUID(q *gorm.DB, column, raw string) *gorm.DB {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return q
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		// param rusak → hasil kosong, jangan diam-diam unfiltered
		return q.Where("1 = 0")
	}
	return q.Where(column+" = ?", id)
}

// ApplyIDSubset filter "kolom ∈ himpunan id". Himpunan kosong harus
// menghasilkan result kosong, bukan unfiltered.
func ApplyIDSubset(q *gorm.DB, column string, ids []uuid.UUID) *gorm.DB {
	if len(ids) == 0 {
		return q.Where("1 = 0")
	}
	return q.Where(column+" IN ?", ids)
}

// WithDeleted: predikat soft-delete eksplisit di setiap call site.
// Default semua list/find WAJIB lewat sini dengan includeDeleted=false.
func WithDeleted(q *gorm.DB, column string, includeDeleted bool) *gorm.DB {
	if includeDeleted {
		return q
	}
	return q.Where(column + " = FALSE")
}
