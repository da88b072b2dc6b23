package helper

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type filterRow struct {
	ID        uuid.UUID
	Name      string
	IsDeleted bool
}

func (filterRow) TableName() string { return "filter_rows" }

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db.Session(&gorm.Session{DryRun: true})
}

func buildSQL(t *testing.T, q *gorm.DB) string {
	t.Helper()
	var rows []filterRow
	stmt := q.Find(&rows).Statement
	return stmt.SQL.String()
}

func TestStartEndOfDayInklusif(t *testing.T) {
	d := time.Date(2026, 1, 1, 13, 45, 0, 0, time.UTC)

	start := StartOfDay(d)
	end := EndOfDay(d)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)

	// record jam 23:59 di hari yang sama masih masuk range
	inside := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	assert.False(t, inside.After(end))

	// record 00:00:01 hari berikutnya sudah di luar
	outside := time.Date(2026, 1, 2, 0, 0, 1, 0, time.UTC)
	assert.True(t, outside.After(end))
}

func TestParseDateParam(t *testing.T) {
	parsed, ok := ParseDateParam("2026-01-15")
	assert.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	_, ok = ParseDateParam("")
	assert.False(t, ok)

	_, ok = ParseDateParam("15-01-2026")
	assert.False(t, ok)
}

func TestWithDeletedDefaultMenyembunyikan(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, WithDeleted(db.Model(&filterRow{}), "is_deleted", false))
	assert.Contains(t, sql, "is_deleted = FALSE")

	sql = buildSQL(t, WithDeleted(db.Model(&filterRow{}), "is_deleted", true))
	assert.NotContains(t, sql, "is_deleted")
}

func TestApplyEnumSkipKosong(t *testing.T) {
	db := newDryRunDB(t)

	// value kosong → filter tidak boleh muncul sama sekali
	sql := buildSQL(t, ApplyEnum(db.Model(&filterRow{}), "status", ""))
	assert.NotContains(t, sql, "status")

	sql = buildSQL(t, ApplyEnum(db.Model(&filterRow{}), "status", "Pending"))
	assert.Contains(t, sql, "status = ")
}

func TestApplySearchOrAntarKolom(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, ApplySearch(db.Model(&filterRow{}), "budi", "name", "father_name"))
	assert.Contains(t, sql, "name ILIKE ")
	assert.Contains(t, sql, "father_name ILIKE ")
	assert.Contains(t, sql, " OR ")

	sql = buildSQL(t, ApplySearch(db.Model(&filterRow{}), "", "name"))
	assert.NotContains(t, sql, "ILIKE")
}

func TestApplyIDSubsetKosongHasilKosong(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, ApplyIDSubset(db.Model(&filterRow{}), "student_id", nil))
	assert.Contains(t, sql, "1 = 0")

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	sql = buildSQL(t, ApplyIDSubset(db.Model(&filterRow{}), "student_id", ids))
	assert.Contains(t, sql, "student_id IN ")
}

func TestApplyUUIDRusakHasilKosong(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, ApplyUUID(db.Model(&filterRow{}), "course_id", "bukan-uuid"))
	assert.Contains(t, sql, "1 = 0")

	sql = buildSQL(t, ApplyUUID(db.Model(&filterRow{}), "course_id", ""))
	assert.NotContains(t, sql, "course_id")
	assert.NotContains(t, sql, "1 = 0")
}

func TestApplyDateRangeClampKeBatasHari(t *testing.T) {
	db := newDryRunDB(t)

	var rows []filterRow
	stmt := ApplyDateRange(db.Model(&filterRow{}), "created_at", "2026-01-01", "2026-01-01").
		Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "created_at >= ")
	assert.Contains(t, sql, "created_at <= ")

	require.Len(t, stmt.Vars, 2)
	from, ok := stmt.Vars[0].(time.Time)
	require.True(t, ok)
	to, ok := stmt.Vars[1].(time.Time)
	require.True(t, ok)

	assert.Equal(t, 0, from.Hour())
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Minute())
}
