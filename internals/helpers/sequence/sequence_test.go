package sequence

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "lembagaku_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestNextMengembalikanNilaiDariUpsert(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO code_sequences").
		WithArgs(ScopeStudent, 2026, int64(seedValue+1)).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1001)))

	n, err := Next(db, ScopeStudent, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextRetryHabisMenjadiGenerationConflict(t *testing.T) {
	db, mock := newMockDB(t)

	dbErr := errors.New("connection reset")
	for i := 0; i < maxRetries; i++ {
		mock.ExpectQuery("INSERT INTO code_sequences").WillReturnError(dbErr)
	}

	_, err := Next(db, ScopeReceipt, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, helper.ErrGenerationConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormatterKode(t *testing.T) {
	assert.Equal(t, "2026-1001", StudentRegNo(2026, 1001))
	assert.Equal(t, "EMP-2026-1001", EmployeeCode(2026, 1001))
	assert.Equal(t, "REC-1001", ReceiptNo(1001))

	// nomor kwitansi harus match pola REC-\d+
	assert.Regexp(t, regexp.MustCompile(`^REC-\d+$`), ReceiptNo(4567))
}

func TestNextReceiptNoFormat(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO code_sequences").
		WithArgs(ScopeReceipt, 0, int64(seedValue+1)).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1205)))

	no, err := NextReceiptNo(db)
	require.NoError(t, err)
	assert.Equal(t, "REC-1205", no)
}

func TestNextStudentRegNoPakaiTahunBerjalan(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO code_sequences").
		WithArgs(ScopeStudent, 2026, int64(seedValue+1)).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1042)))

	regNo, err := NextStudentRegNo(db, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-1042", regNo)
}
