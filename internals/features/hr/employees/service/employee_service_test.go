package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/hr/employees/dto"
	helper "lembagaku_backend/internals/helpers"
)

func newMockService(t *testing.T) (*EmployeeService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewEmployeeService(db), mock
}

func expectSequence(mock sqlmock.Sqlmock, value int64) {
	mock.ExpectQuery("INSERT INTO code_sequences").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(value))
}

func TestCreateTanpaLoginHanyaSatuInsert(t *testing.T) {
	svc, mock := newMockService(t)

	expectSequence(mock, 1001)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	emp, err := svc.CreateWithLogin(dto.CreateEmployeeRequest{
		Name:  "Budi Santoso",
		Email: "budi@lembagaku.local",
		Role:  "teacher",
	})
	require.NoError(t, err)
	assert.Nil(t, emp.LinkedUserID)
	assert.Regexp(t, `^EMP-\d{4}-\d+$`, emp.RegNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDenganLoginEmailGandaTidakMembuatEmployee(t *testing.T) {
	svc, mock := newMockService(t)

	expectSequence(mock, 1002)
	// email sudah dipakai user lain → berhenti SEBELUM insert apa pun
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.CreateWithLogin(dto.CreateEmployeeRequest{
		Name:          "Siti Rahma",
		Email:         "siti@lembagaku.local",
		Role:          "receptionist",
		LoginPassword: "rahasia-123",
	})
	require.Error(t, err)

	var conflict *helper.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDenganLoginKompensasiHapusUser(t *testing.T) {
	svc, mock := newMockService(t)

	expectSequence(mock, 1003)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// langkah 2: user berhasil dibuat
	userID := uuid.NewString()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID))
	mock.ExpectCommit()

	// langkah 3: employee GAGAL
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	// langkah 4: kompensasi — user tadi dihapus lagi
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := svc.CreateWithLogin(dto.CreateEmployeeRequest{
		Name:          "Andi Wijaya",
		Email:         "andi@lembagaku.local",
		Role:          "manager",
		LoginPassword: "rahasia-123",
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoleTidakDikenalDitolak(t *testing.T) {
	svc, mock := newMockService(t)

	_, err := svc.CreateWithLogin(dto.CreateEmployeeRequest{
		Name:  "X",
		Email: "x@lembagaku.local",
		Role:  "alien",
	})
	require.Error(t, err)

	var validation *helper.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "role", validation.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteDenganLinkedUserMenonaktifkanKeduanya(t *testing.T) {
	svc, mock := newMockService(t)

	empID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "reg_no", "name", "email", "role", "linked_user_id", "is_active", "is_deleted"}).
			AddRow(empID.String(), "EMP-2026-1001", "Budi", "budi@lembagaku.local",
				"teacher", userID.String(), true, false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employees"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.SoftDelete(empID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteTanpaLinkedUserHanyaEmployee(t *testing.T) {
	svc, mock := newMockService(t)

	empID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "reg_no", "name", "email", "role", "linked_user_id", "is_active", "is_deleted"}).
			AddRow(empID.String(), "EMP-2026-1002", "Siti", "siti@lembagaku.local",
				"teacher", nil, true, false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employees"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.SoftDelete(empID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteSudahTerhapusNoOp(t *testing.T) {
	svc, mock := newMockService(t)

	empID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "reg_no", "name", "is_active", "is_deleted"}).
			AddRow(empID.String(), "EMP-2026-1003", "Andi", false, true))

	// tidak ada UPDATE yang diharapkan
	err := svc.SoftDelete(empID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
