package helper

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFieldFromConstraint(t *testing.T) {
	assert.Equal(t, "reg_no", FieldFromConstraint("uni_students_reg_no"))
	assert.Equal(t, "email", FieldFromConstraint("uni_employees_email"))
	assert.Equal(t, "receipt_no", FieldFromConstraint("uni_fee_receipts_receipt_no"))
	assert.Equal(t, "short_code", FieldFromConstraint("uni_branches_short_code"))
	assert.Equal(t, "code", FieldFromConstraint("uni_courses_code"))

	// constraint asing dikembalikan apa adanya
	assert.Equal(t, "something_else", FieldFromConstraint("something_else"))
}

func TestFromPgErrorUniqueViolationJadiConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uni_courses_code"}

	mapped := FromPgError(pgErr)

	var conflict *ConflictError
	require.ErrorAs(t, mapped, &conflict)
	assert.Equal(t, "code", conflict.Field)
}

func TestFromPgErrorTransientJadiGenerationConflict(t *testing.T) {
	for _, code := range []string{"40001", "40P01"} {
		mapped := FromPgError(&pgconn.PgError{Code: code})
		assert.ErrorIs(t, mapped, ErrGenerationConflict, "code %s", code)
	}
}

func TestFromPgErrorRecordNotFound(t *testing.T) {
	mapped := FromPgError(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, mapped, ErrNotFound)
}

func TestFromPgErrorLainnyaLolosApaAdanya(t *testing.T) {
	raw := errors.New("disk on fire")
	assert.Equal(t, raw, FromPgError(raw))
	assert.NoError(t, FromPgError(nil))
}

func TestConflictErrorPesanMenyebutField(t *testing.T) {
	err := NewConflict("email")
	assert.Contains(t, err.Error(), "email")
}

func TestValidationErrorPesan(t *testing.T) {
	err := NewValidation("students", "daftar siswa tidak boleh kosong")
	assert.Equal(t, "daftar siswa tidak boleh kosong", err.Error())

	tanpaPesan := NewValidation("amount_paid", "")
	assert.Contains(t, tanpaPesan.Error(), "amount_paid")
}
