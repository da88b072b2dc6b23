// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Taksonomi error domain. Semua controller menerjemahkan error store
// lewat JsonFromError supaya shape response konsisten.
var (
	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrGenerationConflict: retry nomor urut habis, caller harus abort.
	ErrGenerationConflict = errors.New("gagal mengalokasikan nomor urut, silakan coba lagi")
)

// ConflictError: tabrakan unique field (email, code, reg_no, dst).
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s sudah digunakan", e.Field)
}

func NewConflict(field string) *ConflictError {
	return &ConflictError{Field: field}
}

// ValidationError: field wajib kosong / nilai tidak masuk akal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s tidak valid", e.Field)
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PermissionError: akses ditolak oleh matrix permission.
type PermissionError struct {
	Page   string
	Action string
	Reason string
}

func (e *PermissionError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("Access denied to %s %s", e.Action, e.Page)
}

// kolom yang kita kenal dari nama constraint postgres
var constraintFields = []string{
	"email", "reg_no", "receipt_no", "short_code", "code",
	"phone", "user_id", "name", "token",
}

// FieldFromConstraint menebak nama field dari nama constraint/index postgres
// (mis. "uni_students_reg_no" → "reg_no").
func FieldFromConstraint(constraint string) string {
	c := strings.ToLower(constraint)
	for _, f := range constraintFields {
		if strings.Contains(c, f) {
			return f
		}
	}
	return constraint
}

// FromPgError memetakan error postgres ke taksonomi domain.
// 23505 (unique_violation) → ConflictError dengan nama field.
func FromPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return NewConflict(FieldFromConstraint(pgErr.ConstraintName))
		case "40001", "40P01": // serialization failure / deadlock → transient
			return ErrGenerationConflict
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewConflict("field")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// JsonFromError menerjemahkan taksonomi ke response JSON standar.
func JsonFromError(c *fiber.Ctx, err error) error {
	var conflict *ConflictError
	var validation *ValidationError
	var denied *PermissionError

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	case errors.As(err, &conflict):
		return JsonError(c, fiber.StatusConflict, conflict.Error())
	case errors.As(err, &validation):
		return JsonValidationError(c, map[string][]string{
			validation.Field: {validation.Error()},
		})
	case errors.As(err, &denied):
		return JsonError(c, fiber.StatusForbidden, denied.Error())
	case errors.Is(err, ErrGenerationConflict):
		return JsonError(c, fiber.StatusServiceUnavailable, ErrGenerationConflict.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
