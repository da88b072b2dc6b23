package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/finance/fee_receipts/dto"
	helper "lembagaku_backend/internals/helpers"
)

func newMockService(t *testing.T) (*FeeReceiptService, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewFeeReceiptService(db), mock
}

func TestCreateReceiptJumlahNolDitolak(t *testing.T) {
	svc, mock := newMockService(t)

	for _, amount := range []float64{0, -500} {
		_, err := svc.CreateReceipt(dto.CreateReceiptRequest{
			StudentID:   uuid.New(),
			AmountPaid:  amount,
			PaymentMode: "Cash",
		}, uuid.New())
		require.Error(t, err)

		var validation *helper.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "amount_paid", validation.Field)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReceiptModeTidakDikenalDitolak(t *testing.T) {
	svc, mock := newMockService(t)

	_, err := svc.CreateReceipt(dto.CreateReceiptRequest{
		StudentID:   uuid.New(),
		AmountPaid:  5000,
		PaymentMode: "Barter",
	}, uuid.New())
	require.Error(t, err)

	var validation *helper.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "payment_mode", validation.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReceiptSukses(t *testing.T) {
	svc, mock := newMockService(t)

	studentID := uuid.New()
	courseID := uuid.New()
	createdBy := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "reg_no", "name", "course_id", "is_deleted"}).
			AddRow(studentID.String(), "2026-1001", "Budi", courseID.String(), false))

	mock.ExpectQuery("INSERT INTO code_sequences").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(1001)))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "fee_receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	receipt, err := svc.CreateReceipt(dto.CreateReceiptRequest{
		StudentID:   studentID,
		AmountPaid:  5000,
		PaymentMode: "Cash",
	}, createdBy)
	require.NoError(t, err)

	assert.Equal(t, "REC-1001", receipt.ReceiptNo)
	assert.Regexp(t, `^REC-\d+$`, receipt.ReceiptNo)
	assert.Equal(t, 5000.0, receipt.AmountPaid)
	assert.Equal(t, courseID, receipt.CourseID)
	assert.Equal(t, createdBy, receipt.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReceiptSiswaTerhapusNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	// query siswa memakai predikat is_deleted = FALSE, siswa terhapus
	// tidak pernah muncul
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.CreateReceipt(dto.CreateReceiptRequest{
		StudentID:   uuid.New(),
		AmountPaid:  5000,
		PaymentMode: "UPI",
	}, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentLedgerTerbaruDuluDanPassthrough(t *testing.T) {
	svc, mock := newMockService(t)

	studentID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "reg_no", "name", "total_fees", "due_fees"}).
			AddRow(studentID.String(), "2026-1001", "Budi", 12000.0, 7000.0))

	mock.ExpectQuery(`SELECT \* FROM "fee_receipts"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "receipt_no", "student_id", "amount_paid", "payment_mode"}).
			AddRow(uuid.NewString(), "REC-1002", studentID.String(), 3000.0, "Cash").
			AddRow(uuid.NewString(), "REC-1001", studentID.String(), 2000.0, "UPI"))

	ledger, err := svc.StudentLedger(studentID)
	require.NoError(t, err)

	// angka rencana biaya diteruskan mentah dari record siswa
	assert.Equal(t, 12000.0, ledger.TotalFees)
	assert.Equal(t, 7000.0, ledger.DueFees)

	require.Len(t, ledger.Receipts, 2)
	assert.Equal(t, "REC-1002", ledger.Receipts[0].ReceiptNo)
	assert.Equal(t, "REC-1001", ledger.Receipts[1].ReceiptNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}
