package leave

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormOverMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

// Semua write lewat WithTx harus jalan di *sql.Tx milik service,
// bukan balik ke connection pool di luar transaksi.
func TestWithTx_DeductCreditRunsOnTransaction(t *testing.T) {
	gormDB, poolMock := newGormOverMock(t)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	txMock.ExpectExec(`UPDATE "leave_credits"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	repo := NewRepository(gormDB).WithTx(tx)
	err = repo.DeductCredit(context.Background(), uuid.NewString(), TypeAnnual, 3)
	assert.NoError(t, err)

	assert.NoError(t, tx.Rollback())

	// Query harus kena koneksi transaksi, pool tidak boleh tersentuh.
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestWithTx_UpdatePersistsStatusOnTransaction(t *testing.T) {
	gormDB, poolMock := newGormOverMock(t)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	txMock.ExpectExec(`UPDATE "leave_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		LeaveType:  TypeAnnual,
		TotalDays:  2,
		Status:     StatusApproved,
	}

	repo := NewRepository(gormDB).WithTx(tx)
	assert.NoError(t, repo.Update(context.Background(), l))
	assert.NoError(t, tx.Commit())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
