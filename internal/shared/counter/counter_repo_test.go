package counter

import (
	"context"
	"errors"
	"testing"

	"go-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_NextValue(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO id_sequences`).
		WithArgs(EmployeeIDSequence).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "id_sequences" WHERE name = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "last_value"}).AddRow(EmployeeIDSequence, 41))
	mock.ExpectExec(`UPDATE id_sequences SET last_value = \$1`).
		WithArgs(int64(42), EmployeeIDSequence).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	v, err := repo.NextValue(context.Background(), EmployeeIDSequence)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NextValue_RollsBackOnLockFailure(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO id_sequences`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "id_sequences"`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	_, err := repo.NextValue(context.Background(), EmployeeIDSequence)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
