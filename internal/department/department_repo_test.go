package department

import (
	"context"
	"testing"

	"go-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Headcounts(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT department, COUNT\(\*\) AS total FROM "employee_profiles" WHERE is_active = \$1 GROUP BY`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"department", "total"}).
			AddRow("PYTHON", 4).
			AddRow("QA", 2))

	counts, err := repo.Headcounts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"PYTHON": 4, "QA": 2}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Cyber Security", Label("CYBER_SECURITY"))
	assert.Equal(t, "SALES", Label("SALES"))
}
