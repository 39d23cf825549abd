package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pg := &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_date"}

	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pg), "uq_attendance_user_date"))
	assert.True(t, IsUniqueViolation(pg, ""))
	assert.False(t, IsUniqueViolation(pg, "uq_other"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_users_username"`), "uq_users_username"))
	assert.False(t, IsUniqueViolation(nil, ""))
}
