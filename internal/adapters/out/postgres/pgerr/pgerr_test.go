package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"laundry/internal/adapters/out/postgres/pgerr"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_jobs_ongoing"}

	assert.True(t, pgerr.IsUniqueViolation(unique))
	assert.True(t, pgerr.IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, pgerr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("boom")))

	assert.Equal(t, "idx_jobs_ongoing", pgerr.ConstraintName(unique))
	assert.Empty(t, pgerr.ConstraintName(errors.New("boom")))
}
