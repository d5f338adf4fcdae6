package dbx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization", &pgconn.PgError{Code: CodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: CodeDeadlockDetected}, true},
		{"lock timeout wrapped", fmt.Errorf("update: %w", &pgconn.PgError{Code: CodeLockNotAvailable}), true},
		{"unique violation", &pgconn.PgError{Code: CodeUniqueViolation}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("db error: %w", &pgconn.PgError{Code: CodeUniqueViolation})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: CodeDeadlockDetected}))
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, IsCheckViolation(&pgconn.PgError{Code: CodeCheckViolation, ConstraintName: "accounts_balance_cents_check"}))
	assert.False(t, IsCheckViolation(errors.New("boom")))
}

func TestWithRetry_RetriesTransientFailure(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`DELETE FROM t`)
	require.NoError(t, err)

	calls := 0
	err = WithRetry(context.Background(), db, nil, 3, func(ctx context.Context, tx DBTX) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: CodeSerializationFailure}
		}
		_, e := tx.ExecContext(ctx, `INSERT INTO t(v) VALUES ('retried')`)
		return e
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, countRows(t, db))
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	db := setupDB(t)

	calls := 0
	err := WithRetry(context.Background(), db, nil, 5, func(ctx context.Context, tx DBTX) error {
		calls++
		return errors.New("permanent")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ReturnsLastRetryableError(t *testing.T) {
	db := setupDB(t)

	calls := 0
	err := WithRetry(context.Background(), db, nil, 3, func(ctx context.Context, tx DBTX) error {
		calls++
		return &pgconn.PgError{Code: CodeDeadlockDetected}
	})
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, 3, calls)
}
