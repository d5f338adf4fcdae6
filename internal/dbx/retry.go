package dbx

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories and services care about.
const (
	CodeUniqueViolation      = "23505"
	CodeCheckViolation       = "23514"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeLockNotAvailable     = "55P03"
	CodeQueryCanceled        = "57014"
)

// retryBackoff is the base pause between attempts; it grows linearly.
var retryBackoff = 10 * time.Millisecond

// IsUniqueViolation reports whether err carries a unique_violation SQLSTATE.
func IsUniqueViolation(err error) bool {
	return hasCode(err, CodeUniqueViolation)
}

// IsCheckViolation reports whether err carries a check_violation SQLSTATE.
func IsCheckViolation(err error) bool {
	return hasCode(err, CodeCheckViolation)
}

// IsRetryable reports whether err is a transient concurrency failure:
// serialization failure, deadlock, lock timeout or statement timeout.
func IsRetryable(err error) bool {
	return hasCode(err, CodeSerializationFailure, CodeDeadlockDetected, CodeLockNotAvailable, CodeQueryCanceled)
}

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, c := range codes {
		if pgErr.Code == c {
			return true
		}
	}
	return false
}

// WithRetry runs fn inside WithTx and repeats the whole transaction up to
// attempts times while the failure IsRetryable. The last error is returned
// unchanged so callers can classify it.
func WithRetry(ctx context.Context, db *sql.DB, opts *sql.TxOptions, attempts int, fn func(ctx context.Context, tx DBTX) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = WithTx(ctx, db, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(i+1) * retryBackoff):
		}
	}
	return err
}
