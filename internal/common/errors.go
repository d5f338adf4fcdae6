package common

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors; match with errors.Is.
var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrStorageConflict = errors.New("storage conflict, retry")

	// Validation errors.
	ErrValidation = errors.New("validation error")

	// Identity errors.
	ErrDuplicateIdentity  = errors.New("email or account already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("forbidden: role mismatch")

	// MFA errors.
	ErrNoPendingChallenge = errors.New("no pending verification")
	ErrChallengeExpired   = errors.New("code expired, request a new code")
	ErrTooManyAttempts    = errors.New("too many attempts, request a new code")
	ErrCodeMismatch       = errors.New("invalid code")
	ErrCooldown           = errors.New("code requested too recently")

	// Password reset errors. Service-level causes are wrapped under
	// ErrInvalidOrExpiredToken by the orchestrator.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrNoToken               = errors.New("no reset token")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMismatch         = errors.New("token mismatch")

	// Session errors.
	ErrInvalidOrExpiredSession = errors.New("invalid or expired session")

	// Ledger errors.
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrSameAccount       = errors.New("source and destination account are the same")
)

// CooldownError reports how long the caller has to wait before a new
// verification code can be requested. It matches ErrCooldown via errors.Is.
type CooldownError struct {
	Wait time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %ds before requesting a new code", int(e.Wait.Seconds()))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldown
}
