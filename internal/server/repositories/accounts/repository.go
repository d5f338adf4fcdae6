// Package accounts declares the ledger account store and its PostgreSQL
// implementation.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// Repository persists accounts and their balances.
type Repository interface {
	// Create opens an account. A number collision yields common.ErrDuplicateIdentity.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	NumberExists(ctx context.Context, number string) (bool, error)

	// ListByUser returns the user's accounts, oldest first.
	ListByUser(ctx context.Context, userID string) ([]models.Account, error)

	// GetOwned returns the account only when it belongs to userID.
	GetOwned(ctx context.Context, id, userID string) (*models.Account, error)

	GetByNumber(ctx context.Context, number string) (*models.Account, error)

	// LockForUpdate re-reads the account under a row lock held until the
	// surrounding transaction ends.
	LockForUpdate(ctx context.Context, id string) (*models.Account, error)

	// SetLockTimeout bounds row lock waits for the rest of the current
	// transaction. Outside a transaction it has no lasting effect.
	SetLockTimeout(ctx context.Context, d time.Duration) error

	// AdjustBalance adds delta (negative to debit) and returns the new balance.
	// A debit below zero yields common.ErrInsufficientFunds.
	AdjustBalance(ctx context.Context, id string, delta int64) (int64, error)
}
