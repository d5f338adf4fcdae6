// Package users declares the credential store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// Repository persists users. Lookups return common.ErrorNotFound when no row
// matches; Create returns common.ErrDuplicateIdentity on an email or account
// number collision.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndAccount(ctx context.Context, email, accountNumber string) (*models.User, error)
	ExistsByEmailOrAccount(ctx context.Context, email, accountNumber string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	// LockByID takes a row lock on the user for the rest of the transaction.
	LockByID(ctx context.Context, id string) error
}
