// Package transactions declares the append-only ledger entry store.
package transactions

import (
	"context"

	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// Repository appends and lists ledger entries. Entries are never updated.
type Repository interface {
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	// ListByUser returns at most limit entries, newest first, with the
	// owning account's number and type filled in.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}
