// Package emaillogs records outbound mail attempts.
package emaillogs

import (
	"context"

	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, log *models.EmailLog) error
}
