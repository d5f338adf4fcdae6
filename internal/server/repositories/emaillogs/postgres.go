package emaillogs

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// MaxPreview is the number of characters of the HTML body kept per log row.
const MaxPreview = 2000

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts log, truncating the preview to MaxPreview characters.
func (r *PostgresRepository) Create(ctx context.Context, log *models.EmailLog) error {
	query := `
		INSERT INTO email_logs (recipient, subject, html_preview, status, error)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	preview := truncate(log.HTMLPreview, MaxPreview)
	if err := r.db.QueryRowContext(ctx, query, log.Recipient, log.Subject, preview, log.Status, log.Error).
		Scan(&log.ID, &log.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	log.HTMLPreview = preview
	return nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
