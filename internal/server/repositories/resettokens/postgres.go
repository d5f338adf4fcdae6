// Package resettokens provides a PostgreSQL-backed repository for password
// reset tokens.
package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts token and fills its ID and CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, token *models.ResetToken) (*models.ResetToken, error) {
	query := `
		INSERT INTO reset_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.db.QueryRowContext(ctx, query, token.UserID, token.TokenHash, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}

// InvalidateUnused marks all unused tokens of userID as used.
func (r *PostgresRepository) InvalidateUnused(ctx context.Context, userID string) (int64, error) {
	query := `
		UPDATE reset_tokens SET used = TRUE
		WHERE user_id = $1 AND used = FALSE
	`
	return r.exec(ctx, query, userID)
}

// LatestUnused returns the newest unused token for userID.
// If none exists, it returns common.ErrorNotFound.
func (r *PostgresRepository) LatestUnused(ctx context.Context, userID string) (*models.ResetToken, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, used, created_at
		FROM reset_tokens
		WHERE user_id = $1 AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1
	`
	t := &models.ResetToken{}
	if err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.Used, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// MarkUsed consumes the token if it is still unused.
func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE reset_tokens SET used = TRUE
		WHERE id = $1 AND used = FALSE
	`
	n, err := r.exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// PurgeExpired deletes every token whose expiry is before now.
func (r *PostgresRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM reset_tokens
		WHERE expires_at < $1
	`
	return r.exec(ctx, query, now)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
