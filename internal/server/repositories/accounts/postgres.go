package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

const accountColumns = `id, user_id, number, type, currency, balance_cents, created_at`

// PostgresRepository implements Repository over dbx.DBTX, so the same code
// runs against *sql.DB or inside a transfer transaction.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (user_id, number, type, currency, balance_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if account.Currency == "" {
		account.Currency = common.DefaultCurrency
	}

	err := r.db.QueryRowContext(ctx, query,
		account.UserID, account.Number, account.Type, account.Currency, account.BalanceCents,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *PostgresRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE number = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Number, &a.Type, &a.Currency, &a.BalanceCents, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, id, userID string) (*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1 AND user_id = $2
	`
	return r.getOne(ctx, query, id, userID)
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, number string) (*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE number = $1
	`
	return r.getOne(ctx, query, number)
}

func (r *PostgresRepository) LockForUpdate(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) SetLockTimeout(ctx context.Context, d time.Duration) error {
	query := `SELECT set_config('lock_timeout', $1, true)`

	var applied string
	if err := r.db.QueryRowContext(ctx, query, strconv.FormatInt(d.Milliseconds(), 10)+"ms").Scan(&applied); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	query := `
		UPDATE accounts SET balance_cents = balance_cents + $2
		WHERE id = $1
		RETURNING balance_cents
	`

	var balance int64
	if err := r.db.QueryRowContext(ctx, query, id, delta).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		if dbx.IsCheckViolation(err) {
			return 0, common.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return balance, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.UserID, &a.Number, &a.Type, &a.Currency, &a.BalanceCents, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}
