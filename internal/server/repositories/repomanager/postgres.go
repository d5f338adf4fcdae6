// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/migrations"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/emaillogs"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/mfachallenges"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

// Transactions returns a transactions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Transactions(db dbx.DBTX) transactions.Repository {
	return transactions.NewPostgresRepository(db)
}

// ResetTokens returns a resettokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) ResetTokens(db dbx.DBTX) resettokens.Repository {
	return resettokens.NewPostgresRepository(db)
}

// MFAChallenges returns an mfachallenges.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) MFAChallenges(db dbx.DBTX) mfachallenges.Repository {
	return mfachallenges.NewPostgresRepository(db)
}

// EmailLogs returns an emaillogs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) EmailLogs(db dbx.DBTX) emaillogs.Repository {
	return emaillogs.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
