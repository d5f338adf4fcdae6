package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/emaillogs"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/mfachallenges"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/resettokens"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/transactions"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Transactions(db dbx.DBTX) transactions.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
	MFAChallenges(db dbx.DBTX) mfachallenges.Repository
	EmailLogs(db dbx.DBTX) emaillogs.Repository
}
