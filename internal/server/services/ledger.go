package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/dbx"
	"github.com/dmitrijs2005/ironbank/internal/server/metrics"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Ledger limits.
const (
	DefaultTransactionLimit = 25
	MaxTransactionLimit     = 100
	MaxMemoLength           = 120

	DefaultTransferTimeout = 5 * time.Second
	transferRetryAttempts  = 3
	accountNumberAttempts  = 5
)

// Opening balances, in cents.
const (
	CustomerCheckingOpeningCents int64 = 1250000
	CustomerSavingsOpeningCents  int64 = 2589000
	AdminCheckingOpeningCents    int64 = 5050000
	AdminSavingsOpeningCents     int64 = 12050000
)

// LedgerService owns accounts and money movement. Every transfer is one
// database transaction: both balances and both ledger rows commit together
// or not at all.
type LedgerService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	transferTimeout time.Duration
	lockTimeout     time.Duration
}

func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager, transferTimeout time.Duration) *LedgerService {
	if transferTimeout <= 0 {
		transferTimeout = DefaultTransferTimeout
	}
	return &LedgerService{
		db:              db,
		repomanager:     m,
		transferTimeout: transferTimeout,
		lockTimeout:     transferTimeout / transferRetryAttempts,
	}
}

// ListAccounts returns the user's accounts, oldest first.
func (s *LedgerService) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	accounts, err := s.repomanager.Accounts(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// ListTransactions returns the user's newest entries. A non-positive limit
// means DefaultTransactionLimit; larger limits are capped at
// MaxTransactionLimit.
func (s *LedgerService) ListTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	switch {
	case limit <= 0:
		limit = DefaultTransactionLimit
	case limit > MaxTransactionLimit:
		limit = MaxTransactionLimit
	}

	txs, err := s.repomanager.Transactions(s.db).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// OpenAccounts creates the standard pair for a new user on db: a checking
// account under primaryNumber and a savings account under a fresh random
// number.
func (s *LedgerService) OpenAccounts(ctx context.Context, db dbx.DBTX, userID, primaryNumber string, checkingCents, savingsCents int64) ([]models.Account, error) {
	repo := s.repomanager.Accounts(db)

	savingsNumber, err := s.freeAccountNumber(ctx, db)
	if err != nil {
		return nil, err
	}

	specs := []models.Account{
		{UserID: userID, Number: primaryNumber, Type: common.AccountTypeChecking, Currency: common.DefaultCurrency, BalanceCents: checkingCents},
		{UserID: userID, Number: savingsNumber, Type: common.AccountTypeSavings, Currency: common.DefaultCurrency, BalanceCents: savingsCents},
	}

	opened := make([]models.Account, 0, len(specs))
	for i := range specs {
		a, err := repo.Create(ctx, &specs[i])
		if err != nil {
			if errors.Is(err, common.ErrDuplicateIdentity) {
				if specs[i].Number == primaryNumber {
					return nil, err
				}
				// another registration took the number after our check
				return nil, fmt.Errorf("%w: account number %s taken", common.ErrStorageConflict, specs[i].Number)
			}
			return nil, fmt.Errorf("open %s account: %w", specs[i].Type, err)
		}
		opened = append(opened, *a)
	}
	return opened, nil
}

// Transfer moves req.Amount from the caller's source account to the account
// numbered req.DestinationAccountNumber.
//
// Both rows are locked in id order so opposing transfers cannot deadlock.
// Serialization failures and lock timeouts are retried a few times and then
// reported as common.ErrStorageConflict; the caller may retry.
func (s *LedgerService) Transfer(ctx context.Context, userID string, req models.TransferRequest) (*models.TransferResult, error) {
	start := time.Now()

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		metrics.ObserveTransfer(start, metrics.OutcomeRejected)
		return nil, err
	}

	memo := strings.TrimSpace(req.Memo)
	if utf8.RuneCountInString(memo) > MaxMemoLength {
		metrics.ObserveTransfer(start, metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: memo longer than %d characters", common.ErrValidation, MaxMemoLength)
	}

	if _, err := uuid.Parse(req.SourceAccountID); err != nil {
		metrics.ObserveTransfer(start, metrics.OutcomeRejected)
		return nil, fmt.Errorf("source account: %w", common.ErrorNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.transferTimeout)
	defer cancel()

	var result *models.TransferResult
	err = dbx.WithRetry(ctx, s.db, nil, transferRetryAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		r, err := s.transfer(ctx, tx, userID, req, amount, memo)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		err = classifyTransferError(ctx, err)
		switch {
		case errors.Is(err, common.ErrStorageConflict):
			metrics.ObserveTransfer(start, metrics.OutcomeConflict)
		case isBusinessError(err):
			metrics.ObserveTransfer(start, metrics.OutcomeRejected)
		default:
			metrics.ObserveTransfer(start, metrics.OutcomeError)
		}
		return nil, err
	}

	metrics.ObserveTransfer(start, metrics.OutcomeSuccess)
	return result, nil
}

func (s *LedgerService) transfer(ctx context.Context, tx dbx.DBTX, userID string, req models.TransferRequest, amount int64, memo string) (*models.TransferResult, error) {
	accounts := s.repomanager.Accounts(tx)

	if err := accounts.SetLockTimeout(ctx, s.lockTimeout); err != nil {
		return nil, err
	}

	src, err := accounts.GetOwned(ctx, req.SourceAccountID, userID)
	if err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	dst, err := accounts.GetByNumber(ctx, req.DestinationAccountNumber)
	if err != nil {
		return nil, fmt.Errorf("destination account: %w", err)
	}
	if src.ID == dst.ID {
		return nil, common.ErrSameAccount
	}

	first, second := src.ID, dst.ID
	if second < first {
		first, second = second, first
	}
	locked := make(map[string]*models.Account, 2)
	for _, id := range []string{first, second} {
		a, err := accounts.LockForUpdate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lock account: %w", err)
		}
		locked[id] = a
	}
	src, dst = locked[src.ID], locked[dst.ID]

	if src.BalanceCents < amount {
		return nil, common.ErrInsufficientFunds
	}

	srcBalance, err := accounts.AdjustBalance(ctx, src.ID, -amount)
	if err != nil {
		return nil, fmt.Errorf("debit: %w", err)
	}
	dstBalance, err := accounts.AdjustBalance(ctx, dst.ID, amount)
	if err != nil {
		return nil, fmt.Errorf("credit: %w", err)
	}

	outMemo, inMemo := memo, memo
	if memo == "" {
		outMemo = "Transfer to " + dst.Number
		inMemo = "Transfer from " + src.Number
	}

	txs := s.repomanager.Transactions(tx)
	out, err := txs.Create(ctx, &models.Transaction{
		UserID:             src.UserID,
		AccountID:          src.ID,
		Direction:          common.DirectionOut,
		AmountCents:        amount,
		BalanceAfterCents:  srcBalance,
		Memo:               outMemo,
		CounterpartyNumber: dst.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("record debit: %w", err)
	}
	in, err := txs.Create(ctx, &models.Transaction{
		UserID:             dst.UserID,
		AccountID:          dst.ID,
		Direction:          common.DirectionIn,
		AmountCents:        amount,
		BalanceAfterCents:  dstBalance,
		Memo:               inMemo,
		CounterpartyNumber: src.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("record credit: %w", err)
	}

	return &models.TransferResult{
		SourceBalanceCents:      srcBalance,
		DestinationBalanceCents: dstBalance,
		OutTransactionID:        out.ID,
		InTransactionID:         in.ID,
	}, nil
}

func (s *LedgerService) freeAccountNumber(ctx context.Context, db dbx.DBTX) (string, error) {
	repo := s.repomanager.Accounts(db)
	for i := 0; i < accountNumberAttempts; i++ {
		n, err := randomAccountNumber()
		if err != nil {
			return "", err
		}
		taken, err := repo.NumberExists(ctx, n)
		if err != nil {
			return "", fmt.Errorf("account number check: %w", err)
		}
		if !taken {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: no free account number after %d attempts", common.ErrStorageConflict, accountNumberAttempts)
}

var accountNumberSpan = big.NewInt(9_000_000_000)

// randomAccountNumber returns a 10-digit number without a leading zero.
func randomAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, accountNumberSpan)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1_000_000_000), nil
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		common.ErrorNotFound, common.ErrInsufficientFunds, common.ErrInvalidAmount,
		common.ErrSameAccount, common.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// classifyTransferError keeps business errors as they are, turns transient
// storage failures into common.ErrStorageConflict and wraps the rest.
func classifyTransferError(ctx context.Context, err error) error {
	if isBusinessError(err) {
		return err
	}
	if dbx.IsRetryable(err) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageConflict, err)
	}
	return fmt.Errorf("transfer: %w", err)
}
