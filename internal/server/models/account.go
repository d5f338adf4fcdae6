package models

import "time"

// Account is a money-holding account. Balances are integer minor units.
type Account struct {
	ID           string
	UserID       string
	Number       string
	Type         string
	Currency     string
	BalanceCents int64
	CreatedAt    time.Time
}

// Transaction is one leg of a transfer as seen by the account owner.
type Transaction struct {
	ID                 string
	UserID             string
	AccountID          string
	AccountNumber      string
	AccountType        string
	Direction          string
	AmountCents        int64
	BalanceAfterCents  int64
	Memo               string
	CounterpartyNumber string
	CreatedAt          time.Time
}

// TransferRequest is the caller's transfer input. Amount is a decimal string
// in major units ("1,250.50").
type TransferRequest struct {
	SourceAccountID          string
	DestinationAccountNumber string
	Amount                   string
	Memo                     string
}

// TransferResult reports the post-transfer balances and both ledger rows.
type TransferResult struct {
	SourceBalanceCents      int64
	DestinationBalanceCents int64
	OutTransactionID        string
	InTransactionID         string
}
