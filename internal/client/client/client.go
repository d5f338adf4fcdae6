package client

import "context"

// Client is the API the CLI talks to.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password, accountNumber, role string) error
	VerifyOTP(ctx context.Context, email, code string) (*User, error)
	RequestOTP(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*User, error)
	Accounts(ctx context.Context) ([]Account, error)
	Transactions(ctx context.Context, limit int) ([]Transaction, error)
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	ExportStatement(ctx context.Context, limit int) (*StatementLink, error)
	LoggedIn() bool
	Close() error
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	FirstName     string
	LastName      string
	IDNumber      string
	Email         string
	AccountNumber string
	Password      string
}

type User struct {
	ID            string
	FullName      string
	Email         string
	AccountNumber string
	Role          string
}

type Account struct {
	ID           string
	Number       string
	Type         string
	Currency     string
	BalanceCents int64
	Balance      string
}

// Transaction is one ledger row of the caller; Amount and BalanceAfter are
// formatted major units.
type Transaction struct {
	ID                 string
	AccountID          string
	AccountNumber      string
	AccountType        string
	Direction          string
	AmountCents        int64
	Amount             string
	BalanceAfterCents  int64
	BalanceAfter       string
	Memo               string
	CounterpartyNumber string
	CreatedAt          string
}

type TransferRequest struct {
	FromAccountID   string
	ToAccountNumber string
	Amount          string
	Memo            string
}

type TransferResult struct {
	FromAccountID   string
	FromBalance     string
	ToAccountNumber string
	ToBalance       string
	TxOutID         string
	TxInID          string
}

type StatementLink struct {
	Key       string
	URL       string
	Rows      int
	ExpiresAt string
}
