package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	"github.com/dmitrijs2005/ironbank/internal/logging"
	pb "github.com/dmitrijs2005/ironbank/internal/proto"
	"github.com/dmitrijs2005/ironbank/internal/server/auth"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const validToken = "good-token"

type fakeBank struct {
	loginErr    error
	resetErr    error
	transferErr error
	gotTransfer models.TransferRequest
	gotUserID   string
	gotLimit    int
	loggedOut   string
}

func (b *fakeBank) Register(_ context.Context, p models.Profile, _ string) (*models.User, error) {
	return &models.User{ID: "u1", Email: p.Email, Role: common.RoleCustomer}, nil
}

func (b *fakeBank) Login(context.Context, string, string, string, string) error { return b.loginErr }

func (b *fakeBank) VerifyOTP(_ context.Context, email, _ string) (*services.Session, error) {
	return &services.Session{Token: validToken, User: models.UserSummary{ID: "u1", Email: email, FullName: "Arya Stark"}}, nil
}

func (b *fakeBank) RequestOTP(context.Context, string) error { return nil }

func (b *fakeBank) Logout(_ context.Context, token string) error {
	b.loggedOut = token
	return nil
}

func (b *fakeBank) Authenticate(_ context.Context, token string) (*auth.Claims, error) {
	if token != validToken {
		return nil, common.ErrInvalidOrExpiredSession
	}
	return &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Role: common.RoleCustomer}, nil
}

func (b *fakeBank) GetSession(context.Context, string) (*models.UserSummary, error) {
	return &models.UserSummary{ID: "u1", Email: "arya@winterfell.io"}, nil
}

func (b *fakeBank) ForgotPassword(context.Context, string) error { return nil }

func (b *fakeBank) ResetPassword(context.Context, string, string, string) error {
	return b.resetErr
}

func (b *fakeBank) ListAccounts(_ context.Context, userID string) ([]models.Account, error) {
	b.gotUserID = userID
	return []models.Account{
		{ID: "a1", Number: "1234567890", Type: common.AccountTypeChecking, Currency: "ZAR", BalanceCents: 1250000},
	}, nil
}

func (b *fakeBank) ListTransactions(_ context.Context, userID string, limit int) ([]models.Transaction, error) {
	b.gotUserID, b.gotLimit = userID, limit
	return []models.Transaction{
		{ID: "t1", AccountID: "a1", AccountNumber: "1234567890", Direction: common.DirectionOut, AmountCents: 2500, BalanceAfterCents: 1247500, CreatedAt: time.Unix(0, 0)},
	}, nil
}

func (b *fakeBank) Transfer(_ context.Context, userID string, req models.TransferRequest) (*models.TransferResult, error) {
	b.gotUserID, b.gotTransfer = userID, req
	if b.transferErr != nil {
		return nil, b.transferErr
	}
	return &models.TransferResult{SourceBalanceCents: 1000, DestinationBalanceCents: 2000, OutTransactionID: "out", InTransactionID: "in"}, nil
}

func startServer(t *testing.T, bank Bank, statements StatementExporter) pb.BankClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := NewGRPCServer("bufnet", logging.Nop{}, bank, statements)
	srv := s.NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewBankClient(conn)
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func TestServer_PingIsPublic(t *testing.T) {
	c := startServer(t, &fakeBank{}, nil)

	out, err := c.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", out.GetStatus())
}

func TestServer_Register(t *testing.T) {
	c := startServer(t, &fakeBank{}, nil)

	out, err := c.Register(context.Background(), &pb.RegisterRequest{
		FirstName: "Arya", LastName: "Stark", IdNumber: "9901015800082",
		Email: "arya@winterfell.io", AccountNumber: "1234567890", Password: "Needle-2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registered", out.GetMessage())
	assert.Equal(t, "u1", out.GetUser().GetId())
	assert.Equal(t, "arya@winterfell.io", out.GetUser().GetEmail())
}

func TestServer_LoginValidatesAndMapsErrors(t *testing.T) {
	bank := &fakeBank{}
	c := startServer(t, bank, nil)
	ctx := context.Background()

	_, err := c.Login(ctx, &pb.LoginRequest{Email: "nope", AccountNumber: "1234567890"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Login(ctx, &pb.LoginRequest{Email: "arya@winterfell.io", AccountNumber: "1234567890", Password: "x", Role: "root"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	bank.loginErr = common.ErrInvalidCredentials
	_, err = c.Login(ctx, &pb.LoginRequest{Email: "arya@winterfell.io", AccountNumber: "1234567890", Password: "x"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid credentials", status.Convert(err).Message())

	bank.loginErr = nil
	out, err := c.Login(ctx, &pb.LoginRequest{Email: "arya@winterfell.io", AccountNumber: "1234567890", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "OTP sent", out.GetMessage())
}

func TestServer_VerifyOTPReturnsTokenAndUser(t *testing.T) {
	c := startServer(t, &fakeBank{}, nil)

	out, err := c.VerifyOTP(context.Background(), &pb.VerifyOTPRequest{Email: "arya@winterfell.io", Code: "012345"})
	require.NoError(t, err)
	assert.Equal(t, validToken, out.GetAccessToken())
	assert.Equal(t, "Arya Stark", out.GetUser().GetFullName())

	_, err = c.VerifyOTP(context.Background(), &pb.VerifyOTPRequest{Email: "arya@winterfell.io", Code: "12"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_ProtectedMethodsNeedSession(t *testing.T) {
	c := startServer(t, &fakeBank{}, nil)

	_, err := c.ListAccounts(context.Background(), &pb.ListAccountsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())

	_, err = c.ListAccounts(withToken("forged"), &pb.ListAccountsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_ListAccountsAndTransactions(t *testing.T) {
	bank := &fakeBank{}
	c := startServer(t, bank, nil)

	accounts, err := c.ListAccounts(withToken(validToken), &pb.ListAccountsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "u1", bank.gotUserID)
	require.Len(t, accounts.GetAccounts(), 1)
	assert.Equal(t, "12500.00", accounts.GetAccounts()[0].GetBalance())
	assert.EqualValues(t, 1250000, accounts.GetAccounts()[0].GetBalanceCents())

	txs, err := c.ListTransactions(withToken(validToken), &pb.ListTransactionsRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, bank.gotLimit)
	require.Len(t, txs.GetTransactions(), 1)
	tx := txs.GetTransactions()[0]
	assert.Equal(t, "25.00", tx.GetAmount())
	assert.Equal(t, "1234567890", tx.GetAccountNumber())
	assert.Equal(t, "1970-01-01T00:00:00Z", tx.GetCreatedAt())
}

func TestServer_Transfer(t *testing.T) {
	bank := &fakeBank{}
	c := startServer(t, bank, nil)
	ctx := withToken(validToken)

	out, err := c.Transfer(ctx, &pb.TransferRequest{
		FromAccountId:   "a1",
		ToAccountNumber: "2222222222",
		Amount:          "250.75",
		Memo:            "rent",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransferRequest{SourceAccountID: "a1", DestinationAccountNumber: "2222222222", Amount: "250.75", Memo: "rent"}, bank.gotTransfer)
	assert.Equal(t, "out", out.GetTxOutId())
	assert.Equal(t, "10.00", out.GetFromBalance())
	assert.Equal(t, "20.00", out.GetToBalance())

	bank.transferErr = common.ErrInsufficientFunds
	_, err = c.Transfer(ctx, &pb.TransferRequest{FromAccountId: "a1", ToAccountNumber: "2222222222", Amount: "1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	bank.transferErr = fmt.Errorf("%w: deadlock detected (SQLSTATE 40P01)", common.ErrStorageConflict)
	_, err = c.Transfer(ctx, &pb.TransferRequest{FromAccountId: "a1", ToAccountNumber: "2222222222", Amount: "1"})
	assert.Equal(t, codes.Aborted, status.Code(err))
	assert.NotContains(t, status.Convert(err).Message(), "SQLSTATE")

	_, err = c.Transfer(ctx, &pb.TransferRequest{FromAccountId: "a1", ToAccountNumber: "22", Amount: "1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_LogoutUsesPresentedToken(t *testing.T) {
	bank := &fakeBank{}
	c := startServer(t, bank, nil)

	_, err := c.Logout(withToken(validToken), &pb.LogoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, validToken, bank.loggedOut)
}

func TestServer_GetSession(t *testing.T) {
	c := startServer(t, &fakeBank{}, nil)

	out, err := c.GetSession(withToken(validToken), &pb.GetSessionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "arya@winterfell.io", out.GetUser().GetEmail())
}

func TestServer_ExportStatementNotConfigured(t *testing.T) {
	c := startServer(t, &fakeBank{}, nil)

	_, err := c.ExportStatement(withToken(validToken), &pb.ExportStatementRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

type fakeStatements struct{}

func (fakeStatements) Export(_ context.Context, userID string, limit int) (*services.Statement, error) {
	return &services.Statement{Key: "statements/" + userID + "/x.csv", URL: "http://s3/x", Rows: 3, ExpiresAt: time.Unix(900, 0)}, nil
}

func TestServer_ExportStatement(t *testing.T) {
	c := startServer(t, &fakeBank{}, fakeStatements{})

	out, err := c.ExportStatement(withToken(validToken), &pb.ExportStatementRequest{})
	require.NoError(t, err)
	assert.Equal(t, "statements/u1/x.csv", out.GetKey())
	assert.EqualValues(t, 3, out.GetRows())
	assert.Equal(t, "1970-01-01T00:15:00Z", out.GetExpiresAt())
}

func TestStatusFromError(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, &fakeBank{}, nil)
	ctx := context.Background()

	tests := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("%w: invalid email", common.ErrValidation), codes.InvalidArgument},
		{common.ErrDuplicateIdentity, codes.AlreadyExists},
		{common.ErrRoleMismatch, codes.PermissionDenied},
		{common.ErrNoPendingChallenge, codes.FailedPrecondition},
		{common.ErrTooManyAttempts, codes.ResourceExhausted},
		{&common.CooldownError{Wait: 3 * time.Second}, codes.ResourceExhausted},
		{fmt.Errorf("%w: %w", common.ErrInvalidOrExpiredToken, common.ErrNoToken), codes.InvalidArgument},
		{fmt.Errorf("source account: %w", common.ErrorNotFound), codes.NotFound},
		{status.Error(codes.Unimplemented, "x"), codes.Unimplemented},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("db error: connection refused"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := s.statusFromError(ctx, "/m", tt.err)
			assert.Equal(t, tt.want, status.Code(got))
		})
	}

	internal := s.statusFromError(ctx, "/m", errors.New("db error: password for user postgres"))
	assert.Equal(t, "internal error", status.Convert(internal).Message())
}

func TestResetPasswordErrorHidesCause(t *testing.T) {
	bank := &fakeBank{}
	c := startServer(t, bank, nil)
	req := &pb.ResetPasswordRequest{Email: "arya@winterfell.io", Token: "abc", NewPassword: "x"}

	var messages []string
	for _, cause := range []error{nil, common.ErrNoToken, common.ErrTokenExpired, common.ErrTokenMismatch} {
		bank.resetErr = common.ErrInvalidOrExpiredToken
		if cause != nil {
			bank.resetErr = fmt.Errorf("%w: %w", common.ErrInvalidOrExpiredToken, cause)
		}
		_, err := c.ResetPassword(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		messages = append(messages, status.Convert(err).Message())
	}

	for _, m := range messages {
		assert.Equal(t, "invalid or expired token", m)
	}
}
