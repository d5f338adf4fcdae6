package client

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	pb "github.com/dmitrijs2005/ironbank/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const callTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	dialOpts    []grpc.DialOption
	conn        *grpc.ClientConn
	client      pb.BankClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewIronBankClient dials endpointURL lazily. Extra options are appended to
// the defaults (insecure transport and the token interceptor).
func NewIronBankClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, dialOpts: opts}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBankClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) LoggedIn() bool {
	return s.token() != ""
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.Aborted:
		return ErrConflict
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition,
		codes.ResourceExhausted, codes.NotFound:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromPB(u *pb.User) *User {
	return &User{
		ID:            u.GetId(),
		FullName:      u.GetFullName(),
		Email:         u.GetEmail(),
		AccountNumber: u.GetAccountNumber(),
		Role:          u.GetRole(),
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		IdNumber:      req.IDNumber,
		Email:         req.Email,
		AccountNumber: req.AccountNumber,
		Password:      req.Password,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return userFromPB(resp.GetUser()), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password, accountNumber, role string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req := &pb.LoginRequest{Email: email, Password: password, AccountNumber: accountNumber, Role: role}
	if _, err := s.client.Login(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

// VerifyOTP completes login and keeps the issued session token for later
// calls.
func (s *GRPCClient) VerifyOTP(ctx context.Context, email, code string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.VerifyOTP(ctx, &pb.VerifyOTPRequest{Email: email, Code: code})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.GetAccessToken())
	return userFromPB(resp.GetUser()), nil
}

func (s *GRPCClient) RequestOTP(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if _, err := s.client.RequestOTP(ctx, &pb.RequestOTPRequest{Email: email}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if _, err := s.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	req := &pb.ResetPasswordRequest{Email: email, Token: token, NewPassword: newPassword}
	if _, err := s.client.ResetPassword(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

// Logout revokes the session on the server and forgets it locally, even
// when the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{})
	s.setToken("")
	return s.mapError(err)
}

func (s *GRPCClient) Session(ctx context.Context) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.GetSession(ctx, &pb.GetSessionRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return userFromPB(resp.GetUser()), nil
}

func (s *GRPCClient) Accounts(ctx context.Context) ([]Account, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.ListAccounts(ctx, &pb.ListAccountsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	accounts := make([]Account, 0, len(resp.GetAccounts()))
	for _, a := range resp.GetAccounts() {
		accounts = append(accounts, Account{
			ID:           a.GetId(),
			Number:       a.GetNumber(),
			Type:         a.GetType(),
			Currency:     a.GetCurrency(),
			BalanceCents: a.GetBalanceCents(),
			Balance:      a.GetBalance(),
		})
	}
	return accounts, nil
}

// Transactions returns the newest transactions; limit <= 0 leaves the page
// size to the server.
func (s *GRPCClient) Transactions(ctx context.Context, limit int) ([]Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.ListTransactions(ctx, &pb.ListTransactionsRequest{Limit: clampLimit(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}

	txs := make([]Transaction, 0, len(resp.GetTransactions()))
	for _, t := range resp.GetTransactions() {
		txs = append(txs, Transaction{
			ID:                 t.GetId(),
			AccountID:          t.GetAccountId(),
			AccountNumber:      t.GetAccountNumber(),
			AccountType:        t.GetAccountType(),
			Direction:          t.GetDirection(),
			AmountCents:        t.GetAmountCents(),
			Amount:             t.GetAmount(),
			BalanceAfterCents:  t.GetBalanceAfterCents(),
			BalanceAfter:       t.GetBalanceAfter(),
			Memo:               t.GetMemo(),
			CounterpartyNumber: t.GetCounterpartyNumber(),
			CreatedAt:          t.GetCreatedAt(),
		})
	}
	return txs, nil
}

func (s *GRPCClient) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.Transfer(ctx, &pb.TransferRequest{
		FromAccountId:   req.FromAccountID,
		ToAccountNumber: req.ToAccountNumber,
		Amount:          req.Amount,
		Memo:            req.Memo,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &TransferResult{
		FromAccountID:   resp.GetFromAccountId(),
		FromBalance:     resp.GetFromBalance(),
		ToAccountNumber: resp.GetToAccountNumber(),
		ToBalance:       resp.GetToBalance(),
		TxOutID:         resp.GetTxOutId(),
		TxInID:          resp.GetTxInId(),
	}, nil
}

func (s *GRPCClient) ExportStatement(ctx context.Context, limit int) (*StatementLink, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := s.client.ExportStatement(ctx, &pb.ExportStatementRequest{Limit: clampLimit(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &StatementLink{
		Key:       resp.GetKey(),
		URL:       resp.GetUrl(),
		Rows:      int(resp.GetRows()),
		ExpiresAt: resp.GetExpiresAt(),
	}, nil
}

func clampLimit(limit int) int32 {
	switch {
	case limit <= 0:
		return 0
	case limit > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(limit)
}
