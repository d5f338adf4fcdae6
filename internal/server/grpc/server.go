// Package grpc exposes the bank operations over gRPC (ironbank.v1.Bank).
// The session token travels in the access_token metadata key.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/ironbank/internal/logging"
	pb "github.com/dmitrijs2005/ironbank/internal/proto"
	"github.com/dmitrijs2005/ironbank/internal/server/auth"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/services"
	"google.golang.org/grpc"
)

// Bank is the application surface the server delegates to.
type Bank interface {
	Register(ctx context.Context, p models.Profile, password string) (*models.User, error)
	Login(ctx context.Context, email, password, accountNumber, role string) error
	VerifyOTP(ctx context.Context, email, code string) (*services.Session, error)
	RequestOTP(ctx context.Context, email string) error
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
	GetSession(ctx context.Context, token string) (*models.UserSummary, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
	Transfer(ctx context.Context, userID string, req models.TransferRequest) (*models.TransferResult, error)
}

// StatementExporter produces downloadable statements.
type StatementExporter interface {
	Export(ctx context.Context, userID string, limit int) (*services.Statement, error)
}

type GRPCServer struct {
	pb.UnimplementedBankServer
	address    string
	bank       Bank
	statements StatementExporter
	logger     logging.Logger
}

var _ pb.BankServer = (*GRPCServer)(nil)

// publicMethods can be called without a session.
var publicMethods = map[string]bool{
	pb.Bank_Ping_FullMethodName:           true,
	pb.Bank_Register_FullMethodName:       true,
	pb.Bank_Login_FullMethodName:          true,
	pb.Bank_VerifyOTP_FullMethodName:      true,
	pb.Bank_RequestOTP_FullMethodName:     true,
	pb.Bank_ForgotPassword_FullMethodName: true,
	pb.Bank_ResetPassword_FullMethodName:  true,
}

// NewGRPCServer builds the server. statements may be nil, in which case
// ExportStatement answers Unimplemented.
func NewGRPCServer(a string, l logging.Logger, bank Bank, statements StatementExporter) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		bank:       bank,
		statements: statements,
	}
}

// NewServer returns a grpc.Server with the bank service and interceptors
// registered, ready to Serve.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.errorInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterBankServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
