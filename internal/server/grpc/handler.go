package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/common"
	pb "github.com/dmitrijs2005/ironbank/internal/proto"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	p := models.Profile{
		FirstName:     req.GetFirstName(),
		LastName:      req.GetLastName(),
		IDNumber:      req.GetIdNumber(),
		Email:         req.GetEmail(),
		AccountNumber: req.GetAccountNumber(),
	}

	u, err := s.bank.Register(ctx, p, req.GetPassword())
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.RegisterResponse{
		Message: "Registered",
		User:    userView(u.Summary()),
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.MessageResponse, error) {
	if err := services.ValidateEmail(req.GetEmail()); err != nil {
		return nil, err
	}
	if err := services.ValidateAccountNumber(req.GetAccountNumber()); err != nil {
		return nil, err
	}

	switch req.GetRole() {
	case "", common.RoleCustomer, common.RoleAdmin:
	default:
		return nil, status.Error(codes.InvalidArgument, "invalid role")
	}

	if err := s.bank.Login(ctx, req.GetEmail(), req.GetPassword(), req.GetAccountNumber(), req.GetRole()); err != nil {
		return nil, err
	}
	return message("OTP sent"), nil
}

func (s *GRPCServer) VerifyOTP(ctx context.Context, req *pb.VerifyOTPRequest) (*pb.VerifyOTPResponse, error) {
	if err := services.ValidateEmail(req.GetEmail()); err != nil {
		return nil, err
	}
	if err := services.ValidateCode(req.GetCode()); err != nil {
		return nil, err
	}

	sess, err := s.bank.VerifyOTP(ctx, req.GetEmail(), req.GetCode())
	if err != nil {
		return nil, err
	}
	return &pb.VerifyOTPResponse{
		Message:     "MFA verified",
		AccessToken: sess.Token,
		User:        userView(sess.User),
	}, nil
}

func (s *GRPCServer) RequestOTP(ctx context.Context, req *pb.RequestOTPRequest) (*pb.MessageResponse, error) {
	if err := services.ValidateEmail(req.GetEmail()); err != nil {
		return nil, err
	}
	if err := s.bank.RequestOTP(ctx, req.GetEmail()); err != nil {
		return nil, err
	}
	return message("If that email exists, a new code was sent."), nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.MessageResponse, error) {
	if err := services.ValidateEmail(req.GetEmail()); err != nil {
		return nil, err
	}
	if err := s.bank.ForgotPassword(ctx, req.GetEmail()); err != nil {
		return nil, err
	}
	return message("If that email exists, we sent a reset link."), nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	if err := services.ValidateEmail(req.GetEmail()); err != nil {
		return nil, err
	}
	if err := s.bank.ResetPassword(ctx, req.GetEmail(), req.GetToken(), req.GetNewPassword()); err != nil {
		return nil, err
	}
	return message("Password updated. You can now sign in with your new password."), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.MessageResponse, error) {
	if err := s.bank.Logout(ctx, tokenFromContext(ctx)); err != nil {
		return nil, err
	}
	return message("Logged out"), nil
}

func (s *GRPCServer) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.GetSessionResponse, error) {
	u, err := s.bank.GetSession(ctx, tokenFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &pb.GetSessionResponse{User: userView(*u)}, nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsResponse, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, common.ErrInvalidOrExpiredSession
	}

	accounts, err := s.bank.ListAccounts(ctx, claims.UserID())
	if err != nil {
		return nil, err
	}

	out := make([]*pb.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountView(a))
	}
	return &pb.ListAccountsResponse{Accounts: out}, nil
}

func (s *GRPCServer) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, common.ErrInvalidOrExpiredSession
	}

	txs, err := s.bank.ListTransactions(ctx, claims.UserID(), int(req.GetLimit()))
	if err != nil {
		return nil, err
	}

	out := make([]*pb.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionView(t))
	}
	return &pb.ListTransactionsResponse{Transactions: out}, nil
}

func (s *GRPCServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, common.ErrInvalidOrExpiredSession
	}

	in := models.TransferRequest{
		SourceAccountID:          req.GetFromAccountId(),
		DestinationAccountNumber: req.GetToAccountNumber(),
		Amount:                   req.GetAmount(),
		Memo:                     req.GetMemo(),
	}
	if err := services.ValidateAccountNumber(in.DestinationAccountNumber); err != nil {
		return nil, err
	}

	res, err := s.bank.Transfer(ctx, claims.UserID(), in)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Transfer complete", "user_id", claims.UserID(), "tx_out", res.OutTransactionID)
	return &pb.TransferResponse{
		Message:          "Transfer complete",
		FromAccountId:    in.SourceAccountID,
		FromBalanceCents: res.SourceBalanceCents,
		FromBalance:      services.FormatCents(res.SourceBalanceCents),
		ToAccountNumber:  in.DestinationAccountNumber,
		ToBalanceCents:   res.DestinationBalanceCents,
		ToBalance:        services.FormatCents(res.DestinationBalanceCents),
		TxOutId:          res.OutTransactionID,
		TxInId:           res.InTransactionID,
	}, nil
}

func (s *GRPCServer) ExportStatement(ctx context.Context, req *pb.ExportStatementRequest) (*pb.ExportStatementResponse, error) {
	if s.statements == nil {
		return nil, status.Error(codes.Unimplemented, "statement export is not configured")
	}
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, common.ErrInvalidOrExpiredSession
	}

	st, err := s.statements.Export(ctx, claims.UserID(), int(req.GetLimit()))
	if err != nil {
		return nil, err
	}
	return &pb.ExportStatementResponse{
		Key:       st.Key,
		Url:       st.URL,
		Rows:      int32(st.Rows),
		ExpiresAt: st.ExpiresAt.UTC().Format(time.RFC3339),
	}, nil
}
