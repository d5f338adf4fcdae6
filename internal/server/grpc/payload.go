package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/ironbank/internal/proto"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/services"
)

func userView(u models.UserSummary) *pb.User {
	return &pb.User{
		Id:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		AccountNumber: u.AccountNumber,
		Role:          u.Role,
	}
}

func accountView(a models.Account) *pb.Account {
	return &pb.Account{
		Id:           a.ID,
		Number:       a.Number,
		Type:         a.Type,
		Currency:     a.Currency,
		BalanceCents: a.BalanceCents,
		Balance:      services.FormatCents(a.BalanceCents),
	}
}

func transactionView(t models.Transaction) *pb.Transaction {
	return &pb.Transaction{
		Id:                 t.ID,
		AccountId:          t.AccountID,
		AccountNumber:      t.AccountNumber,
		AccountType:        t.AccountType,
		Direction:          t.Direction,
		AmountCents:        t.AmountCents,
		Amount:             services.FormatCents(t.AmountCents),
		BalanceAfterCents:  t.BalanceAfterCents,
		BalanceAfter:       services.FormatCents(t.BalanceAfterCents),
		Memo:               t.Memo,
		CounterpartyNumber: t.CounterpartyNumber,
		CreatedAt:          t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func message(msg string) *pb.MessageResponse {
	return &pb.MessageResponse{Message: msg}
}
