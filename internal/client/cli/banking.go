package cli

import (
	"context"
	"fmt"
	"path"
	"text/tabwriter"

	"github.com/dmitrijs2005/ironbank/internal/client/client"
	"github.com/dmitrijs2005/ironbank/internal/filex"
	"github.com/dmitrijs2005/ironbank/internal/netx"
)

// Test seams for the statement download.
var (
	downloadStatement = netx.DownloadFromPresignedURL
	saveStatement     = filex.SaveInSubdDir
)

func (a *App) Accounts(ctx context.Context) error {
	accounts, err := a.api.Accounts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "NUMBER\tTYPE\tBALANCE\tCURRENCY\t")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", acc.Number, acc.Type, acc.Balance, acc.Currency)
	}
	return w.Flush()
}

func (a *App) History(ctx context.Context, limit int) error {
	txs, err := a.api.Transactions(ctx, limit)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tACCOUNT\tDIR\tAMOUNT\tBALANCE\tMEMO")
	for _, t := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.CreatedAt, t.AccountNumber, t.Direction, t.Amount, t.BalanceAfter, t.Memo)
	}
	return w.Flush()
}

// Transfer lets the user pick one of their accounts by number, then sends
// the amount to any account number.
func (a *App) Transfer(ctx context.Context) error {
	accounts, err := a.api.Accounts(ctx)
	if err != nil {
		return err
	}
	if err := a.Accounts(ctx); err != nil {
		return err
	}

	from, err := a.prompt("From account number")
	if err != nil {
		return err
	}
	source, ok := findAccount(accounts, from)
	if !ok {
		return fmt.Errorf("%s is not one of your accounts", from)
	}

	to, err := a.prompt("To account number")
	if err != nil {
		return err
	}
	amount, err := a.prompt("Amount (e.g. 1,250.00)")
	if err != nil {
		return err
	}
	memo, err := a.prompt("Memo (optional)")
	if err != nil {
		return err
	}

	res, err := a.api.Transfer(ctx, client.TransferRequest{
		FromAccountID:   source.ID,
		ToAccountNumber: to,
		Amount:          amount,
		Memo:            memo,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Transfer complete. %s balance: %s\n", source.Number, res.FromBalance)
	return nil
}

func findAccount(accounts []client.Account, number string) (client.Account, bool) {
	for _, acc := range accounts {
		if acc.Number == number {
			return acc, true
		}
	}
	return client.Account{}, false
}

// Statement exports recent transactions on the server and downloads the CSV
// through the presigned link.
func (a *App) Statement(ctx context.Context, limit int) error {
	link, err := a.api.ExportStatement(ctx, limit)
	if err != nil {
		return err
	}

	data, err := downloadStatement(ctx, link.URL)
	if err != nil {
		return fmt.Errorf("download statement: %w", err)
	}

	file, err := saveStatement(a.config.StatementDir, path.Base(link.Key), data)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %d transactions to %s\n", link.Rows, file)
	return nil
}
