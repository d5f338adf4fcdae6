package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/client/client"
	"github.com/dmitrijs2005/ironbank/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loggedIn bool
	pingErr  error
	pings    atomic.Int32

	registered client.RegisterRequest
	login      []string
	verifyErr  error
	verified   []string
	resent     string
	reset      []string
	transfer   client.TransferRequest
	exportN    int
	logoutErr  error
	closed     bool
}

func (f *fakeAPI) Ping(context.Context) error {
	f.pings.Add(1)
	return f.pingErr
}

func (f *fakeAPI) Register(_ context.Context, req client.RegisterRequest) (*client.User, error) {
	f.registered = req
	return &client.User{ID: "u1", Email: req.Email}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password, accountNumber, role string) error {
	f.login = []string{email, password, accountNumber, role}
	return nil
}

func (f *fakeAPI) VerifyOTP(_ context.Context, email, code string) (*client.User, error) {
	f.verified = append(f.verified, email+":"+code)
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	f.loggedIn = true
	return &client.User{ID: "u1", Email: email, FullName: "Arya Stark"}, nil
}

func (f *fakeAPI) RequestOTP(_ context.Context, email string) error {
	f.resent = email
	return nil
}

func (f *fakeAPI) ForgotPassword(context.Context, string) error { return nil }

func (f *fakeAPI) ResetPassword(_ context.Context, email, token, newPassword string) error {
	f.reset = []string{email, token, newPassword}
	return nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.loggedIn = false
	return f.logoutErr
}

func (f *fakeAPI) Session(context.Context) (*client.User, error) {
	return &client.User{FullName: "Arya Stark", Email: "arya@winterfell.io", AccountNumber: "1234567890", Role: "customer"}, nil
}

func (f *fakeAPI) Accounts(context.Context) ([]client.Account, error) {
	return []client.Account{
		{ID: "a1", Number: "1234567890", Type: "checking", Currency: "ZAR", Balance: "12500.00"},
		{ID: "a2", Number: "2234567890", Type: "savings", Currency: "ZAR", Balance: "25890.00"},
	}, nil
}

func (f *fakeAPI) Transactions(context.Context, int) ([]client.Transaction, error) {
	return nil, nil
}

func (f *fakeAPI) Transfer(_ context.Context, req client.TransferRequest) (*client.TransferResult, error) {
	f.transfer = req
	return &client.TransferResult{FromAccountID: req.FromAccountID, FromBalance: "12450.00"}, nil
}

func (f *fakeAPI) ExportStatement(_ context.Context, limit int) (*client.StatementLink, error) {
	f.exportN = limit
	return &client.StatementLink{Key: "statements/u1/2026/10/18/abc.csv", URL: "http://s3/abc", Rows: 3}, nil
}

func (f *fakeAPI) LoggedIn() bool { return f.loggedIn }
func (f *fakeAPI) Close() error   { f.closed = true; return nil }

func testApp(t *testing.T, api *fakeAPI, input string, passwords ...string) (*App, *bytes.Buffer) {
	t.Helper()

	old := getPassword
	t.Cleanup(func() { getPassword = old })
	getPassword = func(string, io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, errors.New("no password scripted")
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	var out bytes.Buffer
	return newApp(cfg, api, strings.NewReader(input), &out), &out
}

func TestApp_Register(t *testing.T) {
	api := &fakeAPI{}
	input := "Arya\nStark\n9001015800087\narya@winterfell.io\n1234567890\n"
	app, out := testApp(t, api, input, "Valar-Morghulis1", "Valar-Morghulis1")

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, client.RegisterRequest{
		FirstName:     "Arya",
		LastName:      "Stark",
		IDNumber:      "9001015800087",
		Email:         "arya@winterfell.io",
		AccountNumber: "1234567890",
		Password:      "Valar-Morghulis1",
	}, api.registered)
	assert.Contains(t, out.String(), "Registered arya@winterfell.io")
}

func TestApp_RegisterPasswordsDiffer(t *testing.T) {
	api := &fakeAPI{}
	input := "Arya\nStark\n9001015800087\narya@winterfell.io\n1234567890\n"
	app, _ := testApp(t, api, input, "Valar-Morghulis1", "Valar-Morghulis2")

	err := app.Register(context.Background())
	assert.ErrorIs(t, err, errPasswordsDiffer)
	assert.Empty(t, api.registered.Email)
}

func TestApp_LoginThenCode(t *testing.T) {
	api := &fakeAPI{}
	app, out := testApp(t, api, "arya@winterfell.io\n1234567890\n482913\n", "Valar-Morghulis1")

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, []string{"arya@winterfell.io", "Valar-Morghulis1", "1234567890", ""}, api.login)
	assert.Equal(t, []string{"arya@winterfell.io:482913"}, api.verified)
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, Arya Stark")
	assert.Equal(t, "(arya@winterfell.io)", app.getStatus())
}

func TestApp_WrongCodeKeepsPendingLogin(t *testing.T) {
	api := &fakeAPI{verifyErr: client.ErrRejected}
	app, _ := testApp(t, api, "arya@winterfell.io\n1234567890\n000000\n", "Valar-Morghulis1")

	err := app.Login(context.Background())
	assert.ErrorIs(t, err, client.ErrRejected)
	assert.False(t, app.isLoggedIn())

	require.NoError(t, app.ResendCode(context.Background()))
	assert.Equal(t, "arya@winterfell.io", api.resent)
}

func TestApp_CodeWithoutLogin(t *testing.T) {
	app, _ := testApp(t, &fakeAPI{}, "")
	assert.Error(t, app.VerifyCode(context.Background()))
	assert.Error(t, app.ResendCode(context.Background()))
}

func TestApp_ResetPassword(t *testing.T) {
	api := &fakeAPI{}
	app, out := testApp(t, api, "arya@winterfell.io\ntok123\n", "Needle-Is-Sharp2", "Needle-Is-Sharp2")

	require.NoError(t, app.ResetPassword(context.Background()))
	assert.Equal(t, []string{"arya@winterfell.io", "tok123", "Needle-Is-Sharp2"}, api.reset)
	assert.Contains(t, out.String(), "Password updated")
}

func TestApp_Transfer(t *testing.T) {
	api := &fakeAPI{}
	app, out := testApp(t, api, "1234567890\n2234567890\n1,250.50\nrent\n")

	require.NoError(t, app.Transfer(context.Background()))
	assert.Equal(t, client.TransferRequest{
		FromAccountID:   "a1",
		ToAccountNumber: "2234567890",
		Amount:          "1,250.50",
		Memo:            "rent",
	}, api.transfer)
	assert.Contains(t, out.String(), "1234567890 balance: 12450.00")
}

func TestApp_TransferFromForeignAccount(t *testing.T) {
	api := &fakeAPI{}
	app, _ := testApp(t, api, "9999999999\n")

	err := app.Transfer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not one of your accounts")
	assert.Empty(t, api.transfer.FromAccountID)
}

func TestApp_Accounts(t *testing.T) {
	app, out := testApp(t, &fakeAPI{}, "")

	require.NoError(t, app.Accounts(context.Background()))
	assert.Contains(t, out.String(), "1234567890")
	assert.Contains(t, out.String(), "25890.00")
}

func TestApp_HistoryEmpty(t *testing.T) {
	app, out := testApp(t, &fakeAPI{}, "")

	require.NoError(t, app.History(context.Background(), 0))
	assert.Contains(t, out.String(), "No transactions yet")
}

func TestApp_Statement(t *testing.T) {
	oldDownload, oldSave := downloadStatement, saveStatement
	t.Cleanup(func() { downloadStatement, saveStatement = oldDownload, oldSave })

	var gotURL, gotDir, gotName string
	downloadStatement = func(_ context.Context, url string) ([]byte, error) {
		gotURL = url
		return []byte("csv"), nil
	}
	saveStatement = func(dir, name string, data []byte) (string, error) {
		gotDir, gotName = dir, name
		return "/tmp/" + name, nil
	}

	api := &fakeAPI{}
	app, out := testApp(t, api, "")

	require.NoError(t, app.Statement(context.Background(), 50))
	assert.Equal(t, 50, api.exportN)
	assert.Equal(t, "http://s3/abc", gotURL)
	assert.Equal(t, "statements", gotDir)
	assert.Equal(t, "abc.csv", gotName)
	assert.Contains(t, out.String(), "Saved 3 transactions to /tmp/abc.csv")
}

func TestApp_LogoutDropsUserOnError(t *testing.T) {
	api := &fakeAPI{loggedIn: true, logoutErr: client.ErrUnauthorized}
	app, _ := testApp(t, api, "")
	app.user = &client.User{Email: "arya@winterfell.io"}

	assert.ErrorIs(t, app.Logout(context.Background()), client.ErrUnauthorized)
	assert.Nil(t, app.user)
}

func TestApp_OnlineStatusWatcher(t *testing.T) {
	api := &fakeAPI{}
	app, _ := testApp(t, api, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.getMode() == ModeOnline }, time.Second, time.Millisecond)
	cancel()
	<-done
	assert.GreaterOrEqual(t, api.pings.Load(), int32(1))
}
