package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ironbank/internal/client/client"
	"github.com/dmitrijs2005/ironbank/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordsDiffer = errors.New("passwords do not match")

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

// newPassword asks twice and returns the value once both entries agree.
func (a *App) newPassword() (string, error) {
	first, err := getPassword("New password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(first)

	second, err := getPassword("Repeat password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(second)

	if string(first) != string(second) {
		return "", errPasswordsDiffer
	}
	return string(first), nil
}

// Register prompts for the customer profile and creates it. The server opens
// the checking and savings accounts.
func (a *App) Register(ctx context.Context) error {
	var req client.RegisterRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &req.FirstName},
		{"Last name", &req.LastName},
		{"ID number (13 digits)", &req.IDNumber},
		{"Email", &req.Email},
		{"Account number (10 digits)", &req.AccountNumber},
	}
	for _, f := range fields {
		v, err := a.prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := a.newPassword()
	if err != nil {
		return err
	}
	req.Password = password

	u, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s. Log in to continue.\n", u.Email)
	return nil
}

// Login runs the password step and then asks for the e-mailed code. If the
// code step fails the user can retry with "otp" or "resend".
func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	accountNumber, err := a.prompt("Account number")
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, string(password), accountNumber, ""); err != nil {
		return err
	}

	a.pendingEmail = email
	fmt.Fprintln(a.out, "A verification code was sent to your email.")
	return a.VerifyCode(ctx)
}

func (a *App) VerifyCode(ctx context.Context) error {
	if a.pendingEmail == "" {
		return errors.New("no login in progress, run login first")
	}
	code, err := a.prompt("Verification code")
	if err != nil {
		return err
	}

	u, err := a.api.VerifyOTP(ctx, a.pendingEmail, code)
	if err != nil {
		return err
	}

	a.user = u
	a.pendingEmail = ""
	fmt.Fprintf(a.out, "Welcome, %s\n", u.FullName)
	return nil
}

func (a *App) ResendCode(ctx context.Context) error {
	if a.pendingEmail == "" {
		return errors.New("no login in progress, run login first")
	}
	if err := a.api.RequestOTP(ctx, a.pendingEmail); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "A new code was sent.")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	if err := a.api.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If that email exists, a reset link was sent.")
	return nil
}

// ResetPassword takes the token from the e-mailed link.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	token, err := a.prompt("Reset token")
	if err != nil {
		return err
	}
	password, err := a.newPassword()
	if err != nil {
		return err
	}

	if err := a.api.ResetPassword(ctx, email, token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password updated. You can now log in.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.api.Session(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> account %s, role %s\n", u.FullName, u.Email, u.AccountNumber, u.Role)
	return nil
}

// Logout revokes the session. The local session is dropped either way.
func (a *App) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	a.user = nil
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
