package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	VerifyCode(ctx context.Context) error
	ResendCode(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Accounts(ctx context.Context) error
	History(ctx context.Context, limit int) error
	Transfer(ctx context.Context) error
	Statement(ctx context.Context, limit int) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Iron Bank CLI.
//
// It reads a line from reader (shared with the command prompts, so nothing is
// buffered twice), parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - register              create a customer profile
//	  - login                 password step, then the e-mailed code
//	  - otp | resend          enter or re-request the code
//	  - forgot | reset        password reset by e-mailed link
//
//	Logged in:
//	  - whoami                current session
//	  - accounts              balances
//	  - history [n]           last n transactions
//	  - transfer              move money
//	  - statement [n]         export and download a CSV statement
//	  - logout
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ib %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		err = nil
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, accounts, history [n], transfer, statement [n], logout, exit")
			} else {
				printlnFn("Available commands: register, login, otp, resend, forgot, reset, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "otp":
			err = a.VerifyCode(ctx)
		case "resend":
			err = a.ResendCode(ctx)
		case "forgot":
			err = a.ForgotPassword(ctx)
		case "reset":
			err = a.ResetPassword(ctx)

		case "whoami", "accounts", "history", "transfer", "statement", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			err = runSessionCommand(ctx, a, cmd, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func runSessionCommand(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "whoami":
		return a.WhoAmI(ctx)
	case "accounts":
		return a.Accounts(ctx)
	case "history":
		n, err := limitArg(args)
		if err != nil {
			return err
		}
		return a.History(ctx, n)
	case "transfer":
		return a.Transfer(ctx)
	case "statement":
		n, err := limitArg(args)
		if err != nil {
			return err
		}
		return a.Statement(ctx, n)
	case "logout":
		return a.Logout(ctx)
	}
	return nil
}

// limitArg reads an optional positive count; absent means server default.
func limitArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("usage: <command> [n], n must be a positive number")
	}
	return n, nil
}
