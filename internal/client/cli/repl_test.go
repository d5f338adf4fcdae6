package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	limits []int
	err    error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) Register(ctx context.Context) error { return f.call("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.call("login")
}
func (f *fakeExec) VerifyCode(ctx context.Context) error     { return f.call("otp") }
func (f *fakeExec) ResendCode(ctx context.Context) error     { return f.call("resend") }
func (f *fakeExec) ForgotPassword(ctx context.Context) error { return f.call("forgot") }
func (f *fakeExec) ResetPassword(ctx context.Context) error  { return f.call("reset") }
func (f *fakeExec) WhoAmI(ctx context.Context) error         { return f.call("whoami") }
func (f *fakeExec) Accounts(ctx context.Context) error       { return f.call("accounts") }
func (f *fakeExec) History(ctx context.Context, limit int) error {
	f.limits = append(f.limits, limit)
	return f.call("history")
}
func (f *fakeExec) Transfer(ctx context.Context) error { return f.call("transfer") }
func (f *fakeExec) Statement(ctx context.Context, limit int) error {
	f.limits = append(f.limits, limit)
	return f.call("statement")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.call("logout")
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			} else if e, ok := v.(error); ok {
				parts = append(parts, e.Error())
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"accounts",
		"login",
		"help",
		"accounts",
		"history 5",
		"transfer",
		"statement",
		"whoami",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	want := []string{"login", "accounts", "history", "transfer", "statement", "whoami", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if len(exec.limits) != 2 || exec.limits[0] != 5 || exec.limits[1] != 0 {
		t.Fatalf("limits = %v, want [5 0]", exec.limits)
	}
}

func TestRunREPL_SessionCommandsNeedLogin(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("transfer\nquit\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	found := false
	for _, p := range *printed {
		if p == "Please log in first" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing login hint in %v", *printed)
	}
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{err: errors.New("request rejected: invalid code")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("otp\nresend\n")))

	if strings.Join(exec.calls, ",") != "otp,resend" {
		t.Fatalf("calls = %v", exec.calls)
	}
	n := 0
	for _, p := range *printed {
		if p == "Error: request rejected: invalid code" {
			n++
		}
	}
	if n != 2 {
		t.Fatalf("want 2 printed errors, got %d in %v", n, *printed)
	}
}

func TestRunREPL_BadLimit(t *testing.T) {
	silence(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("history abc\nhistory -1\nexit\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
