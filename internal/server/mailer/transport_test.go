package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/logging"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPTransport_Send(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	tr := NewSMTPTransport(SMTPConfig{Host: "smtp.example", Port: 2525, Username: "u", Password: "p", From: "Iron Bank <no-reply@ironbank.local>"})
	tr.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	err := tr.Send(context.Background(), Message{To: "alice@example.com", Subject: "Your code", HTML: "<p>1</p>"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example:2525", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "no-reply@ironbank.local", gotFrom)
	assert.Equal(t, []string{"alice@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.True(t, strings.HasPrefix(msg, "From: Iron Bank <no-reply@ironbank.local>\r\n"))
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "Date: Sat, 01 Mar 2025 10:00:00 +0000")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>1</p>"))
	assert.Equal(t, models.EmailStatusSent, tr.Status())
}

func TestSMTPTransport_NoAuthAndErrors(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()

	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		if a != nil {
			t.Errorf("expected no auth")
		}
		return errors.New("451 try later")
	}

	tr := NewSMTPTransport(SMTPConfig{Host: "localhost", Port: 25, From: "bank@example.com"})
	err := tr.Send(context.Background(), Message{To: "a@example.com"})
	assert.ErrorContains(t, err, "451 try later")

	bad := NewSMTPTransport(SMTPConfig{Host: "localhost", Port: 25, From: "not an address"})
	assert.Error(t, bad.Send(context.Background(), Message{To: "a@example.com"}))
}

func TestSMTPTransport_ContextCancel(t *testing.T) {
	orig := sendMail
	defer func() { sendMail = orig }()

	release := make(chan struct{})
	defer close(release)
	sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewSMTPTransport(SMTPConfig{Host: "localhost", Port: 25, From: "bank@example.com"})
	assert.ErrorIs(t, tr.Send(ctx, Message{To: "a@example.com"}), context.Canceled)
}

func TestConsoleTransport(t *testing.T) {
	tr := NewConsoleTransport(logging.Nop{})
	assert.NoError(t, tr.Send(context.Background(), Message{To: "a@example.com"}))
	assert.Equal(t, models.EmailStatusConsole, tr.Status())
}
