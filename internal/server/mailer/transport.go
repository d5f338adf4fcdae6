package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/logging"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
)

// ConsoleTransport writes messages to the log instead of sending them.
// Intended for local development.
type ConsoleTransport struct {
	logger logging.Logger
}

func NewConsoleTransport(logger logging.Logger) *ConsoleTransport {
	return &ConsoleTransport{logger: logger}
}

func (t *ConsoleTransport) Send(ctx context.Context, msg Message) error {
	t.logger.Info(ctx, "mail (console)", "to", msg.To, "subject", msg.Subject, "html", msg.HTML)
	return nil
}

func (t *ConsoleTransport) Status() string { return models.EmailStatusConsole }

// SMTPConfig holds the outbound relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// sendMail is a seam for tests.
var sendMail = smtp.SendMail

// SMTPTransport relays messages through an SMTP server, using PLAIN auth
// when a username is configured.
type SMTPTransport struct {
	cfg SMTPConfig
	now func() time.Time
}

func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg, now: time.Now}
}

func (t *SMTPTransport) Status() string { return models.EmailStatusSent }

func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))

	var auth smtp.Auth
	if t.cfg.Username != "" {
		auth = smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
	}

	from, err := envelopeAddress(t.cfg.From)
	if err != nil {
		return err
	}

	send := sendMail
	done := make(chan error, 1)
	go func() {
		done <- send(addr, auth, from, []string{msg.To}, t.build(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *SMTPTransport) build(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + t.cfg.From + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("Date: " + t.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}

// envelopeAddress extracts the bare address from "Name <addr>".
func envelopeAddress(from string) (string, error) {
	a, err := mail.ParseAddress(from)
	if err != nil {
		return "", fmt.Errorf("malformed sender %q: %w", from, err)
	}
	return a.Address, nil
}
