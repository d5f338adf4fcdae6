// Package mailer hands verification codes and reset links to a mail
// transport. Delivery is fire-and-forget: callers never see send failures,
// which are logged and recorded in the email log instead.
package mailer

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/logging"
	"github.com/dmitrijs2005/ironbank/internal/server/metrics"
	"github.com/dmitrijs2005/ironbank/internal/server/models"
	"github.com/dmitrijs2005/ironbank/internal/server/repositories/emaillogs"
)

// Mailer is what the auth flows depend on.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string)
	SendPasswordResetLink(ctx context.Context, to, url string)
}

// Message is a rendered e-mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Transport delivers a rendered message. Status is the email log status
// recorded on success.
type Transport interface {
	Send(ctx context.Context, msg Message) error
	Status() string
}

const sendTimeout = 15 * time.Second

// redacted replaces codes and tokens in the email log preview.
const redacted = "******"

// Dispatcher renders messages and sends them in the background.
type Dispatcher struct {
	transport Transport
	logs      emaillogs.Repository
	logger    logging.Logger
	wg        sync.WaitGroup
}

// NewDispatcher builds a Dispatcher. logs may be nil to skip recording.
func NewDispatcher(transport Transport, logs emaillogs.Repository, logger logging.Logger) *Dispatcher {
	return &Dispatcher{transport: transport, logs: logs, logger: logger}
}

// SendVerificationCode mails a one-time login code. The email log keeps a
// preview with the code masked.
func (d *Dispatcher) SendVerificationCode(ctx context.Context, to, code string) {
	html, err := render(otpTemplate, otpData{Code: code, ValidMinutes: 5})
	if err != nil {
		d.logger.Error(ctx, "render otp mail", "error", err)
		return
	}
	preview, err := render(otpTemplate, otpData{Code: redacted, ValidMinutes: 5})
	if err != nil {
		d.logger.Error(ctx, "render otp mail", "error", err)
		return
	}
	d.dispatch(ctx, Message{To: to, Subject: "Your Iron Bank verification code", HTML: html}, preview)
}

// SendPasswordResetLink mails a password reset link. The email log keeps a
// preview with the token masked.
func (d *Dispatcher) SendPasswordResetLink(ctx context.Context, to, link string) {
	html, err := render(resetTemplate, resetData{URL: link, ValidMinutes: 15})
	if err != nil {
		d.logger.Error(ctx, "render reset mail", "error", err)
		return
	}
	preview, err := render(resetTemplate, resetData{URL: redactToken(link), ValidMinutes: 15})
	if err != nil {
		d.logger.Error(ctx, "render reset mail", "error", err)
		return
	}
	d.dispatch(ctx, Message{To: to, Subject: "Reset your Iron Bank password", HTML: html}, preview)
}

// redactToken masks the token query parameter. A link that does not parse
// is dropped entirely.
func redactToken(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return redacted
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", redacted)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Wait blocks until every in-flight send has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(ctx context.Context, msg Message, preview string) {
	// detached from the request, which is usually done before the send
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()

		entry := &models.EmailLog{Recipient: msg.To, Subject: msg.Subject, HTMLPreview: preview, Status: d.transport.Status()}
		if err := d.transport.Send(sendCtx, msg); err != nil {
			d.logger.Error(ctx, "mail send failed", "to", msg.To, "subject", msg.Subject, "error", err)
			entry.Status = models.EmailStatusError
			entry.Error = err.Error()
		}
		metrics.EmailsSent.WithLabelValues(entry.Status).Inc()

		if d.logs == nil {
			return
		}
		if err := d.logs.Create(ctx, entry); err != nil {
			d.logger.Warn(ctx, "email log write failed", "to", msg.To, "error", err)
		}
	}()
}
