// Package metrics holds the Prometheus collectors of the server. Collectors
// are registered once on the default registry and exposed by the ops server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironbank_login_attempts_total",
		Help: "Password step of login, by outcome",
	}, []string{"outcome"})

	MFAVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironbank_mfa_verifications_total",
		Help: "One-time code verifications, by outcome",
	}, []string{"outcome"})

	PasswordResets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironbank_password_resets_total",
		Help: "Completed and rejected password resets",
	}, []string{"outcome"})

	Transfers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironbank_transfers_total",
		Help: "Transfer attempts, by outcome",
	}, []string{"outcome"})

	TransferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ironbank_transfer_duration_seconds",
		Help:    "Wall time of a transfer including lock waits and retries",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	RevocationCheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ironbank_revocation_check_duration_seconds",
		Help:    "Latency of session revocation lookups",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ironbank_emails_total",
		Help: "Outbound mail attempts, by delivery status",
	}, []string{"status"})

	ResetTokensPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ironbank_reset_tokens_purged_total",
		Help: "Expired reset tokens deleted by the purge loop",
	})
)

// ObserveTransfer records the duration of a transfer that started at start.
func ObserveTransfer(start time.Time, outcome string) {
	Transfers.WithLabelValues(outcome).Inc()
	TransferDuration.Observe(time.Since(start).Seconds())
}
