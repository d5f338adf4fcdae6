package models

import "time"

// Email delivery outcomes.
const (
	EmailStatusSent    = "sent"
	EmailStatusConsole = "console"
	EmailStatusError   = "error"
)

// EmailLog records one outbound mail attempt.
type EmailLog struct {
	ID          string
	Recipient   string
	Subject     string
	HTMLPreview string
	Status      string
	Error       string
	CreatedAt   time.Time
}
