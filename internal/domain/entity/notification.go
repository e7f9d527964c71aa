package entity

import "time"

// Email template keys
const (
	TemplatePaymentCompleted     = "payment_completed"
	TemplatePaymentReceivedAdmin = "payment_received_admin"
	TemplatePaymentRefunded      = "payment_refunded"
	TemplatePaymentFailed        = "payment_failed"
)

// NotificationEvent is an outbox row written in the same database transaction as a status change.
// One row exists per (transaction, status), so a transition is announced at most once.
type NotificationEvent struct {
	ID            string
	TransactionID uint64
	Reference     string
	Status        TransactionStatus
	Attempts      int
	LastError     string
	ClaimedUntil  *time.Time
	SentAt        *time.Time
	CreatedAt     time.Time
}

// EmailMessage is a templated email handed to the dispatcher
type EmailMessage struct {
	EventID       string            `json:"eventId"`
	Recipient     string            `json:"recipient"`
	TemplateKey   string            `json:"templateKey"`
	Substitutions map[string]string `json:"substitutions"`
}
