package paypal

import "github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"

// statusMap covers order and capture statuses
var statusMap = map[string]entity.TransactionStatus{
	"COMPLETED":             entity.StatusCompleted,
	"CREATED":               entity.StatusPending,
	"SAVED":                 entity.StatusPending,
	"APPROVED":              entity.StatusPending,
	"PAYER_ACTION_REQUIRED": entity.StatusPending,
	"PENDING":               entity.StatusPending,
	"VOIDED":                entity.StatusFailed,
	"DECLINED":              entity.StatusFailed,
	"DENIED":                entity.StatusFailed,
	"FAILED":                entity.StatusFailed,
	"REFUNDED":              entity.StatusRefunded,
	"PARTIALLY_REFUNDED":    entity.StatusRefunded,
	"REVERSED":              entity.StatusRefunded,
}

// paymentEvents are the webhook types that can move a transaction
var paymentEvents = map[string]bool{
	"CHECKOUT.ORDER.APPROVED":   true,
	"CHECKOUT.ORDER.COMPLETED":  true,
	"CHECKOUT.ORDER.VOIDED":     true,
	"PAYMENT.CAPTURE.COMPLETED": true,
	"PAYMENT.CAPTURE.PENDING":   true,
	"PAYMENT.CAPTURE.DENIED":    true,
	"PAYMENT.CAPTURE.DECLINED":  true,
	"PAYMENT.CAPTURE.REFUNDED":  true,
	"PAYMENT.CAPTURE.REVERSED":  true,
}

// mapStatus returns the ledger status for a PayPal status and whether it was known
func mapStatus(status string) (entity.TransactionStatus, bool) {
	mapped, ok := statusMap[status]
	if !ok {
		return entity.StatusPending, false
	}
	return mapped, true
}
