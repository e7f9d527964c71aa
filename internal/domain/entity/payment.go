package entity

import (
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// PayerInfo carries optional details supplied by the person paying
type PayerInfo struct {
	Name    string
	Email   string
	Message string
}

// PaymentIntent is the transient checkout request that produces a Transaction
type PaymentIntent struct {
	Kind          TransactionKind
	Amount        decimal.Decimal
	Currency      string
	Method        Gateway
	Payer         PayerInfo
	ProductID     *uint64
	LicenseID     *uint64
	RenewalMonths int
}

// CheckoutSession is what a gateway returns when a checkout is created
type CheckoutSession struct {
	CheckoutURL      string
	GatewayReference string
	RawResponse      []byte
}

// WebhookRequest is an inbound gateway notification as received over HTTP
type WebhookRequest struct {
	Headers http.Header
	Query   url.Values
	Body    []byte
}

// PaymentEvent is a gateway notification normalized against the gateway's authoritative state
type PaymentEvent struct {
	Gateway          Gateway
	EventType        string
	Reference        string // Our transaction reference when the gateway echoes it
	GatewayReference string // Gateway order/preference id used as lookup fallback
	PaymentID        string // Gateway payment/capture id
	GatewayStatus    string
	Status           TransactionStatus
	SettledAmount    *decimal.Decimal
	Currency         string
	RawPayload       []byte
	Actionable       bool // False for informational events that are acknowledged without action
}

// LogFields returns a map of fields for structured logging
func (e *PaymentEvent) LogFields() map[string]any {
	fields := map[string]any{
		"gateway":           string(e.Gateway),
		"event_type":        e.EventType,
		"reference":         e.Reference,
		"gateway_reference": e.GatewayReference,
		"payment_id":        e.PaymentID,
		"gateway_status":    e.GatewayStatus,
		"status":            string(e.Status),
	}
	if e.SettledAmount != nil {
		fields["settled_amount"] = FormatAmount(*e.SettledAmount)
	}
	return fields
}
