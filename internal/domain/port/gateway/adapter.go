package gateway

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// Adapter translates between the ledger and one payment gateway's HTTP API.
// Every transport failure is returned as a GatewayError.
type Adapter interface {
	// Name returns the checkout method this adapter serves
	Name() entity.Gateway

	// CreateCheckout opens a checkout session for a pending transaction
	CreateCheckout(ctx context.Context, transaction *entity.Transaction) (*entity.CheckoutSession, error)

	// NormalizeWebhook verifies a notification, pulls the payment's current state
	// from the gateway and returns it as a PaymentEvent
	NormalizeWebhook(ctx context.Context, request entity.WebhookRequest) (*entity.PaymentEvent, error)
}
