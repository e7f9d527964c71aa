package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// WebhookResult describes how an acknowledged webhook was handled
type WebhookResult struct {
	Outcome   entity.TransitionResult
	Ignored   bool
	Reference string
	Status    entity.TransactionStatus
	Notified  int
}

// WebhookUseCase reconciles gateway notifications with the ledger
type WebhookUseCase interface {
	// Reconcile returns an error only when the gateway should retry the delivery
	Reconcile(ctx context.Context, gateway string, request entity.WebhookRequest) (*WebhookResult, error)
}
