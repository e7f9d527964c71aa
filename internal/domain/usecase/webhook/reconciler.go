package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/ledger"
)

// Stage names a step of webhook handling
type Stage string

// Webhook handling stages in order
const (
	StageReceived     Stage = "received"
	StageVerified     Stage = "verified"
	StageNormalized   Stage = "normalized"
	StageApplied      Stage = "applied"
	StageNotified     Stage = "notified"
	StageAcknowledged Stage = "acknowledged"
)

// Outcomes reported to metrics besides the ledger transition results
const (
	outcomeIgnored      = "ignored"
	outcomeRejected     = "rejected"
	outcomeMalformed    = "malformed"
	outcomeGatewayError = "gateway_error"
	outcomeError        = "error"
)

// Notifier delivers the queued notifications of one transaction
type Notifier interface {
	DispatchForTransaction(ctx context.Context, transactionID uint64) (int, error)
}

// Reconciler applies gateway notifications to the ledger as one unit per delivery
type Reconciler struct {
	registry     *gateway.Registry
	ledger       *ledger.Ledger
	notifier     Notifier
	timeProvider coreport.TimeProvider
	metrics      coreport.MetricsRecorder
	logger       coreport.Logger
}

// NewReconciler creates a new webhook Reconciler
func NewReconciler(
	registry *gateway.Registry,
	ledger *ledger.Ledger,
	notifier Notifier,
	timeProvider coreport.TimeProvider,
	metrics coreport.MetricsRecorder,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		registry:     registry,
		ledger:       ledger,
		notifier:     notifier,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Reconcile verifies and normalizes a delivery, applies the gateway's current status to the ledger
// and dispatches notifications. Errors are only returned before the ledger is updated; once the
// transition is stored the delivery is acknowledged even if notification fails.
func (r *Reconciler) Reconcile(ctx context.Context, gatewayName string, request entity.WebhookRequest) (*usecase.WebhookResult, error) {
	start := r.timeProvider.Now()
	log := r.logger.With(map[string]any{"gateway": gatewayName})
	log.Debug("Webhook received", map[string]any{"stage": string(StageReceived), "bytes": len(request.Body)})

	adapter, err := r.registry.Resolve(gatewayName)
	if err != nil {
		r.metrics.WebhookProcessed(gatewayName, outcomeRejected, r.timeProvider.Since(start).Std())
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownGateway, gatewayName)
	}

	event, err := adapter.NormalizeWebhook(ctx, request)
	if err != nil {
		r.metrics.WebhookProcessed(gatewayName, failureOutcome(err), r.timeProvider.Since(start).Std())
		log.Warn("Webhook rejected", map[string]any{
			"stage": string(StageVerified),
			"error": err.Error(),
		})
		return nil, err
	}
	log.Debug("Webhook normalized", map[string]any{
		"stage":          string(StageNormalized),
		"gateway_status": event.GatewayStatus,
		"status":         string(event.Status),
	})

	if !event.Actionable {
		r.metrics.WebhookProcessed(gatewayName, outcomeIgnored, r.timeProvider.Since(start).Std())
		log.Info("Informational webhook acknowledged", map[string]any{
			"stage":      string(StageAcknowledged),
			"event_type": event.EventType,
		})
		return &usecase.WebhookResult{Ignored: true, Reference: event.Reference}, nil
	}

	outcome, err := r.ledger.ApplyEvent(ctx, event)
	if err != nil {
		r.metrics.WebhookProcessed(gatewayName, outcomeError, r.timeProvider.Since(start).Std())
		log.Error("Failed to apply webhook", map[string]any{
			"stage":     string(StageApplied),
			"reference": event.Reference,
			"error":     err.Error(),
		})
		return nil, err
	}

	result := &usecase.WebhookResult{Outcome: outcome.Result, Reference: event.Reference}
	if outcome.Transaction != nil {
		result.Reference = outcome.Transaction.Reference
		result.Status = outcome.Transaction.Status

		// Also re-drives events a crashed earlier delivery committed but never sent
		result.Notified = r.notify(ctx, log, outcome.Transaction)
	}

	r.metrics.WebhookProcessed(gatewayName, string(outcome.Result), r.timeProvider.Since(start).Std())
	log.Debug("Webhook acknowledged", map[string]any{
		"stage":     string(StageAcknowledged),
		"reference": result.Reference,
		"result":    string(outcome.Result),
	})
	return result, nil
}

func (r *Reconciler) notify(ctx context.Context, log coreport.Logger, txn *entity.Transaction) int {
	sent, err := r.notifier.DispatchForTransaction(ctx, txn.ID)
	if err != nil {
		log.Error("Notification dispatch failed after ledger update", map[string]any{
			"stage":     string(StageNotified),
			"reference": txn.Reference,
			"error":     err.Error(),
		})
		return 0
	}
	return sent
}

func failureOutcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrSignatureMismatch):
		return outcomeRejected
	case errs.IsGatewayError(err):
		return outcomeGatewayError
	case errs.IsValidationError(err), errors.Is(err, errs.ErrMalformedWebhook):
		return outcomeMalformed
	default:
		return outcomeError
	}
}
