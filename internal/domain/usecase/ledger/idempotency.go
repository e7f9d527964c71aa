package ledger

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
)

// maxTransitionAttempts bounds how often a lost compare-and-set is re-evaluated.
// The DAG is at most two edges deep, so three attempts cover every legal race.
const maxTransitionAttempts = 3

// transition compare-and-sets the status. When another writer wins the race the
// stored status is reloaded and the decision is made again against it, so a
// concurrent duplicate ends as already_settled and a conflicting event as invalid_transition.
func (l *Ledger) transition(
	ctx context.Context,
	repo persistence.TransactionRepository,
	txn *entity.Transaction,
	event *entity.PaymentEvent,
) (*ApplyOutcome, error) {
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		previous := txn.Status

		decision := entity.DecideTransition(previous, event.Status)
		if decision != entity.ResultApplied {
			return &ApplyOutcome{Result: decision, Transaction: txn, Previous: previous}, nil
		}

		change := l.statusChange(txn, event)
		swapped, err := repo.CompareAndSetStatus(ctx, txn.ID, previous, change)
		if err != nil {
			return nil, fmt.Errorf("failed to update status of %s: %w", txn.Reference, err)
		}
		if swapped {
			applyChange(txn, change)
			return &ApplyOutcome{Result: entity.ResultApplied, Transaction: txn, Previous: previous}, nil
		}

		l.logger.Debug("Status changed concurrently, re-evaluating", map[string]any{
			"reference": txn.Reference,
			"expected":  string(previous),
			"target":    string(event.Status),
			"attempt":   attempt + 1,
		})

		reference := txn.Reference
		txn, err = repo.GetByReference(ctx, reference)
		if err != nil {
			return nil, fmt.Errorf("failed to reload %s: %w", reference, err)
		}
	}

	return &ApplyOutcome{Result: entity.ResultInvalidTransition, Transaction: txn, Previous: txn.Status}, nil
}

// statusChange builds the columns written with the status. Settlement fields are only set on completion.
func (l *Ledger) statusChange(txn *entity.Transaction, event *entity.PaymentEvent) persistence.StatusChange {
	now := l.timeProvider.Now()
	change := persistence.StatusChange{
		To:             event.Status,
		FromWebhook:    true,
		WebhookPayload: event.RawPayload,
		At:             now,
	}

	switch event.Status {
	case entity.StatusCompleted:
		final := txn.Amount
		if event.SettledAmount != nil {
			final = entity.RoundAmount(*event.SettledAmount)
		}
		change.FinalAmount = &final
		change.CompletedAt = &now
	case entity.StatusFailed:
		change.FailureReason = fmt.Sprintf("gateway reported %s", event.GatewayStatus)
	}

	return change
}

func applyChange(txn *entity.Transaction, change persistence.StatusChange) {
	txn.Status = change.To
	txn.UpdatedAt = change.At
	if change.FromWebhook {
		txn.WebhookReceived = true
	}
	if len(change.WebhookPayload) > 0 {
		txn.WebhookPayload = change.WebhookPayload
	}
	if change.FinalAmount != nil {
		txn.FinalAmount = change.FinalAmount
	}
	if change.CompletedAt != nil {
		txn.CompletedAt = change.CompletedAt
	}
	if change.FailureReason != "" {
		txn.FailureReason = change.FailureReason
	}
}
