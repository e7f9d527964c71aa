package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// ApplyOutcome reports what ApplyEvent did to a transaction
type ApplyOutcome struct {
	Result      entity.TransitionResult
	Transaction *entity.Transaction // nil when no transaction matched
	Previous    entity.TransactionStatus
	Enqueued    bool // a notification was queued with the transition
}

// Ledger is the only sanctioned mutation path for transactions
type Ledger struct {
	uow          persistence.UnitOfWork
	references   *ReferenceGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a new Ledger
func NewLedger(
	uow persistence.UnitOfWork,
	references *ReferenceGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Ledger {
	return &Ledger{
		uow:          uow,
		references:   references,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create records a pending transaction for a validated intent
func (l *Ledger) Create(ctx context.Context, intent entity.PaymentIntent) (*entity.Transaction, error) {
	reference, err := l.references.Next(intent.Kind)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(reference, intent, l.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := l.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		if errors.Is(err, errs.ErrDuplicateTransaction) {
			l.logger.Error("Transaction reference collision", map[string]any{
				"reference": reference,
			})
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	l.logger.Info("Transaction created", map[string]any{
		"reference": txn.Reference,
		"kind":      string(txn.Kind),
		"gateway":   string(txn.Gateway),
		"amount":    entity.FormatAmount(txn.Amount),
		"currency":  txn.Currency,
	})

	return txn, nil
}

// AttachCheckout stores the gateway reference and raw response before the payer is redirected
func (l *Ledger) AttachCheckout(ctx context.Context, txn *entity.Transaction, session *entity.CheckoutSession) error {
	now := l.timeProvider.Now()
	repo := l.uow.GetTransactionRepository(ctx)

	if err := repo.SetGatewayReference(ctx, txn.ID, session.GatewayReference, session.RawResponse, now); err != nil {
		return fmt.Errorf("failed to attach checkout to %s: %w", txn.Reference, err)
	}

	txn.GatewayReference = session.GatewayReference
	txn.GatewayResponse = session.RawResponse
	txn.UpdatedAt = now
	return nil
}

// MarkFailed moves a pending transaction to failed, e.g. when its checkout could not be created
func (l *Ledger) MarkFailed(ctx context.Context, txn *entity.Transaction, reason string) error {
	now := l.timeProvider.Now()
	change := persistence.StatusChange{To: entity.StatusFailed, FailureReason: reason, At: now}

	ok, err := l.uow.GetTransactionRepository(ctx).CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, change)
	if err != nil {
		return fmt.Errorf("failed to mark %s failed: %w", txn.Reference, err)
	}
	if !ok {
		l.logger.Warn("Transaction left pending before it could be marked failed", map[string]any{
			"reference": txn.Reference,
		})
		return nil
	}

	txn.Status = entity.StatusFailed
	txn.FailureReason = reason
	txn.UpdatedAt = now
	return nil
}

// Find returns a transaction by reference
func (l *Ledger) Find(ctx context.Context, reference string) (*entity.Transaction, error) {
	return l.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
}

// ApplyEvent moves the matching transaction to the event's status.
// Reapplying a status the transaction already holds is a no-op, and transitions outside
// pending -> {completed, failed} and completed -> refunded are refused without writing.
func (l *Ledger) ApplyEvent(ctx context.Context, event *entity.PaymentEvent) (*ApplyOutcome, error) {
	if !event.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", errs.ErrInvalidTransition, event.Status)
	}

	var outcome *ApplyOutcome
	err := l.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		repo := l.uow.GetTransactionRepository(txCtx)

		txn, err := l.locate(txCtx, repo, event)
		if errors.Is(err, errs.ErrTransactionNotFound) {
			outcome = &ApplyOutcome{Result: entity.ResultNotFound}
			return nil
		}
		if err != nil {
			return err
		}

		outcome, err = l.transition(txCtx, repo, txn, event)
		if err != nil {
			return err
		}
		if outcome.Result != entity.ResultApplied {
			return nil
		}

		if err := l.enqueueNotification(txCtx, outcome); err != nil {
			return err
		}
		if outcome.Transaction.Status == entity.StatusCompleted && outcome.Transaction.IsRenewal() {
			return l.extendLicense(txCtx, outcome.Transaction)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s event: %w", event.Status, err)
	}

	l.logOutcome(event, outcome)
	return outcome, nil
}

// locate finds the transaction by our reference, falling back to the gateway reference
func (l *Ledger) locate(ctx context.Context, repo persistence.TransactionRepository, event *entity.PaymentEvent) (*entity.Transaction, error) {
	if event.Reference != "" {
		txn, err := repo.GetByReference(ctx, event.Reference)
		if err == nil {
			return txn, nil
		}
		if !errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, err
		}
	}

	if event.GatewayReference != "" {
		return repo.GetByGatewayReference(ctx, event.Gateway, event.GatewayReference)
	}

	return nil, errs.ErrTransactionNotFound
}

func (l *Ledger) enqueueNotification(ctx context.Context, outcome *ApplyOutcome) error {
	txn := outcome.Transaction
	event := &entity.NotificationEvent{
		ID:            uuid.NewString(),
		TransactionID: txn.ID,
		Reference:     txn.Reference,
		Status:        txn.Status,
		CreatedAt:     txn.UpdatedAt,
	}

	inserted, err := l.uow.GetNotificationRepository(ctx).Enqueue(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	outcome.Enqueued = inserted
	return nil
}

func (l *Ledger) extendLicense(ctx context.Context, txn *entity.Transaction) error {
	repo := l.uow.GetLicenseRepository(ctx)

	license, err := repo.GetByID(ctx, *txn.LicenseID)
	if err != nil {
		return fmt.Errorf("failed to load license for renewal %s: %w", txn.Reference, err)
	}

	now := l.timeProvider.Now()
	expiresAt := license.ExtendedUpdateExpiry(txn.RenewalMonths, now)
	if expiresAt == nil {
		l.logger.Warn("Renewal paid for a perpetual license, update window left open", map[string]any{
			"license_id": license.ID,
			"reference":  txn.Reference,
		})
		return nil
	}
	if err := repo.ExtendUpdateWindow(ctx, license.ID, *expiresAt, now); err != nil {
		return fmt.Errorf("failed to extend license %d: %w", license.ID, err)
	}

	l.logger.Info("License update window extended", map[string]any{
		"license_id": license.ID,
		"reference":  txn.Reference,
		"months":     txn.RenewalMonths,
		"expires_at": *expiresAt,
	})
	return nil
}

func (l *Ledger) logOutcome(event *entity.PaymentEvent, outcome *ApplyOutcome) {
	fields := event.LogFields()
	fields["result"] = string(outcome.Result)
	if outcome.Transaction != nil {
		fields["reference"] = outcome.Transaction.Reference
		fields["previous_status"] = string(outcome.Previous)
		fields["current_status"] = string(outcome.Transaction.Status)
	}

	switch outcome.Result {
	case entity.ResultApplied:
		l.logger.Info("Payment event applied", fields)
	case entity.ResultAlreadySettled:
		l.logger.Debug("Payment event already applied", fields)
	default:
		l.logger.Warn("Payment event not applied", fields)
	}
}
