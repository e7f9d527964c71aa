package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	notificationport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/notification"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
)

// Defaults for outbox delivery
const (
	DefaultLease       = 2 * coreport.Minute
	DefaultBatchSize   = 50
	DefaultMaxAttempts = 10
)

// Send outcomes reported to metrics
const (
	outcomeSent    = "sent"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// Notifier delivers queued status-change events as templated emails.
// Each event is leased before sending so concurrent workers never deliver it twice.
type Notifier struct {
	uow          persistence.UnitOfWork
	dispatcher   notificationport.Dispatcher
	settings     *settings.Provider
	timeProvider coreport.TimeProvider
	metrics      coreport.MetricsRecorder
	logger       coreport.Logger

	lease       coreport.Duration
	batchSize   int
	maxAttempts int
}

// Option configures a Notifier
type Option func(*Notifier)

// WithLease sets how long a claimed event is reserved for one worker
func WithLease(lease coreport.Duration) Option {
	return func(n *Notifier) { n.lease = lease }
}

// WithBatchSize sets how many pending events DispatchPending handles per call
func WithBatchSize(size int) Option {
	return func(n *Notifier) { n.batchSize = size }
}

// WithMaxAttempts sets after how many failures an event is left for manual inspection
func WithMaxAttempts(attempts int) Option {
	return func(n *Notifier) { n.maxAttempts = attempts }
}

// NewNotifier creates a new Notifier
func NewNotifier(
	uow persistence.UnitOfWork,
	dispatcher notificationport.Dispatcher,
	settingsProvider *settings.Provider,
	timeProvider coreport.TimeProvider,
	metrics coreport.MetricsRecorder,
	logger coreport.Logger,
	opts ...Option,
) *Notifier {
	n := &Notifier{
		uow:          uow,
		dispatcher:   dispatcher,
		settings:     settingsProvider,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		lease:        DefaultLease,
		batchSize:    DefaultBatchSize,
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// DispatchForTransaction delivers the unsent events of one transaction and returns how many were sent
func (n *Notifier) DispatchForTransaction(ctx context.Context, transactionID uint64) (int, error) {
	events, err := n.uow.GetNotificationRepository(ctx).ListPendingForTransaction(ctx, transactionID, n.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to list notifications for transaction %d: %w", transactionID, err)
	}
	return n.dispatchAll(ctx, events), nil
}

// DispatchPending delivers one batch of unsent events and returns how many were sent
func (n *Notifier) DispatchPending(ctx context.Context) (int, error) {
	events, err := n.uow.GetNotificationRepository(ctx).ListPending(ctx, n.timeProvider.Now(), n.maxAttempts, n.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	return n.dispatchAll(ctx, events), nil
}

func (n *Notifier) dispatchAll(ctx context.Context, events []*entity.NotificationEvent) int {
	if len(events) == 0 {
		return 0
	}

	cfg, err := n.settings.Load(ctx)
	if err != nil {
		n.logger.Error("Failed to load settings for notifications", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	sent := 0
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}
		if n.dispatch(ctx, event, cfg) {
			sent++
		}
	}
	return sent
}

// dispatch claims one event, sends its emails and records the result; it reports whether the event was sent
func (n *Notifier) dispatch(ctx context.Context, event *entity.NotificationEvent, cfg *entity.PaymentSettings) bool {
	fields := map[string]any{
		"event_id":  event.ID,
		"reference": event.Reference,
		"status":    string(event.Status),
		"attempts":  event.Attempts,
	}

	if n.maxAttempts > 0 && event.Attempts >= n.maxAttempts {
		n.logger.Debug("Notification exceeded retry limit, skipping", fields)
		return false
	}

	repo := n.uow.GetNotificationRepository(ctx)
	now := n.timeProvider.Now()
	claimed, err := repo.Claim(ctx, event.ID, now, now.Add(n.lease.Std()))
	if err != nil {
		fields["error"] = err.Error()
		n.logger.Error("Failed to claim notification", fields)
		return false
	}
	if !claimed {
		n.logger.Debug("Notification claimed by another worker", fields)
		return false
	}

	txn, err := n.uow.GetTransactionRepository(ctx).GetByReference(ctx, event.Reference)
	if err == nil {
		err = n.sendEmails(ctx, event, txn, cfg)
	}
	if err != nil {
		fields["error"] = err.Error()
		n.logger.Error("Notification delivery failed", fields)
		if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
			n.logger.Error("Failed to record notification failure", map[string]any{
				"event_id": event.ID,
				"error":    markErr.Error(),
			})
		}
		return false
	}

	if err := repo.MarkSent(ctx, event.ID, n.timeProvider.Now()); err != nil {
		fields["error"] = err.Error()
		n.logger.Error("Failed to mark notification sent", fields)
		return false
	}

	n.logger.Info("Notification delivered", fields)
	return true
}

func (n *Notifier) sendEmails(ctx context.Context, event *entity.NotificationEvent, txn *entity.Transaction, cfg *entity.PaymentSettings) error {
	messages := BuildMessages(event, txn, cfg)
	if len(messages) == 0 {
		n.metrics.NotificationSent(string(event.Status), outcomeSkipped)
		return nil
	}

	var sendErrs []error
	for _, message := range messages {
		if err := n.dispatcher.SendTemplateEmail(ctx, message); err != nil {
			n.metrics.NotificationSent(message.TemplateKey, outcomeFailed)
			sendErrs = append(sendErrs, fmt.Errorf("%s to %s: %w", message.TemplateKey, message.Recipient, err))
			continue
		}
		n.metrics.NotificationSent(message.TemplateKey, outcomeSent)
	}
	return errors.Join(sendErrs...)
}
