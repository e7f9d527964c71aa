package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// NotificationRepository is the transactional outbox for status-change notifications
type NotificationRepository interface {
	// Enqueue inserts an event; returns false when the (transaction, status) pair was already queued
	Enqueue(ctx context.Context, event *entity.NotificationEvent) (bool, error)

	// ListPending returns unsent events whose claim is free at now and that have fewer than
	// maxAttempts attempts, oldest first. maxAttempts <= 0 means no attempt limit.
	ListPending(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.NotificationEvent, error)

	// ListPendingForTransaction returns unsent, unclaimed events of one transaction
	ListPendingForTransaction(ctx context.Context, transactionID uint64, now time.Time) ([]*entity.NotificationEvent, error)

	// Claim leases an event until the given time; returns false when another worker holds it or it was sent
	Claim(ctx context.Context, id string, now, until time.Time) (bool, error)

	// MarkSent records delivery and clears the lease
	MarkSent(ctx context.Context, id string, at time.Time) error

	// MarkFailed records the error and frees the lease for a later retry
	MarkFailed(ctx context.Context, id string, errorMessage string) error
}
