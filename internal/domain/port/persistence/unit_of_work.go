package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn inside a transaction, committing on nil and rolling back otherwise.
	// Serialization failures and other transient errors restart fn.
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetLicenseRepository returns a license repository bound to the current transaction
	GetLicenseRepository(ctx context.Context) LicenseRepository

	// GetNotificationRepository returns an outbox repository bound to the current transaction
	GetNotificationRepository(ctx context.Context) NotificationRepository
}
