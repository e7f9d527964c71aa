package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StatusChange describes the fields written together with a status transition
type StatusChange struct {
	To             entity.TransactionStatus
	FinalAmount    *decimal.Decimal
	CompletedAt    *time.Time
	FromWebhook    bool // sets webhook_received even when the notification carried no body
	WebhookPayload []byte
	FailureReason  string
	At             time.Time
}

// TransactionRepository defines the storage operations of the transaction ledger
type TransactionRepository interface {
	// Create saves a new transaction and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a transaction with the same reference already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByReference retrieves a transaction by its external-facing reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the reference
	// - ErrDatabaseConnection: If database connection fails
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// GetByGatewayReference retrieves a transaction by the id the gateway assigned at checkout
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the gateway reference
	// - ErrDatabaseConnection: If database connection fails
	GetByGatewayReference(ctx context.Context, gateway entity.Gateway, gatewayReference string) (*entity.Transaction, error)

	// SetGatewayReference stores the gateway reference and raw checkout response once.
	// Writing the same reference again succeeds; writing a different one fails.
	//
	// Possible errors:
	// - ErrGatewayReferenceImmutable: If a different reference is already stored
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	SetGatewayReference(ctx context.Context, id uint64, gatewayReference string, rawResponse []byte, at time.Time) error

	// CompareAndSetStatus applies change only if the stored status still equals from.
	// Returns false when another writer moved the status first.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CompareAndSetStatus(ctx context.Context, id uint64, from entity.TransactionStatus, change StatusChange) (bool, error)
}
