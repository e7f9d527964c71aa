package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// CheckoutRequest represents an incoming checkout initiation
type CheckoutRequest struct {
	Kind          string
	Amount        string
	Method        string
	ProductID     *uint64
	LicenseID     *uint64
	RenewalMonths int
	DonorName     string
	DonorEmail    string
	DonorMessage  string
}

// CheckoutResult is returned once the checkout session is stored on the transaction
type CheckoutResult struct {
	Reference   string
	RedirectURL string
}

// CheckoutUseCase defines checkout initiation and transaction lookup
type CheckoutUseCase interface {
	// StartCheckout validates the request, records a pending transaction and opens a gateway session.
	// A gateway failure marks the transaction failed before the error is returned.
	StartCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)

	// GetTransaction returns a transaction by reference for return and status pages
	GetTransaction(ctx context.Context, reference string) (*entity.Transaction, error)
}
