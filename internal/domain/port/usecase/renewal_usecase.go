package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// RenewalQuote is the price of extending a license's update window
type RenewalQuote struct {
	LicenseID       uint64
	ProductID       uint64
	Months          int
	Amount          decimal.Decimal
	Currency        string
	DiscountPercent decimal.Decimal
}

// RenewalUseCase prices license renewals
type RenewalUseCase interface {
	Quote(ctx context.Context, licenseID uint64, months int) (*RenewalQuote, error)
}
