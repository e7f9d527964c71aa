package dto

import (
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
)

// RenewalQuoteResponse is the priced renewal offer for a license
type RenewalQuoteResponse struct {
	LicenseID       uint64 `json:"licenseId"`
	ProductID       uint64 `json:"productId"`
	Months          int    `json:"months"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	DiscountPercent string `json:"discountPercent"`
}

// NewRenewalQuoteResponse maps a renewal quote
func NewRenewalQuoteResponse(quote *usecase.RenewalQuote) RenewalQuoteResponse {
	return RenewalQuoteResponse{
		LicenseID:       quote.LicenseID,
		ProductID:       quote.ProductID,
		Months:          quote.Months,
		Amount:          entity.FormatAmount(quote.Amount),
		Currency:        quote.Currency,
		DiscountPercent: quote.DiscountPercent.String(),
	}
}
