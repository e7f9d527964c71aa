package entity

import (
	"fmt"
	"sort"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/shopspring/decimal"
)

// renewalFactors prices each supported period relative to the base annual price.
// Per-month cost falls as the period grows: 0.0833, 0.0750, 0.0667, 0.0583.
var renewalFactors = map[int]decimal.Decimal{
	3:  decimal.RequireFromString("0.25"),
	6:  decimal.RequireFromString("0.45"),
	12: decimal.RequireFromString("0.80"),
	24: decimal.RequireFromString("1.40"),
}

var hundred = decimal.NewFromInt(100)

// RenewalFactor returns the price factor for a renewal period
func RenewalFactor(months int) (decimal.Decimal, error) {
	factor, ok := renewalFactors[months]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %d months", errs.ErrUnsupportedRenewalPeriod, months)
	}
	return factor, nil
}

// SupportedRenewalPeriods lists the renewal periods in ascending order
func SupportedRenewalPeriods() []int {
	periods := make([]int, 0, len(renewalFactors))
	for months := range renewalFactors {
		periods = append(periods, months)
	}
	sort.Ints(periods)
	return periods
}

// ComputeRenewalPrice returns basePrice × factor(months) × (1 − discountPercent/100), rounded to cents
func ComputeRenewalPrice(basePrice decimal.Decimal, months int, discountPercent decimal.Decimal) (decimal.Decimal, error) {
	factor, err := RenewalFactor(months)
	if err != nil {
		return decimal.Zero, err
	}
	if basePrice.IsNegative() {
		return decimal.Zero, errs.ErrNegativeAmount
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidDiscount, discountPercent.String())
	}

	multiplier := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	return RoundAmount(basePrice.Mul(factor).Mul(multiplier)), nil
}
