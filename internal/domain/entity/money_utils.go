package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a plain decimal string ("25", "25.5", "25.50") and returns it as a decimal.
// Signs, exponents, separators and currency symbols are rejected before parsing.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if len(parts) == 2 && len(parts[1]) > MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	for _, part := range parts {
		if !isDigits(part) {
			return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
		}
	}
	if parts[0] == "" {
		return decimal.Zero, fmt.Errorf("%w: missing integer part", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(strings.TrimSuffix(amount, "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return value, nil
}

// ValidatePaymentAmount checks that amount lies in (0, upperBound]. A zero upper bound disables the ceiling.
func ValidatePaymentAmount(amount, upperBound decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.ErrNegativeAmount
	}
	if upperBound.IsPositive() && amount.GreaterThan(upperBound) {
		return fmt.Errorf("%w: %s > %s", errs.ErrAmountOutOfRange, FormatAmount(amount), FormatAmount(upperBound))
	}
	return nil
}

// FormatAmount renders an amount with exactly two decimal places ("10" -> "10.00")
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// RoundAmount rounds half away from zero to two decimal places
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MaxDecimalPlaces)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
