package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100.00"},
			{"0.01", "0.01"},
			{"1", "1.00"},
			{"1.5", "1.50"},
			{"10.", "10.00"},
			{" 25 ", "25.00"},
			{"1234567.89", "1234567.89"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, FormatAmount(amount))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
			{"1e3", errs.ErrInvalidAmount, "Exponent"},
			{".50", errs.ErrInvalidAmount, "Missing integer part"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestValidatePaymentAmount(t *testing.T) {
	limit := decimal.NewFromInt(1000)

	assert.NoError(t, ValidatePaymentAmount(decimal.NewFromInt(25), limit))
	assert.NoError(t, ValidatePaymentAmount(limit, limit))
	assert.ErrorIs(t, ValidatePaymentAmount(decimal.Zero, limit), errs.ErrNegativeAmount)
	assert.ErrorIs(t, ValidatePaymentAmount(decimal.RequireFromString("1000.01"), limit), errs.ErrAmountOutOfRange)
	assert.NoError(t, ValidatePaymentAmount(decimal.NewFromInt(1_000_000), decimal.Zero))
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, "64.00", FormatAmount(RoundAmount(decimal.RequireFromString("63.999"))))
	assert.Equal(t, "10.13", FormatAmount(RoundAmount(decimal.RequireFromString("10.125"))))
}
