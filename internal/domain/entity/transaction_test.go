package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	productID := uint64(7)

	t.Run("Valid donation", func(t *testing.T) {
		intent := PaymentIntent{
			Amount:    decimal.RequireFromString("25"),
			Currency:  "usd",
			Method:    GatewayPayPal,
			Payer:     PayerInfo{Name: "Ada", Email: "ada@example.com", Message: "keep going"},
			ProductID: &productID,
		}

		tx, err := NewTransaction("DON-20260101120000-abc", intent, fixedTime)

		require.NoError(t, err)
		assert.Equal(t, "DON-20260101120000-abc", tx.Reference)
		assert.Equal(t, KindDonation, tx.Kind)
		assert.Equal(t, "25.00", FormatAmount(tx.Amount))
		assert.Equal(t, "USD", tx.Currency)
		assert.Equal(t, GatewayPayPal, tx.Gateway)
		assert.Equal(t, StatusPending, tx.Status)
		assert.Equal(t, &productID, tx.ProductID)
		assert.Equal(t, "ada@example.com", tx.PayerEmail)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.Nil(t, tx.CompletedAt)
		assert.Nil(t, tx.FinalAmount)
		assert.Empty(t, tx.GatewayReference)
	})

	t.Run("Empty reference", func(t *testing.T) {
		_, err := NewTransaction("", PaymentIntent{Amount: decimal.NewFromInt(1), Method: GatewayPayPal}, fixedTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		_, err := NewTransaction("DON-1", PaymentIntent{Amount: decimal.Zero, Method: GatewayPayPal}, fixedTime)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Missing method", func(t *testing.T) {
		_, err := NewTransaction("DON-1", PaymentIntent{Amount: decimal.NewFromInt(1)}, fixedTime)
		assert.ErrorIs(t, err, errs.ErrUnsupportedMethod)
	})
}

func TestCanTransition(t *testing.T) {
	statuses := []TransactionStatus{StatusPending, StatusCompleted, StatusFailed, StatusRefunded}
	allowed := map[[2]TransactionStatus]bool{
		{StatusPending, StatusCompleted}:  true,
		{StatusPending, StatusFailed}:     true,
		{StatusCompleted, StatusRefunded}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				assert.Equal(t, allowed[[2]TransactionStatus{from, to}], CanTransition(from, to))
			})
		}
	}
}

func TestDecideTransition(t *testing.T) {
	testCases := []struct {
		current, target TransactionStatus
		expected        TransitionResult
	}{
		{StatusPending, StatusCompleted, ResultApplied},
		{StatusPending, StatusFailed, ResultApplied},
		{StatusCompleted, StatusRefunded, ResultApplied},
		{StatusCompleted, StatusCompleted, ResultAlreadySettled},
		{StatusPending, StatusPending, ResultAlreadySettled},
		{StatusCompleted, StatusPending, ResultInvalidTransition},
		{StatusFailed, StatusPending, ResultInvalidTransition},
		{StatusFailed, StatusCompleted, ResultInvalidTransition},
		{StatusRefunded, StatusCompleted, ResultInvalidTransition},
		{StatusPending, StatusRefunded, ResultInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(string(tc.current)+"->"+string(tc.target), func(t *testing.T) {
			assert.Equal(t, tc.expected, DecideTransition(tc.current, tc.target))
		})
	}
}

// Every trajectory reachable through DecideTransition is a prefix of
// pending→completed→refunded or pending→failed.
func TestStatusTrajectoriesAreMonotonic(t *testing.T) {
	targets := []TransactionStatus{StatusPending, StatusCompleted, StatusFailed, StatusRefunded}
	valid := map[string]bool{
		"pending":                    true,
		"pending>completed":          true,
		"pending>completed>refunded": true,
		"pending>failed":             true,
	}

	var walk func(current TransactionStatus, path string, depth int)
	walk = func(current TransactionStatus, path string, depth int) {
		assert.True(t, valid[path], "unexpected trajectory %s", path)
		if depth == 0 {
			return
		}
		for _, target := range targets {
			next, nextPath := current, path
			if DecideTransition(current, target) == ResultApplied {
				next, nextPath = target, path+">"+string(target)
			}
			walk(next, nextPath, depth-1)
		}
	}

	walk(StatusPending, "pending", 4)
}

func TestStatusProperties(t *testing.T) {
	assert.True(t, StatusFailed.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRefunded.IsValid())
	assert.False(t, TransactionStatus("approved").IsValid())
}

func TestTransactionHelpers(t *testing.T) {
	licenseID := uint64(3)
	final := decimal.RequireFromString("24.50")
	tx := &Transaction{
		Kind:          KindRenewal,
		Amount:        decimal.NewFromInt(25),
		Status:        StatusPending,
		LicenseID:     &licenseID,
		RenewalMonths: 12,
	}

	assert.False(t, tx.IsSettled())
	assert.True(t, tx.IsRenewal())
	assert.Equal(t, "25.00", FormatAmount(tx.SettledAmount()))

	tx.FinalAmount = &final
	tx.Status = StatusCompleted
	assert.True(t, tx.IsSettled())
	assert.Equal(t, "24.50", FormatAmount(tx.SettledAmount()))

	tx.Kind = KindDonation
	assert.False(t, tx.IsRenewal())
}
