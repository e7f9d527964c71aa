package gateway_test

import (
	"testing"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/gateway"
	gatewaymocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	paypal := gatewaymocks.NewMockAdapter(t)
	paypal.EXPECT().Name().Return(entity.GatewayPayPal)
	mercadopago := gatewaymocks.NewMockAdapter(t)
	mercadopago.EXPECT().Name().Return(entity.GatewayMercadoPago)

	registry := gateway.NewRegistry(paypal, mercadopago)

	t.Run("Resolves case-insensitively", func(t *testing.T) {
		adapter, err := registry.Resolve("  PayPal ")
		require.NoError(t, err)
		assert.Same(t, paypal, adapter)
	})

	t.Run("Unknown method", func(t *testing.T) {
		_, err := registry.Resolve("stripe")
		assert.ErrorIs(t, err, errs.ErrUnsupportedMethod)
	})

	t.Run("Methods are sorted", func(t *testing.T) {
		assert.Equal(t, []entity.Gateway{entity.GatewayMercadoPago, entity.GatewayPayPal}, registry.Methods())
	})
}
