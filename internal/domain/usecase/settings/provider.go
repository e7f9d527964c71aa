package settings

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
)

// Provider reads the settings store and parses it into PaymentSettings.
// Callers load once per request and pass the result down explicitly.
type Provider struct {
	store coreport.SettingsStore
}

// NewProvider creates a new settings Provider
func NewProvider(store coreport.SettingsStore) *Provider {
	return &Provider{store: store}
}

// Load returns the current payment settings
func (p *Provider) Load(ctx context.Context) (*entity.PaymentSettings, error) {
	values, err := p.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return entity.ParsePaymentSettings(values)
}
