package migration

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
)

// defaultSettings are the values a fresh installation starts with
var defaultSettings = map[string]string{
	entity.SettingPayPalEnabled:      "false",
	entity.SettingPayPalSandbox:      "true",
	entity.SettingMercadoPagoEnabled: "false",
	entity.SettingMercadoPagoSandbox: "true",
	entity.SettingCurrency:           "USD",
	entity.SettingMaxAmount:          "10000.00",
	entity.SettingRenewalDiscount:    "0",
	entity.SettingNotifyPayer:        "true",
	entity.SettingNotifyAdmin:        "false",
}

// SeedSettings stores the built-in defaults overlaid with configured ones; stored values always win
func SeedSettings(ctx context.Context, repo persistence.SettingsRepository, configured map[string]string) error {
	values := make(map[string]string, len(defaultSettings)+len(configured))
	for key, value := range defaultSettings {
		values[key] = value
	}
	for key, value := range configured {
		values[key] = value
	}
	return repo.EnsureDefaults(ctx, values)
}
