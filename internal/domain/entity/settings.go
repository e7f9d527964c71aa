package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Settings store keys
const (
	SettingPayPalEnabled          = "paypal_enabled"
	SettingPayPalClientID         = "paypal_client_id"
	SettingPayPalClientSecret     = "paypal_client_secret"
	SettingPayPalSandbox          = "paypal_sandbox"
	SettingPayPalWebhookSecret    = "paypal_webhook_secret"
	SettingMercadoPagoEnabled     = "mercadopago_enabled"
	SettingMercadoPagoAccessToken = "mercadopago_access_token"
	SettingMercadoPagoSandbox     = "mercadopago_sandbox"
	SettingMercadoPagoSecret      = "mercadopago_webhook_secret"
	SettingCurrency               = "payment_currency"
	SettingMaxAmount              = "payment_max_amount"
	SettingRenewalDiscount        = "renewal_discount_percent"
	SettingNotifyPayer            = "notify_payer"
	SettingNotifyAdmin            = "notify_admin"
	SettingAdminEmail             = "admin_email"
	SettingSiteURL                = "site_url"
)

// GatewaySettings holds one gateway's credentials and switches
type GatewaySettings struct {
	Enabled       bool
	Sandbox       bool
	ClientID      string
	ClientSecret  string // PayPal secret or MercadoPago access token
	WebhookSecret string
}

// PaymentSettings is the explicit configuration object read from the settings store
type PaymentSettings struct {
	PayPal                 GatewaySettings
	MercadoPago            GatewaySettings
	Currency               string
	MaxAmount              decimal.Decimal
	RenewalDiscountPercent decimal.Decimal
	NotifyPayer            bool
	NotifyAdmin            bool
	AdminEmail             string
	SiteURL                string
}

// ParsePaymentSettings builds PaymentSettings from raw key/value pairs, applying defaults for absent keys
func ParsePaymentSettings(values map[string]string) (*PaymentSettings, error) {
	p := settingsParser{values: values}

	settings := &PaymentSettings{
		PayPal: GatewaySettings{
			Enabled:       p.getBool(SettingPayPalEnabled, false),
			Sandbox:       p.getBool(SettingPayPalSandbox, true),
			ClientID:      p.getString(SettingPayPalClientID, ""),
			ClientSecret:  p.getString(SettingPayPalClientSecret, ""),
			WebhookSecret: p.getString(SettingPayPalWebhookSecret, ""),
		},
		MercadoPago: GatewaySettings{
			Enabled:       p.getBool(SettingMercadoPagoEnabled, false),
			Sandbox:       p.getBool(SettingMercadoPagoSandbox, true),
			ClientSecret:  p.getString(SettingMercadoPagoAccessToken, ""),
			WebhookSecret: p.getString(SettingMercadoPagoSecret, ""),
		},
		Currency:               strings.ToUpper(p.getString(SettingCurrency, "USD")),
		MaxAmount:              p.getDecimal(SettingMaxAmount, decimal.NewFromInt(10000)),
		RenewalDiscountPercent: p.getDecimal(SettingRenewalDiscount, decimal.Zero),
		NotifyPayer:            p.getBool(SettingNotifyPayer, true),
		NotifyAdmin:            p.getBool(SettingNotifyAdmin, true),
		AdminEmail:             p.getString(SettingAdminEmail, ""),
		SiteURL:                strings.TrimRight(p.getString(SettingSiteURL, "http://localhost:8080"), "/"),
	}

	if p.err != nil {
		return nil, p.err
	}
	return settings, nil
}

// Gateway returns the settings for one gateway
func (s *PaymentSettings) Gateway(g Gateway) (GatewaySettings, bool) {
	switch g {
	case GatewayPayPal:
		return s.PayPal, true
	case GatewayMercadoPago:
		return s.MercadoPago, true
	}
	return GatewaySettings{}, false
}

// GatewayEnabled reports whether checkout through g is switched on
func (s *PaymentSettings) GatewayEnabled(g Gateway) bool {
	gs, ok := s.Gateway(g)
	return ok && gs.Enabled
}

type settingsParser struct {
	values map[string]string
	err    error
}

func (p *settingsParser) getString(key, fallback string) string {
	if v, ok := p.values[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (p *settingsParser) getBool(key string, fallback bool) bool {
	raw := p.getString(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw)
		return fallback
	}
	return v
}

func (p *settingsParser) getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := p.getString(key, "")
	if raw == "" {
		return fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		p.fail(key, raw)
		return fallback
	}
	return v
}

func (p *settingsParser) fail(key, raw string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: setting %s has invalid value %q", errs.ErrInvalidRequest, key, raw)
	}
}
