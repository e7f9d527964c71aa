package mercadopago

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway"
	"github.com/shopspring/decimal"
)

// Signature headers sent with every MercadoPago notification
const (
	SignatureHeader = "X-Signature"
	RequestIDHeader = "X-Request-Id"
)

// Options holds the endpoints and redirect targets of the adapter
type Options struct {
	BaseURL         string
	NotificationURL string
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	StatementName   string
}

// Adapter implements the gateway port for MercadoPago Checkout Pro
type Adapter struct {
	opts     Options
	settings gateway.SettingsLoader
	client   *gateway.JSONClient
	logger   coreport.Logger
}

// NewAdapter creates a MercadoPago adapter; the access token is read from settings on every call
func NewAdapter(opts Options, settings gateway.SettingsLoader, httpClient *http.Client, logger coreport.Logger) *Adapter {
	return &Adapter{
		opts:     opts,
		settings: settings,
		client:   gateway.NewJSONClient(entity.GatewayMercadoPago, httpClient),
		logger:   logger.With(map[string]any{"gateway": string(entity.GatewayMercadoPago)}),
	}
}

// Name returns the checkout method this adapter serves
func (a *Adapter) Name() entity.Gateway {
	return entity.GatewayMercadoPago
}

func (a *Adapter) baseURL() string {
	return strings.TrimRight(a.opts.BaseURL, "/")
}

func (a *Adapter) credentials(ctx context.Context, operation string) (entity.GatewaySettings, error) {
	cfg, err := a.settings.Load(ctx)
	if err != nil {
		return entity.GatewaySettings{}, err
	}
	if cfg.MercadoPago.ClientSecret == "" {
		return cfg.MercadoPago, errs.NewGatewayError(string(entity.GatewayMercadoPago), operation, 0, errors.New("access token is not configured"))
	}
	return cfg.MercadoPago, nil
}

// CreateCheckout creates a checkout preference whose external_reference is the transaction reference
func (a *Adapter) CreateCheckout(ctx context.Context, txn *entity.Transaction) (*entity.CheckoutSession, error) {
	creds, err := a.credentials(ctx, "create_checkout")
	if err != nil {
		return nil, err
	}

	request := preferenceRequest{
		Items: []item{{
			ID:         txn.Reference,
			Title:      title(txn),
			Quantity:   1,
			CurrencyID: txn.Currency,
			UnitPrice:  json.Number(entity.FormatAmount(txn.Amount)),
		}},
		ExternalReference: txn.Reference,
		Payer:             payer{Name: txn.PayerName, Email: txn.PayerEmail},
		BackURLs: backURLs{
			Success: gateway.WithReference(a.opts.SuccessURL, txn.Reference),
			Failure: gateway.WithReference(a.opts.FailureURL, txn.Reference),
			Pending: gateway.WithReference(a.opts.PendingURL, txn.Reference),
		},
		NotificationURL:     a.opts.NotificationURL,
		StatementDescriptor: a.opts.StatementName,
		Metadata:            map[string]string{"reference": txn.Reference, "kind": string(txn.Kind)},
	}
	if request.BackURLs.Success != "" {
		request.AutoReturn = "approved"
	}

	var created preferenceResponse
	raw, err := a.client.Do(ctx, gateway.Request{
		Operation: "create_checkout",
		Method:    http.MethodPost,
		URL:       a.baseURL() + "/checkout/preferences",
		Headers: map[string]string{
			"Authorization":     "Bearer " + creds.ClientSecret,
			"X-Idempotency-Key": txn.Reference,
		},
		Body: request,
	}, &created)
	if err != nil {
		return nil, err
	}

	redirect := created.InitPoint
	if creds.Sandbox && created.SandboxInitPoint != "" {
		redirect = created.SandboxInitPoint
	}
	if created.ID == "" || redirect == "" {
		return nil, errs.NewGatewayError(string(entity.GatewayMercadoPago), "create_checkout", http.StatusOK,
			errors.New("preference response has no id or init point"))
	}

	a.logger.Info("MercadoPago preference created", map[string]any{
		"reference":     txn.Reference,
		"preference_id": created.ID,
		"sandbox":       creds.Sandbox,
	})
	return &entity.CheckoutSession{
		CheckoutURL:      redirect,
		GatewayReference: created.ID,
		RawResponse:      raw,
	}, nil
}

// NormalizeWebhook verifies the notification and reports the payment's authoritative state
func (a *Adapter) NormalizeWebhook(ctx context.Context, request entity.WebhookRequest) (*entity.PaymentEvent, error) {
	notification, err := parseNotification(request)
	if err != nil {
		return nil, errs.NewValidationError("body", "", fmt.Errorf("%w: %v", errs.ErrMalformedWebhook, err))
	}

	cfg, err := a.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	if secret := cfg.MercadoPago.WebhookSecret; secret != "" {
		if !verifySignature(secret, notification.DataID, request.Headers.Get(RequestIDHeader), request.Headers.Get(SignatureHeader)) {
			return nil, errs.ErrSignatureMismatch
		}
	}

	event := &entity.PaymentEvent{
		Gateway:    entity.GatewayMercadoPago,
		EventType:  notification.Type,
		RawPayload: request.Body,
	}
	if notification.Type != "payment" {
		a.logger.Debug("Ignoring non-payment MercadoPago notification", map[string]any{
			"type":    notification.Type,
			"data_id": notification.DataID,
		})
		return event, nil
	}
	if notification.DataID == "" {
		return nil, errs.NewValidationError("data.id", "", fmt.Errorf("%w: no payment id", errs.ErrMalformedWebhook))
	}

	current, err := a.pullPayment(ctx, notification.DataID)
	if err != nil {
		return nil, err
	}

	a.fillEvent(event, current)
	event.Actionable = true
	return event, nil
}

func (a *Adapter) pullPayment(ctx context.Context, paymentID string) (*payment, error) {
	creds, err := a.credentials(ctx, "get_payment")
	if err != nil {
		return nil, err
	}

	var current payment
	_, err = a.client.Do(ctx, gateway.Request{
		Operation: "get_payment",
		Method:    http.MethodGet,
		URL:       a.baseURL() + "/v1/payments/" + url.PathEscape(paymentID),
		Headers:   map[string]string{"Authorization": "Bearer " + creds.ClientSecret},
	}, &current)
	if err != nil {
		return nil, err
	}
	return &current, nil
}

func (a *Adapter) fillEvent(event *entity.PaymentEvent, current *payment) {
	event.PaymentID = current.ID.String()
	event.GatewayStatus = current.Status
	event.Reference = current.ExternalReference
	if reference, ok := current.Metadata["reference"].(string); ok && event.Reference == "" {
		event.Reference = reference
	}
	event.Currency = current.CurrencyID

	status, known := mapStatus(current.Status)
	if !known {
		a.logger.Warn("Unmapped MercadoPago status treated as pending", map[string]any{
			"payment_id": event.PaymentID,
			"status":     current.Status,
		})
	}
	event.Status = status

	if current.TransactionAmount != "" {
		if value, err := decimal.NewFromString(current.TransactionAmount.String()); err == nil {
			event.SettledAmount = &value
		}
	}
}

func title(txn *entity.Transaction) string {
	switch txn.Kind {
	case entity.KindOrder:
		return "Order " + txn.Reference
	case entity.KindRenewal:
		return fmt.Sprintf("License renewal (%d months)", txn.RenewalMonths)
	default:
		return "Donation"
	}
}
