package paypal

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway"
	"github.com/shopspring/decimal"
)

// SignatureHeader carries hex(HMAC-SHA256(webhook secret, body))
const SignatureHeader = "X-Webhook-Signature"

// tokenSkew renews the OAuth token slightly before PayPal expires it
const tokenSkew = time.Minute

// Options holds the endpoints and redirect targets of the adapter
type Options struct {
	LiveBaseURL    string
	SandboxBaseURL string
	ReturnURL      string
	CancelURL      string
	BrandName      string
}

type cachedToken struct {
	clientID  string
	baseURL   string
	value     string
	expiresAt time.Time
}

// Adapter implements the gateway port for PayPal Orders v2
type Adapter struct {
	opts         Options
	settings     gateway.SettingsLoader
	client       *gateway.JSONClient
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	tokenMu sync.Mutex
	token   cachedToken
}

// NewAdapter creates a PayPal adapter; credentials are read from settings on every call
func NewAdapter(
	opts Options,
	settings gateway.SettingsLoader,
	httpClient *http.Client,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Adapter {
	return &Adapter{
		opts:         opts,
		settings:     settings,
		client:       gateway.NewJSONClient(entity.GatewayPayPal, httpClient),
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"gateway": string(entity.GatewayPayPal)}),
	}
}

// Name returns the checkout method this adapter serves
func (a *Adapter) Name() entity.Gateway {
	return entity.GatewayPayPal
}

func (a *Adapter) credentials(ctx context.Context, operation string) (entity.GatewaySettings, string, error) {
	cfg, err := a.settings.Load(ctx)
	if err != nil {
		return entity.GatewaySettings{}, "", err
	}
	creds := cfg.PayPal
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return creds, "", errs.NewGatewayError(string(entity.GatewayPayPal), operation, 0, errors.New("client credentials are not configured"))
	}
	baseURL := a.opts.LiveBaseURL
	if creds.Sandbox {
		baseURL = a.opts.SandboxBaseURL
	}
	return creds, strings.TrimRight(baseURL, "/"), nil
}

// accessToken returns a cached client-credentials token, fetching a new one when expired
func (a *Adapter) accessToken(ctx context.Context, creds entity.GatewaySettings, baseURL string) (string, error) {
	a.tokenMu.Lock()
	defer a.tokenMu.Unlock()

	now := a.timeProvider.Now()
	if a.token.value != "" && a.token.clientID == creds.ClientID && a.token.baseURL == baseURL && now.Before(a.token.expiresAt) {
		return a.token.value, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	var resp tokenResponse
	_, err := a.client.Do(ctx, gateway.Request{
		Operation: "oauth_token",
		Method:    http.MethodPost,
		URL:       baseURL + "/v1/oauth2/token",
		Headers:   map[string]string{"Authorization": basicAuth(creds.ClientID, creds.ClientSecret)},
		Form:      []byte(form.Encode()),
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errs.NewGatewayError(string(entity.GatewayPayPal), "oauth_token", http.StatusOK, errors.New("empty access token"))
	}

	lifetime := time.Duration(resp.ExpiresIn)*time.Second - tokenSkew
	if lifetime < 0 {
		lifetime = 0
	}
	a.token = cachedToken{
		clientID:  creds.ClientID,
		baseURL:   baseURL,
		value:     resp.AccessToken,
		expiresAt: now.Add(lifetime),
	}
	return resp.AccessToken, nil
}

// CreateCheckout creates a CAPTURE order carrying the transaction reference
func (a *Adapter) CreateCheckout(ctx context.Context, txn *entity.Transaction) (*entity.CheckoutSession, error) {
	creds, baseURL, err := a.credentials(ctx, "create_checkout")
	if err != nil {
		return nil, err
	}
	token, err := a.accessToken(ctx, creds, baseURL)
	if err != nil {
		return nil, err
	}

	request := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: txn.Reference,
			CustomID:    txn.Reference,
			InvoiceID:   txn.Reference,
			Description: description(txn),
			Amount: money{
				CurrencyCode: txn.Currency,
				Value:        entity.FormatAmount(txn.Amount),
			},
		}},
		ApplicationContext: applicationContext{
			BrandName:          a.opts.BrandName,
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
			ReturnURL:          gateway.WithReference(a.opts.ReturnURL, txn.Reference),
			CancelURL:          gateway.WithReference(a.opts.CancelURL, txn.Reference),
		},
	}

	var created order
	raw, err := a.client.Do(ctx, gateway.Request{
		Operation: "create_checkout",
		Method:    http.MethodPost,
		URL:       baseURL + "/v2/checkout/orders",
		Headers: map[string]string{
			"Authorization":     "Bearer " + token,
			"PayPal-Request-Id": txn.Reference,
			"Prefer":            "return=representation",
		},
		Body: request,
	}, &created)
	if err != nil {
		return nil, err
	}

	session := &entity.CheckoutSession{
		CheckoutURL:      approvalURL(created.Links),
		GatewayReference: created.ID,
		RawResponse:      raw,
	}
	if session.GatewayReference == "" || session.CheckoutURL == "" {
		return nil, errs.NewGatewayError(string(entity.GatewayPayPal), "create_checkout", http.StatusOK,
			errors.New("order response has no id or approval link"))
	}

	a.logger.Info("PayPal order created", map[string]any{
		"reference": txn.Reference,
		"order_id":  created.ID,
		"status":    created.Status,
	})
	return session, nil
}

// NormalizeWebhook verifies the notification and reports the order's authoritative state
func (a *Adapter) NormalizeWebhook(ctx context.Context, request entity.WebhookRequest) (*entity.PaymentEvent, error) {
	cfg, err := a.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	if secret := cfg.PayPal.WebhookSecret; secret != "" {
		if !gateway.VerifyHMAC(secret, request.Body, request.Headers.Get(SignatureHeader)) {
			return nil, errs.ErrSignatureMismatch
		}
	}

	notification, err := parseWebhook(request.Body)
	if err != nil {
		return nil, errs.NewValidationError("body", "", fmt.Errorf("%w: %v", errs.ErrMalformedWebhook, err))
	}
	if notification.EventType == "" {
		return nil, errs.NewValidationError("event_type", "", errs.ErrMalformedWebhook)
	}

	event := &entity.PaymentEvent{
		Gateway:    entity.GatewayPayPal,
		EventType:  notification.EventType,
		RawPayload: request.Body,
	}
	if !paymentEvents[notification.EventType] {
		a.logger.Debug("Ignoring non-payment PayPal event", map[string]any{
			"event_type": notification.EventType,
			"event_id":   notification.ID,
		})
		return event, nil
	}

	orderID := orderIDFrom(notification)
	if orderID == "" {
		return nil, errs.NewValidationError("resource.id", "", fmt.Errorf("%w: no order id", errs.ErrMalformedWebhook))
	}

	current, err := a.pullOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	a.fillEvent(event, current)
	event.Actionable = true
	return event, nil
}

// pullOrder fetches the order and captures it when the payer has approved it
func (a *Adapter) pullOrder(ctx context.Context, orderID string) (*order, error) {
	creds, baseURL, err := a.credentials(ctx, "get_order")
	if err != nil {
		return nil, err
	}
	token, err := a.accessToken(ctx, creds, baseURL)
	if err != nil {
		return nil, err
	}

	var current order
	_, err = a.client.Do(ctx, gateway.Request{
		Operation: "get_order",
		Method:    http.MethodGet,
		URL:       baseURL + "/v2/checkout/orders/" + url.PathEscape(orderID),
		Headers:   map[string]string{"Authorization": "Bearer " + token},
	}, &current)
	if err != nil {
		return nil, err
	}

	if current.Status != "APPROVED" {
		return &current, nil
	}

	var captured order
	_, err = a.client.Do(ctx, gateway.Request{
		Operation: "capture_order",
		Method:    http.MethodPost,
		URL:       baseURL + "/v2/checkout/orders/" + url.PathEscape(orderID) + "/capture",
		Headers: map[string]string{
			"Authorization":     "Bearer " + token,
			"PayPal-Request-Id": "capture-" + orderID,
			"Prefer":            "return=representation",
		},
		Body: struct{}{},
	}, &captured)
	if err != nil {
		return nil, err
	}

	a.logger.Info("PayPal order captured", map[string]any{
		"order_id": orderID,
		"status":   captured.Status,
	})
	if captured.ID == "" {
		captured.ID = orderID
	}
	return &captured, nil
}

// fillEvent copies the order state into the event; a capture's status wins over the order's
func (a *Adapter) fillEvent(event *entity.PaymentEvent, current *order) {
	event.GatewayReference = current.ID
	event.GatewayStatus = current.Status

	var amount *money
	if len(current.PurchaseUnits) > 0 {
		unit := current.PurchaseUnits[0]
		event.Reference = firstNonEmpty(unit.CustomID, unit.InvoiceID, unit.ReferenceID)
		amount = &unit.Amount
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			latest := unit.Payments.Captures[len(unit.Payments.Captures)-1]
			event.PaymentID = latest.ID
			if latest.Status != "" {
				event.GatewayStatus = latest.Status
			}
			if latest.Amount.Value != "" {
				amount = &latest.Amount
			}
		}
	}

	status, known := mapStatus(event.GatewayStatus)
	if !known {
		a.logger.Warn("Unmapped PayPal status treated as pending", map[string]any{
			"order_id": current.ID,
			"status":   event.GatewayStatus,
		})
	}
	event.Status = status

	if amount != nil && amount.Value != "" {
		if value, err := decimal.NewFromString(amount.Value); err == nil {
			event.SettledAmount = &value
			event.Currency = amount.CurrencyCode
		}
	}
}

func orderIDFrom(notification *webhookEvent) string {
	if strings.HasPrefix(notification.EventType, "CHECKOUT.ORDER.") {
		return notification.Resource.ID
	}
	return notification.Resource.SupplementaryData.RelatedIDs.OrderID
}

func approvalURL(links []link) string {
	for _, l := range links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			return l.Href
		}
	}
	return ""
}

func description(txn *entity.Transaction) string {
	switch txn.Kind {
	case entity.KindOrder:
		return "Order " + txn.Reference
	case entity.KindRenewal:
		return fmt.Sprintf("License renewal (%d months)", txn.RenewalMonths)
	default:
		return "Donation"
	}
}

func basicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
