package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSettings struct {
	settings entity.PaymentSettings
}

func (s staticSettings) Load(context.Context) (*entity.PaymentSettings, error) {
	copied := s.settings
	return &copied, nil
}

type fakeMercadoPago struct {
	server        *httptest.Server
	paymentStatus string
	paymentCalls  int
	preference    map[string]any
	idempotency   string
}

func newFakeMercadoPago(t *testing.T) *fakeMercadoPago {
	f := &fakeMercadoPago{paymentStatus: "approved"}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /checkout/preferences", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		f.idempotency = r.Header.Get("X-Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.preference))
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":                 "PREF-1",
			"init_point":         "https://mp.test/checkout?pref_id=PREF-1",
			"sandbox_init_point": "https://sandbox.mp.test/checkout?pref_id=PREF-1",
		})
	})

	mux.HandleFunc("GET /v1/payments/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.paymentCalls++
		if r.PathValue("id") != "123456" {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Payment not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":                 123456,
			"status":             f.paymentStatus,
			"external_reference": "ORD-20260301-ABCDEF123456",
			"transaction_amount": 60.5,
			"currency_id":        "BRL",
			"metadata":           map[string]any{"reference": "ORD-20260301-ABCDEF123456", "attempt": 2},
		})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func newTestAdapter(f *fakeMercadoPago, sandbox bool, webhookSecret string) *Adapter {
	settings := staticSettings{settings: entity.PaymentSettings{
		MercadoPago: entity.GatewaySettings{
			Enabled:       true,
			Sandbox:       sandbox,
			ClientSecret:  "access-token",
			WebhookSecret: webhookSecret,
		},
	}}
	return NewAdapter(Options{
		BaseURL:         f.server.URL,
		NotificationURL: "https://shop.test/webhooks/mercadopago",
		SuccessURL:      "https://shop.test/return",
		FailureURL:      "https://shop.test/failed",
	}, settings, f.server.Client(), logger.NewNoopLogger())
}

func testTransaction() *entity.Transaction {
	productID := uint64(7)
	return &entity.Transaction{
		ID:        2,
		Reference: "ORD-20260301-ABCDEF123456",
		Kind:      entity.KindOrder,
		Amount:    decimal.RequireFromString("60.5"),
		Currency:  "BRL",
		Gateway:   entity.GatewayMercadoPago,
		Status:    entity.StatusPending,
		ProductID: &productID,
	}
}

func paymentNotification(body string) entity.WebhookRequest {
	return entity.WebhookRequest{Headers: http.Header{}, Query: url.Values{}, Body: []byte(body)}
}

func TestCreateCheckout(t *testing.T) {
	t.Run("Live uses init_point", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")

		session, err := adapter.CreateCheckout(context.Background(), testTransaction())

		require.NoError(t, err)
		assert.Equal(t, "PREF-1", session.GatewayReference)
		assert.Equal(t, "https://mp.test/checkout?pref_id=PREF-1", session.CheckoutURL)
		assert.Equal(t, "ORD-20260301-ABCDEF123456", f.idempotency)
		assert.Equal(t, "ORD-20260301-ABCDEF123456", f.preference["external_reference"])
		assert.Equal(t, "approved", f.preference["auto_return"])

		items, ok := f.preference["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)
		assert.Equal(t, 60.5, items[0].(map[string]any)["unit_price"])
	})

	t.Run("Sandbox uses sandbox_init_point", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, true, "")

		session, err := adapter.CreateCheckout(context.Background(), testTransaction())

		require.NoError(t, err)
		assert.Equal(t, "https://sandbox.mp.test/checkout?pref_id=PREF-1", session.CheckoutURL)
	})

	t.Run("Missing access token", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := NewAdapter(Options{BaseURL: f.server.URL}, staticSettings{}, f.server.Client(), logger.NewNoopLogger())

		_, err := adapter.CreateCheckout(context.Background(), testTransaction())

		assert.ErrorIs(t, err, errs.ErrGateway)
	})
}

func TestNormalizeWebhook(t *testing.T) {
	const body = `{"action":"payment.updated","type":"payment","data":{"id":"123456"}}`

	t.Run("Approved payment", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")

		event, err := adapter.NormalizeWebhook(context.Background(), paymentNotification(body))

		require.NoError(t, err)
		assert.True(t, event.Actionable)
		assert.Equal(t, entity.StatusCompleted, event.Status)
		assert.Equal(t, "ORD-20260301-ABCDEF123456", event.Reference)
		assert.Equal(t, "123456", event.PaymentID)
		assert.Equal(t, "BRL", event.Currency)
		require.NotNil(t, event.SettledAmount)
		assert.Equal(t, "60.50", entity.FormatAmount(*event.SettledAmount))
	})

	t.Run("Numeric id in legacy query form", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")
		request := entity.WebhookRequest{
			Headers: http.Header{},
			Query:   url.Values{"topic": {"payment"}, "id": {"123456"}},
		}

		event, err := adapter.NormalizeWebhook(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, "123456", event.PaymentID)
	})

	t.Run("Numeric id in body", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")

		event, err := adapter.NormalizeWebhook(context.Background(),
			paymentNotification(`{"type":"payment","data":{"id":123456}}`))

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, event.Status)
	})

	t.Run("Refund and chargeback map to refunded", func(t *testing.T) {
		for _, status := range []string{"refunded", "charged_back"} {
			f := newFakeMercadoPago(t)
			f.paymentStatus = status
			adapter := newTestAdapter(f, false, "")

			event, err := adapter.NormalizeWebhook(context.Background(), paymentNotification(body))

			require.NoError(t, err)
			assert.Equal(t, entity.StatusRefunded, event.Status, status)
		}
	})

	t.Run("Unknown status stays pending", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		f.paymentStatus = "brand_new_state"
		adapter := newTestAdapter(f, false, "")

		event, err := adapter.NormalizeWebhook(context.Background(), paymentNotification(body))

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, event.Status)
		assert.Equal(t, "brand_new_state", event.GatewayStatus)
	})

	t.Run("Merchant order notification is ignored", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")

		event, err := adapter.NormalizeWebhook(context.Background(),
			paymentNotification(`{"type":"merchant_order","data":{"id":"99"}}`))

		require.NoError(t, err)
		assert.False(t, event.Actionable)
		assert.Zero(t, f.paymentCalls)
	})

	t.Run("Valid signature", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "mp-secret")
		request := paymentNotification(body)
		request.Headers.Set(RequestIDHeader, "req-1")
		signature := gateway.SignHMAC("mp-secret", []byte(Manifest("123456", "req-1", "1700000000")))
		request.Headers.Set(SignatureHeader, "ts=1700000000,v1="+signature)

		event, err := adapter.NormalizeWebhook(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, event.Status)
	})

	t.Run("Signature mismatch", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "mp-secret")
		request := paymentNotification(body)
		request.Headers.Set(RequestIDHeader, "req-1")
		request.Headers.Set(SignatureHeader, "ts=1700000000,v1=deadbeef")

		_, err := adapter.NormalizeWebhook(context.Background(), request)

		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)
		assert.Zero(t, f.paymentCalls)
	})

	t.Run("Payment lookup failure is a gateway error", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")

		_, err := adapter.NormalizeWebhook(context.Background(),
			paymentNotification(`{"type":"payment","data":{"id":"999"}}`))

		var gwErr *errs.GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, http.StatusNotFound, gwErr.StatusCode)
	})

	t.Run("Missing type is malformed", func(t *testing.T) {
		f := newFakeMercadoPago(t)
		adapter := newTestAdapter(f, false, "")

		_, err := adapter.NormalizeWebhook(context.Background(), paymentNotification(`{"data":{"id":"1"}}`))

		assert.ErrorIs(t, err, errs.ErrMalformedWebhook)
	})
}

func TestManifest(t *testing.T) {
	assert.Equal(t, "id:abc123;request-id:req;ts:17;", Manifest("ABC123", "req", "17"))
	assert.Equal(t, "ts:17;", Manifest("", "", "17"))
}
