package routes_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/metrics"
	timeadapter "github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const failureURL = "https://shop.test/checkout/failed"

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

type server struct {
	router       *gin.Engine
	checkout     *usecasemocks.MockCheckoutUseCase
	webhooks     *usecasemocks.MockWebhookUseCase
	entitlements *usecasemocks.MockEntitlementUseCase
	renewals     *usecasemocks.MockRenewalUseCase
	registry     *prometheus.Registry
}

func newServer(t *testing.T, pinger handler.Pinger) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeadapter.NewManualTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheusRecorder(registry)
	require.NoError(t, err)

	s := &server{
		router:       gin.New(),
		checkout:     usecasemocks.NewMockCheckoutUseCase(t),
		webhooks:     usecasemocks.NewMockWebhookUseCase(t),
		entitlements: usecasemocks.NewMockEntitlementUseCase(t),
		renewals:     usecasemocks.NewMockRenewalUseCase(t),
		registry:     registry,
	}

	routes.SetupMiddlewares(s.router, routes.MiddlewareOptions{
		Logger:         log,
		TimeProvider:   clock,
		Observer:       recorder,
		AllowedOrigins: []string{"https://shop.test"},
	})
	routes.SetupRoutes(s.router, routes.Handlers{
		Checkout:    handler.NewCheckoutHandler(s.checkout, failureURL, log),
		Webhook:     handler.NewWebhookHandler(s.webhooks, log),
		Entitlement: handler.NewEntitlementHandler(s.entitlements, log),
		Renewal:     handler.NewRenewalHandler(s.renewals, log),
		Health:      handler.NewHealthHandler(pinger, clock, log),
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	return s
}

func (s *server) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestJSONCheckout(t *testing.T) {
	t.Run("Returns the gateway redirect", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.MatchedBy(func(req usecase.CheckoutRequest) bool {
			return req.Method == "paypal" && req.Amount == "25.00" && req.DonorEmail == "ada@example.com"
		})).Return(&usecase.CheckoutResult{
			Reference:   "DON-20260301120000-ABCDEF123456",
			RedirectURL: "https://paypal.test/approve?token=ORDER-1",
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout",
			strings.NewReader(`{"method":"paypal","amount":"25.00","donorEmail":"ada@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := s.do(req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var out dto.CheckoutResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		assert.Equal(t, "DON-20260301120000-ABCDEF123456", out.Reference)
		assert.Equal(t, "https://paypal.test/approve?token=ORDER-1", out.RedirectURL)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Order carries the product id", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.MatchedBy(func(req usecase.CheckoutRequest) bool {
			return req.Kind == "order" && req.ProductID != nil && *req.ProductID == 3
		})).Return(&usecase.CheckoutResult{Reference: "ORD-1", RedirectURL: "https://paypal.test/a"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout",
			strings.NewReader(`{"kind":"order","method":"paypal","productId":3}`))
		req.Header.Set("Content-Type", "application/json")
		rr := s.do(req)

		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("Validation failure is a 400 with a reason", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.Anything).
			Return(nil, errs.NewValidationError("amount", "-5", errs.ErrNegativeAmount)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"method":"paypal","amount":"-5"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := s.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		out := decodeError(t, rr)
		assert.Equal(t, "invalid_amount", out.Error)
		assert.Equal(t, errs.CodeInvalidAmount, out.Code)
	})

	t.Run("Malformed body never reaches the use case", func(t *testing.T) {
		s := newServer(t, stubPinger{})

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"method":`))
		req.Header.Set("Content-Type", "application/json")
		rr := s.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid_request", decodeError(t, rr).Error)
	})

	t.Run("Gateway failure is a 502 and keeps the upstream message", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("paypal", "create_checkout", 500, errors.New("boom"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"method":"paypal","amount":"10"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := s.do(req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "gateway_error", decodeError(t, rr).Error)
	})

	t.Run("Unexpected failure hides its details", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: connection reset")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"method":"paypal","amount":"10"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := s.do(req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "pq:")
	})
}

func TestFormCheckout(t *testing.T) {
	form := url.Values{
		"method":      {"paypal"},
		"amount":      {"15"},
		"donor_name":  {"Ada"},
		"donor_email": {"ada@example.com"},
	}

	t.Run("Redirects to the gateway", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.MatchedBy(func(req usecase.CheckoutRequest) bool {
			return req.Method == "paypal" && req.Amount == "15" && req.DonorName == "Ada"
		})).Return(&usecase.CheckoutResult{Reference: "DON-1", RedirectURL: "https://paypal.test/approve"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := s.do(req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "https://paypal.test/approve", rr.Header().Get("Location"))
	})

	t.Run("Failure redirects with a reason code", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.Anything).
			Return(nil, errs.NewValidationError("method", "stripe", errs.ErrUnsupportedMethod)).Once()

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := s.do(req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, failureURL+"?reason=unsupported_method", rr.Header().Get("Location"))
	})

	t.Run("Gateway outage redirects with gateway_error", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().StartCheckout(mock.Anything, mock.Anything).
			Return(nil, errs.NewGatewayError("paypal", "create_checkout", 503, errors.New("down"))).Once()

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := s.do(req)

		assert.Equal(t, failureURL+"?reason=gateway_error", rr.Header().Get("Location"))
	})
}

func TestGetTransaction(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		settled := decimal.RequireFromString("24.5")
		s.checkout.EXPECT().GetTransaction(mock.Anything, "DON-1").Return(&entity.Transaction{
			Reference:   "DON-1",
			Kind:        entity.KindDonation,
			Status:      entity.StatusCompleted,
			Gateway:     entity.GatewayPayPal,
			Amount:      decimal.RequireFromString("25"),
			FinalAmount: &settled,
			Currency:    "USD",
			PayerEmail:  "ada@example.com",
		}, nil).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/transactions/DON-1", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var out dto.TransactionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		assert.Equal(t, "completed", out.Status)
		assert.Equal(t, "25.00", out.Amount)
		assert.Equal(t, "24.50", out.FinalAmount)
		assert.NotContains(t, rr.Body.String(), "ada@example.com")
	})

	t.Run("Missing", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().GetTransaction(mock.Anything, "DON-404").Return(nil, errs.ErrTransactionNotFound).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/transactions/DON-404", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "not_found", decodeError(t, rr).Error)
	})
}

func TestWebhook(t *testing.T) {
	body := `{"id":"WH-1","event_type":"PAYMENT.CAPTURE.COMPLETED"}`

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/paypal?source=test", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Paypal-Transmission-Id", "tx-1")
		return req
	}

	t.Run("Acknowledges a reconciled event", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.webhooks.EXPECT().Reconcile(mock.Anything, "paypal", mock.MatchedBy(func(req entity.WebhookRequest) bool {
			return string(req.Body) == body &&
				req.Headers.Get("Paypal-Transmission-Id") == "tx-1" &&
				req.Query.Get("source") == "test"
		})).Return(&usecase.WebhookResult{
			Outcome:   entity.ResultApplied,
			Reference: "DON-1",
			Status:    entity.StatusCompleted,
			Notified:  2,
		}, nil).Once()

		rr := s.do(newRequest())

		require.Equal(t, http.StatusOK, rr.Code)
		var out dto.WebhookResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		assert.True(t, out.Received)
		assert.Equal(t, "applied", out.Outcome)
		assert.Equal(t, "completed", out.Status)
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Signature mismatch", errs.ErrSignatureMismatch, http.StatusUnauthorized},
		{"Unknown gateway", errs.ErrUnknownGateway, http.StatusNotFound},
		{"Malformed payload", errs.NewValidationError("body", "", errs.ErrMalformedWebhook), http.StatusBadRequest},
		{"Gateway outage asks for a retry", errs.NewGatewayError("paypal", "get_order", 503, errors.New("down")), http.StatusBadGateway},
		{"Ledger failure asks for a retry", errors.New("database is locked"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, stubPinger{})
			s.webhooks.EXPECT().Reconcile(mock.Anything, "paypal", mock.Anything).Return(nil, tt.err).Once()

			rr := s.do(newRequest())

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestCheckUpdates(t *testing.T) {
	t.Run("Lists candidates", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		days := 30
		s.entitlements.EXPECT().CheckUpdates(mock.Anything, uint64(7), uint64(9)).Return(&entity.UpdateStatus{
			UserID:         7,
			ProductID:      9,
			HasLicense:     true,
			CurrentVersion: "1.0.0",
			LatestVersion:  "2.0.0",
			DaysRemaining:  &days,
			Updates: []entity.UpdateCandidate{
				{VersionID: 3, Version: "2.0.0", Eligible: false, Denials: []entity.Denial{entity.MinimumVersionDenial("1.1.0")}},
			},
		}, nil).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/users/7/products/9/updates", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var out entity.UpdateStatus
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		assert.Equal(t, "2.0.0", out.LatestVersion)
		require.Len(t, out.Updates, 1)
		assert.Equal(t, entity.DenialMinimumVersion, out.Updates[0].Denials[0].Kind)
	})

	t.Run("Rejects a non-numeric user id", func(t *testing.T) {
		s := newServer(t, stubPinger{})

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/users/abc/products/9/updates", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDownloadUpdate(t *testing.T) {
	t.Run("Streams the file", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.entitlements.EXPECT().DownloadUpdate(mock.Anything, uint64(7), uint64(3), mock.Anything).
			RunAndReturn(func(_ context.Context, _ uint64, _ uint64, sink usecase.DownloadSink) (*entity.DownloadResult, error) {
				w, err := sink(entity.FileMeta{Name: "app-2.0.0.zip", Size: 7})
				if err != nil {
					return nil, err
				}
				n, err := io.Copy(w, strings.NewReader("payload"))
				if err != nil {
					return nil, err
				}
				return &entity.DownloadResult{Allowed: true, RecordID: "rec-1", Version: "2.0.0", BytesSent: n}, nil
			}).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/users/7/versions/3/download", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "payload", rr.Body.String())
		assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=app-2.0.0.zip", rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "7", rr.Header().Get("Content-Length"))
	})

	denials := []struct {
		denial entity.Denial
		status int
	}{
		{entity.NoLicenseDenial(), http.StatusForbidden},
		{entity.MinimumVersionDenial("1.1.0"), http.StatusForbidden},
		{entity.QuotaExceededDenial(5), http.StatusTooManyRequests},
		{entity.VersionNotFoundDenial(), http.StatusNotFound},
	}
	for _, tt := range denials {
		t.Run("Denied "+string(tt.denial.Kind), func(t *testing.T) {
			s := newServer(t, stubPinger{})
			s.entitlements.EXPECT().DownloadUpdate(mock.Anything, uint64(7), uint64(3), mock.Anything).
				Return(entity.DeniedDownload(tt.denial), nil).Once()

			rr := s.do(httptest.NewRequest(http.MethodGet, "/api/users/7/versions/3/download", nil))

			assert.Equal(t, tt.status, rr.Code)
			var out entity.DownloadResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
			assert.False(t, out.Allowed)
			require.NotNil(t, out.Denial)
			assert.Equal(t, tt.denial.Kind, out.Denial.Kind)
		})
	}

	t.Run("Storage failure after headers are staged", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.entitlements.EXPECT().DownloadUpdate(mock.Anything, uint64(7), uint64(3), mock.Anything).
			RunAndReturn(func(_ context.Context, _ uint64, _ uint64, sink usecase.DownloadSink) (*entity.DownloadResult, error) {
				if _, err := sink(entity.FileMeta{Name: "app-2.0.0.zip", Size: 7}); err != nil {
					return nil, err
				}
				return nil, errs.NewStorageFailureError("app-2.0.0.zip", "rec-1", errors.New("read error"))
			}).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/users/7/versions/3/download", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "unavailable", decodeError(t, rr).Error)
	})
}

func TestRenewalQuote(t *testing.T) {
	t.Run("Prices the requested period", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.renewals.EXPECT().Quote(mock.Anything, uint64(5), 6).Return(&usecase.RenewalQuote{
			LicenseID:       5,
			ProductID:       9,
			Months:          6,
			Amount:          decimal.RequireFromString("40.5"),
			Currency:        "EUR",
			DiscountPercent: decimal.NewFromInt(10),
		}, nil).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/licenses/5/renewal-quote?months=6", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var out dto.RenewalQuoteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
		assert.Equal(t, "40.50", out.Amount)
		assert.Equal(t, "10", out.DiscountPercent)
	})

	t.Run("Defaults to twelve months", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.renewals.EXPECT().Quote(mock.Anything, uint64(5), 12).
			Return(&usecase.RenewalQuote{LicenseID: 5, Months: 12, Amount: decimal.NewFromInt(80)}, nil).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/licenses/5/renewal-quote", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unsupported period", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.renewals.EXPECT().Quote(mock.Anything, uint64(5), 7).
			Return(nil, errs.NewValidationError("months", "7", errs.ErrUnsupportedRenewalPeriod)).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/licenses/5/renewal-quote?months=7", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "unsupported_period", decodeError(t, rr).Error)
	})

	t.Run("Non-numeric period", func(t *testing.T) {
		s := newServer(t, stubPinger{})

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/licenses/5/renewal-quote?months=soon", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		s := newServer(t, stubPinger{})

		rr := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"ok"`)

		scrape := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, scrape.Code)
		assert.Contains(t, scrape.Body.String(),
			`payment_entitlement_http_requests_total{method="GET",route="/health",status="200"} 1`)
	})

	t.Run("Database down", func(t *testing.T) {
		s := newServer(t, stubPinger{err: errors.New("connection refused")})

		rr := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), `"database":"down"`)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("Request id is propagated", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-42")

		rr := s.do(req)

		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})

	t.Run("CORS preflight from an allowed origin", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		req := httptest.NewRequest(http.MethodOptions, "/api/checkout", nil)
		req.Header.Set("Origin", "https://shop.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := s.do(req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://shop.test", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Foreign origin gets no CORS headers", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.test")

		rr := s.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Panics become a 500", func(t *testing.T) {
		s := newServer(t, stubPinger{})
		s.checkout.EXPECT().GetTransaction(mock.Anything, "boom").
			RunAndReturn(func(context.Context, string) (*entity.Transaction, error) {
				panic("unexpected nil")
			}).Once()

		rr := s.do(httptest.NewRequest(http.MethodGet, "/api/transactions/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "internal_error", decodeError(t, rr).Error)
	})
}
