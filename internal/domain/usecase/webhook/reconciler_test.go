package webhook_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/notification"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/webhook"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/gateway"
	notificationmocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/notification"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	ctx        context.Context
	ledger     *ledger.Ledger
	adapter    *gatewaymocks.MockAdapter
	dispatcher *notificationmocks.MockDispatcher
	relay      *notification.Relay
	reconciler *webhook.Reconciler
}

func newHarness(t *testing.T, metrics coreport.MetricsRecorder) *harness {
	t.Helper()
	clock := timeadapter.NewManualTimeProvider(epoch)
	manager := dbtest.Open(t, clock)
	uow := manager.CreateUnitOfWork()
	log := logger.NewNoopLogger()

	store := coremocks.NewMockSettingsStore(t)
	store.EXPECT().GetAll(mock.Anything).Return(map[string]string{
		entity.SettingNotifyPayer: "true",
		entity.SettingNotifyAdmin: "false",
	}, nil).Maybe()

	adapter := gatewaymocks.NewMockAdapter(t)
	adapter.EXPECT().Name().Return(entity.GatewayPayPal)
	dispatcher := notificationmocks.NewMockDispatcher(t)

	l := ledger.NewLedger(uow, ledger.NewReferenceGenerator(clock), clock, log)
	notifier := notification.NewNotifier(uow, dispatcher, settings.NewProvider(store), clock, coreport.NoopMetrics{}, log)

	return &harness{
		ctx:        context.Background(),
		ledger:     l,
		adapter:    adapter,
		dispatcher: dispatcher,
		relay:      notification.NewRelay(notifier, clock, log, notification.DefaultRelayInterval),
		reconciler: webhook.NewReconciler(gateway.NewRegistry(adapter), l, notifier, clock, metrics, log),
	}
}

func (h *harness) donation(t *testing.T) *entity.Transaction {
	t.Helper()
	txn, err := h.ledger.Create(h.ctx, entity.PaymentIntent{
		Kind:     entity.KindDonation,
		Amount:   decimal.RequireFromString("25"),
		Currency: "USD",
		Method:   entity.GatewayPayPal,
		Payer:    entity.PayerInfo{Name: "Ada", Email: "ada@example.com"},
	})
	require.NoError(t, err)
	return txn
}

func completedEvent(reference string) *entity.PaymentEvent {
	amount := decimal.RequireFromString("25.00")
	return &entity.PaymentEvent{
		Gateway:       entity.GatewayPayPal,
		EventType:     "PAYMENT.CAPTURE.COMPLETED",
		Reference:     reference,
		PaymentID:     "CAPTURE-1",
		GatewayStatus: "COMPLETED",
		Status:        entity.StatusCompleted,
		SettledAmount: &amount,
		Currency:      "USD",
		Actionable:    true,
	}
}

func TestReconcile(t *testing.T) {
	request := entity.WebhookRequest{Body: []byte(`{"id":"WH-1"}`)}

	t.Run("Completed payment is settled and notified once", func(t *testing.T) {
		h := newHarness(t, coreport.NoopMetrics{})
		txn := h.donation(t)

		h.adapter.EXPECT().NormalizeWebhook(mock.Anything, request).Return(completedEvent(txn.Reference), nil).Twice()
		h.dispatcher.EXPECT().SendTemplateEmail(mock.Anything, mock.MatchedBy(func(m entity.EmailMessage) bool {
			return m.TemplateKey == entity.TemplatePaymentCompleted &&
				m.Recipient == "ada@example.com" &&
				m.Substitutions["amount"] == "25.00"
		})).Return(nil).Once()

		first, err := h.reconciler.Reconcile(h.ctx, "paypal", request)
		require.NoError(t, err)
		assert.Equal(t, entity.ResultApplied, first.Outcome)
		assert.Equal(t, entity.StatusCompleted, first.Status)
		assert.Equal(t, txn.Reference, first.Reference)
		assert.Equal(t, 1, first.Notified)

		second, err := h.reconciler.Reconcile(h.ctx, "PayPal", request)
		require.NoError(t, err)
		assert.Equal(t, entity.ResultAlreadySettled, second.Outcome)
		assert.Zero(t, second.Notified)

		stored, err := h.ledger.Find(h.ctx, txn.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, stored.Status)
	})

	t.Run("Informational event is acknowledged without ledger change", func(t *testing.T) {
		h := newHarness(t, coreport.NoopMetrics{})
		txn := h.donation(t)

		h.adapter.EXPECT().NormalizeWebhook(mock.Anything, request).Return(&entity.PaymentEvent{
			Gateway:   entity.GatewayPayPal,
			EventType: "CUSTOMER.DISPUTE.CREATED",
			Reference: txn.Reference,
		}, nil).Once()

		result, err := h.reconciler.Reconcile(h.ctx, "paypal", request)
		require.NoError(t, err)
		assert.True(t, result.Ignored)

		stored, err := h.ledger.Find(h.ctx, txn.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, stored.Status)
	})

	t.Run("Unknown gateway", func(t *testing.T) {
		h := newHarness(t, coreport.NoopMetrics{})

		_, err := h.reconciler.Reconcile(h.ctx, "stripe", request)
		assert.ErrorIs(t, err, errs.ErrUnknownGateway)
	})

	t.Run("Signature mismatch is rejected before the ledger", func(t *testing.T) {
		metrics := coremocks.NewMockMetricsRecorder(t)
		metrics.EXPECT().WebhookProcessed("paypal", "rejected", mock.Anything).Once()

		h := newHarness(t, metrics)
		txn := h.donation(t)
		h.adapter.EXPECT().NormalizeWebhook(mock.Anything, request).Return(nil, errs.ErrSignatureMismatch).Once()

		_, err := h.reconciler.Reconcile(h.ctx, "paypal", request)
		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)

		stored, err := h.ledger.Find(h.ctx, txn.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, stored.Status)
	})

	t.Run("Gateway outage is returned for retry", func(t *testing.T) {
		metrics := coremocks.NewMockMetricsRecorder(t)
		metrics.EXPECT().WebhookProcessed("paypal", "gateway_error", mock.Anything).Once()

		h := newHarness(t, metrics)
		gatewayErr := errs.NewGatewayError("paypal", "get_order", 503, errors.New("unavailable"))
		h.adapter.EXPECT().NormalizeWebhook(mock.Anything, request).Return(nil, gatewayErr).Once()

		_, err := h.reconciler.Reconcile(h.ctx, "paypal", request)
		assert.ErrorIs(t, err, errs.ErrGateway)
	})

	t.Run("Unknown reference is acknowledged", func(t *testing.T) {
		h := newHarness(t, coreport.NoopMetrics{})
		h.adapter.EXPECT().NormalizeWebhook(mock.Anything, request).
			Return(completedEvent("DON-19990101000000-000000000000"), nil).Once()

		result, err := h.reconciler.Reconcile(h.ctx, "paypal", request)
		require.NoError(t, err)
		assert.Equal(t, entity.ResultNotFound, result.Outcome)
		assert.Zero(t, result.Notified)
	})

	t.Run("Failed dispatch is retried by the relay", func(t *testing.T) {
		h := newHarness(t, coreport.NoopMetrics{})
		txn := h.donation(t)

		h.adapter.EXPECT().NormalizeWebhook(mock.Anything, request).Return(completedEvent(txn.Reference), nil).Once()
		h.dispatcher.EXPECT().SendTemplateEmail(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		result, err := h.reconciler.Reconcile(h.ctx, "paypal", request)
		require.NoError(t, err)
		assert.Equal(t, entity.ResultApplied, result.Outcome)
		assert.Zero(t, result.Notified)

		h.dispatcher.EXPECT().SendTemplateEmail(mock.Anything, mock.Anything).Return(nil).Once()
		assert.Equal(t, 1, h.relay.RunOnce(h.ctx))
		assert.Zero(t, h.relay.RunOnce(h.ctx))
	})
}

func TestRelayLifecycle(t *testing.T) {
	h := newHarness(t, coreport.NoopMetrics{})

	h.relay.Start(h.ctx)
	h.relay.Start(h.ctx)
	h.relay.Shutdown()
	h.relay.Shutdown()
}
