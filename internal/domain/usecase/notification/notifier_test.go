package notification_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/notification"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/core"
	notificationmocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/notification"
	persistencemocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type notifierFixture struct {
	notifier     *notification.Notifier
	outbox       *persistencemocks.MockNotificationRepository
	transactions *persistencemocks.MockTransactionRepository
	dispatcher   *notificationmocks.MockDispatcher
}

func newNotifierFixture(t *testing.T) *notifierFixture {
	t.Helper()
	outbox := persistencemocks.NewMockNotificationRepository(t)
	transactions := persistencemocks.NewMockTransactionRepository(t)
	dispatcher := notificationmocks.NewMockDispatcher(t)

	uow := persistencemocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetNotificationRepository(mock.Anything).Return(outbox).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(transactions).Maybe()

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()

	store := coremocks.NewMockSettingsStore(t)
	store.EXPECT().GetAll(mock.Anything).Return(map[string]string{
		entity.SettingNotifyPayer: "true",
		entity.SettingNotifyAdmin: "false",
	}, nil).Maybe()

	n := notification.NewNotifier(uow, dispatcher, settings.NewProvider(store), clock, coreport.NoopMetrics{}, logger.NewNoopLogger(),
		notification.WithMaxAttempts(3),
		notification.WithBatchSize(20),
		notification.WithLease(coreport.Minute),
	)
	return &notifierFixture{notifier: n, outbox: outbox, transactions: transactions, dispatcher: dispatcher}
}

func completedEvent(id string) *entity.NotificationEvent {
	return &entity.NotificationEvent{ID: id, TransactionID: 7, Reference: "DON-1", Status: entity.StatusCompleted, CreatedAt: now}
}

func paidTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:         7,
		Reference:  "DON-1",
		Kind:       entity.KindDonation,
		Amount:     decimal.RequireFromString("25"),
		Currency:   "USD",
		Status:     entity.StatusCompleted,
		PayerEmail: "ada@example.com",
	}
}

func TestDispatchPending(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists with the attempt limit and marks sent", func(t *testing.T) {
		f := newNotifierFixture(t)
		f.outbox.EXPECT().ListPending(mock.Anything, now, 3, 20).Return([]*entity.NotificationEvent{completedEvent("evt-1")}, nil).Once()
		f.outbox.EXPECT().Claim(mock.Anything, "evt-1", now, now.Add(time.Minute)).Return(true, nil).Once()
		f.transactions.EXPECT().GetByReference(mock.Anything, "DON-1").Return(paidTransaction(), nil).Once()
		f.dispatcher.EXPECT().SendTemplateEmail(mock.Anything, mock.MatchedBy(func(m entity.EmailMessage) bool {
			return m.TemplateKey == entity.TemplatePaymentCompleted && m.Recipient == "ada@example.com"
		})).Return(nil).Once()
		f.outbox.EXPECT().MarkSent(mock.Anything, "evt-1", now).Return(nil).Once()

		sent, err := f.notifier.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("Delivery failure releases the event", func(t *testing.T) {
		f := newNotifierFixture(t)
		f.outbox.EXPECT().ListPending(mock.Anything, now, 3, 20).Return([]*entity.NotificationEvent{completedEvent("evt-2")}, nil).Once()
		f.outbox.EXPECT().Claim(mock.Anything, "evt-2", now, now.Add(time.Minute)).Return(true, nil).Once()
		f.transactions.EXPECT().GetByReference(mock.Anything, "DON-1").Return(paidTransaction(), nil).Once()
		f.dispatcher.EXPECT().SendTemplateEmail(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		f.outbox.EXPECT().MarkFailed(mock.Anything, "evt-2", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "broker down")
		})).Return(nil).Once()

		sent, err := f.notifier.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("Event held by another worker is not sent", func(t *testing.T) {
		f := newNotifierFixture(t)
		f.outbox.EXPECT().ListPending(mock.Anything, now, 3, 20).Return([]*entity.NotificationEvent{completedEvent("evt-3")}, nil).Once()
		f.outbox.EXPECT().Claim(mock.Anything, "evt-3", now, now.Add(time.Minute)).Return(false, nil).Once()

		sent, err := f.notifier.DispatchPending(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("Listing failure is returned", func(t *testing.T) {
		f := newNotifierFixture(t)
		f.outbox.EXPECT().ListPending(mock.Anything, now, 3, 20).Return(nil, errors.New("db down")).Once()

		_, err := f.notifier.DispatchPending(ctx)

		assert.Error(t, err)
	})
}
