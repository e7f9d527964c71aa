package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pendingCondition selects unsent events whose lease is free; times are stored in UTC so they compare as text on SQLite
const pendingCondition = "sent_at IS NULL AND (claimed_until IS NULL OR claimed_until <= ?)"

// NotificationRepository implements the notification outbox using GORM
type NotificationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewNotificationRepository creates a new NotificationRepository instance
func NewNotificationRepository(db *gorm.DB, logger coreport.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func notificationToEntity(m *model.NotificationEvent) *entity.NotificationEvent {
	return &entity.NotificationEvent{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Reference:     m.Reference,
		Status:        entity.TransactionStatus(m.Status),
		Attempts:      m.Attempts,
		LastError:     m.LastError,
		ClaimedUntil:  m.ClaimedUntil,
		SentAt:        m.SentAt,
		CreatedAt:     m.CreatedAt,
	}
}

// Enqueue inserts an event unless the same (transaction, status) pair is already queued
func (r *NotificationRepository) Enqueue(ctx context.Context, event *entity.NotificationEvent) (bool, error) {
	eventModel := model.NotificationEvent{
		ID:            event.ID,
		TransactionID: event.TransactionID,
		Reference:     event.Reference,
		Status:        string(event.Status),
		CreatedAt:     event.CreatedAt.UTC(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Transaction").
		Create(&eventModel)
	if result.Error != nil {
		r.logger.Error("Failed to enqueue notification", map[string]any{
			"reference": event.Reference,
			"status":    string(event.Status),
			"error":     result.Error.Error(),
		})
		return false, r.errorClassifier.Wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Notification already queued", map[string]any{
			"reference": event.Reference,
			"status":    string(event.Status),
		})
		return false, nil
	}
	return true, nil
}

// ListPending returns unsent events whose claim is free at now, oldest first.
// Events that used up maxAttempts are left out so they never fill a batch.
func (r *NotificationRepository) ListPending(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.NotificationEvent, error) {
	query := r.db.WithContext(ctx).Where(pendingCondition, now.UTC())
	if maxAttempts > 0 {
		query = query.Where("attempts < ?", maxAttempts)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.list(query)
}

// ListPendingForTransaction returns unsent, unclaimed events of one transaction
func (r *NotificationRepository) ListPendingForTransaction(ctx context.Context, transactionID uint64, now time.Time) ([]*entity.NotificationEvent, error) {
	return r.list(r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Where(pendingCondition, now.UTC()))
}

func (r *NotificationRepository) list(query *gorm.DB) ([]*entity.NotificationEvent, error) {
	var models []model.NotificationEvent
	if err := query.Order("created_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		r.logger.Error("Failed to list pending notifications", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.Wrap(err)
	}

	events := make([]*entity.NotificationEvent, 0, len(models))
	for i := range models {
		events = append(events, notificationToEntity(&models[i]))
	}
	return events, nil
}

// Claim leases an event until the given time and counts the attempt
func (r *NotificationRepository) Claim(ctx context.Context, id string, now, until time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.NotificationEvent{}).
		Where("id = ?", id).
		Where(pendingCondition, now.UTC()).
		Updates(map[string]any{
			"claimed_until": until.UTC(),
			"attempts":      gorm.Expr("attempts + 1"),
		})
	if result.Error != nil {
		r.logger.Error("Failed to claim notification", map[string]any{
			"event_id": id,
			"error":    result.Error.Error(),
		})
		return false, r.errorClassifier.Wrap(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// MarkSent records delivery and clears the lease
func (r *NotificationRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.NotificationEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sent_at":       at.UTC(),
			"claimed_until": nil,
			"last_error":    "",
		}).Error
	if err != nil {
		return r.errorClassifier.Wrap(err)
	}
	return nil
}

// MarkFailed records the error and frees the lease for a later retry
func (r *NotificationRepository) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	err := r.db.WithContext(ctx).Model(&model.NotificationEvent{}).
		Where("id = ? AND sent_at IS NULL", id).
		Updates(map[string]any{
			"last_error":    errorMessage,
			"claimed_until": nil,
		}).Error
	if err != nil {
		return r.errorClassifier.Wrap(err)
	}
	return nil
}
