package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	m := model.Transaction{
		ID:              transaction.ID,
		Reference:       transaction.Reference,
		Kind:            string(transaction.Kind),
		Amount:          transaction.Amount,
		Currency:        transaction.Currency,
		Gateway:         string(transaction.Gateway),
		Status:          string(transaction.Status),
		GatewayResponse: jsonOrNil(transaction.GatewayResponse),
		WebhookReceived: transaction.WebhookReceived,
		WebhookPayload:  jsonOrNil(transaction.WebhookPayload),
		ProductID:       transaction.ProductID,
		LicenseID:       transaction.LicenseID,
		RenewalMonths:   transaction.RenewalMonths,
		PayerName:       transaction.PayerName,
		PayerEmail:      transaction.PayerEmail,
		PayerMessage:    transaction.PayerMessage,
		FailureReason:   transaction.FailureReason,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
		CompletedAt:     transaction.CompletedAt,
	}
	if transaction.GatewayReference != "" {
		ref := transaction.GatewayReference
		m.GatewayReference = &ref
	}
	if transaction.FinalAmount != nil {
		m.FinalAmount = decimal.NewNullDecimal(*transaction.FinalAmount)
	}
	return m
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	transaction := &entity.Transaction{
		ID:              m.ID,
		Reference:       m.Reference,
		Kind:            entity.TransactionKind(m.Kind),
		Amount:          m.Amount,
		Currency:        m.Currency,
		Gateway:         entity.Gateway(m.Gateway),
		Status:          entity.TransactionStatus(m.Status),
		GatewayResponse: []byte(m.GatewayResponse),
		WebhookReceived: m.WebhookReceived,
		WebhookPayload:  []byte(m.WebhookPayload),
		ProductID:       m.ProductID,
		LicenseID:       m.LicenseID,
		RenewalMonths:   m.RenewalMonths,
		PayerName:       m.PayerName,
		PayerEmail:      m.PayerEmail,
		PayerMessage:    m.PayerMessage,
		FailureReason:   m.FailureReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CompletedAt:     m.CompletedAt,
	}
	if m.GatewayReference != nil {
		transaction.GatewayReference = *m.GatewayReference
	}
	if m.FinalAmount.Valid {
		final := m.FinalAmount.Decimal
		transaction.FinalAmount = &final
	}
	return transaction
}

// Create saves a new transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"reference": transaction.Reference,
		"kind":      string(transaction.Kind),
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction reference detected", map[string]any{
				"reference": transaction.Reference,
			})
			return errs.ErrDuplicateTransaction
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"reference": transaction.Reference,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Wrap(result.Error)
	}

	transaction.ID = transactionModel.ID
	return nil
}

// GetByReference retrieves a transaction by its external-facing reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	return r.findOne(ctx, "reference = ?", reference)
}

// GetByGatewayReference retrieves a transaction by the id the gateway assigned at checkout
func (r *TransactionRepository) GetByGatewayReference(ctx context.Context, gateway entity.Gateway, gatewayReference string) (*entity.Transaction, error) {
	return r.findOne(ctx, "gateway = ? AND gateway_reference = ?", string(gateway), gatewayReference)
}

func (r *TransactionRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).Where(query, args...).First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"query": query,
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.Wrap(result.Error)
	}

	return r.modelToEntity(&transactionModel), nil
}

// SetGatewayReference stores the gateway reference once; the same value may be written again
func (r *TransactionRepository) SetGatewayReference(
	ctx context.Context,
	id uint64,
	gatewayReference string,
	rawResponse []byte,
	at time.Time,
) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND (gateway_reference IS NULL OR gateway_reference = ?)", id, gatewayReference).
		Updates(map[string]any{
			"gateway_reference": gatewayReference,
			"gateway_response":  jsonOrNil(rawResponse),
			"updated_at":        at,
		})

	if result.Error != nil {
		r.logger.Error("Failed to set gateway reference", map[string]any{
			"id":    id,
			"error": result.Error.Error(),
		})
		return r.errorClassifier.Wrap(result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return r.errorClassifier.Wrap(err)
		}
		if count == 0 {
			return errs.ErrTransactionNotFound
		}
		r.logger.Warn("Refusing to overwrite gateway reference", map[string]any{
			"id":                id,
			"gateway_reference": gatewayReference,
		})
		return errs.ErrGatewayReferenceImmutable
	}

	return nil
}

// CompareAndSetStatus writes change only while the stored status still equals from
func (r *TransactionRepository) CompareAndSetStatus(
	ctx context.Context,
	id uint64,
	from entity.TransactionStatus,
	change persistence.StatusChange,
) (bool, error) {
	updates := map[string]any{
		"status":     string(change.To),
		"updated_at": change.At,
	}
	if change.FromWebhook || len(change.WebhookPayload) > 0 {
		updates["webhook_received"] = true
	}
	if len(change.WebhookPayload) > 0 {
		updates["webhook_payload"] = jsonOrNil(change.WebhookPayload)
	}
	if change.FinalAmount != nil {
		updates["final_amount"] = decimal.NewNullDecimal(*change.FinalAmount)
	}
	if change.CompletedAt != nil {
		updates["completed_at"] = *change.CompletedAt
	}
	if change.FailureReason != "" {
		updates["failure_reason"] = change.FailureReason
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)

	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"id":    id,
			"from":  string(from),
			"to":    string(change.To),
			"error": result.Error.Error(),
		})
		return false, r.errorClassifier.Wrap(result.Error)
	}

	return result.RowsAffected == 1, nil
}

func jsonOrNil(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}
