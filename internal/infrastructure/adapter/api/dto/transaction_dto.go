package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// TransactionResponse represents the public status of a transaction
type TransactionResponse struct {
	Reference     string     `json:"reference"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	Gateway       string     `json:"gateway"`
	Amount        string     `json:"amount"`
	FinalAmount   string     `json:"finalAmount,omitempty"`
	Currency      string     `json:"currency"`
	FailureReason string     `json:"failureReason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// NewTransactionResponse maps a transaction without exposing payer or gateway payloads
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		Reference:     txn.Reference,
		Kind:          string(txn.Kind),
		Status:        string(txn.Status),
		Gateway:       string(txn.Gateway),
		Amount:        entity.FormatAmount(txn.Amount),
		Currency:      txn.Currency,
		FailureReason: txn.FailureReason,
		CreatedAt:     txn.CreatedAt,
		CompletedAt:   txn.CompletedAt,
	}
	if txn.FinalAmount != nil {
		response.FinalAmount = entity.FormatAmount(*txn.FinalAmount)
	}
	return response
}
