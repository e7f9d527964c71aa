package dto

import "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"

// WebhookResponse acknowledges a gateway notification
type WebhookResponse struct {
	Received  bool   `json:"received"`
	Ignored   bool   `json:"ignored,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Reference string `json:"reference,omitempty"`
	Status    string `json:"status,omitempty"`
}

// NewWebhookResponse maps a reconciliation result
func NewWebhookResponse(result *usecase.WebhookResult) WebhookResponse {
	return WebhookResponse{
		Received:  true,
		Ignored:   result.Ignored,
		Outcome:   string(result.Outcome),
		Reference: result.Reference,
		Status:    string(result.Status),
	}
}
