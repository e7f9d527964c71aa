package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DefaultMaxWebhookBytes caps the accepted notification body
const DefaultMaxWebhookBytes int64 = 1 << 20

// WebhookHandler receives gateway notifications
type WebhookHandler struct {
	webhooks     usecase.WebhookUseCase
	maxBodyBytes int64
	logger       coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(webhooks usecase.WebhookUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhooks:     webhooks,
		maxBodyBytes: DefaultMaxWebhookBytes,
		logger:       logger,
	}
}

// Receive handles the POST /webhooks/:gateway endpoint. A 2xx tells the gateway to stop retrying.
func (h *WebhookHandler) Receive(c *gin.Context) {
	gateway := c.Param("gateway")

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("%w: %s", errs.ErrMalformedWebhook, err.Error()), map[string]any{
			"gateway": gateway,
		})
		return
	}

	result, err := h.webhooks.Reconcile(c.Request.Context(), gateway, entity.WebhookRequest{
		Headers: c.Request.Header.Clone(),
		Query:   c.Request.URL.Query(),
		Body:    body,
	})
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"gateway": gateway})
		return
	}

	c.JSON(http.StatusOK, dto.NewWebhookResponse(result))
}
