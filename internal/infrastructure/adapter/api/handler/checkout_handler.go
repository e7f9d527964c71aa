package handler

import (
	"fmt"
	"net/http"
	"net/url"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout initiation and transaction status requests
type CheckoutHandler struct {
	checkout   usecase.CheckoutUseCase
	failureURL string
	logger     coreport.Logger
}

// NewCheckoutHandler creates a new checkout handler instance
func NewCheckoutHandler(
	checkout usecase.CheckoutUseCase,
	failureURL string,
	logger coreport.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkout:   checkout,
		failureURL: failureURL,
		logger:     logger,
	}
}

// StartCheckout handles the POST /api/checkout endpoint
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()), nil)
		return
	}

	result, err := h.checkout.StartCheckout(c.Request.Context(), req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"kind":   req.Kind,
			"method": req.Method,
		})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Reference:   result.Reference,
		RedirectURL: result.RedirectURL,
	})
}

// SubmitCheckout handles the POST /checkout form endpoint. The browser is always redirected:
// to the gateway on success, otherwise to the failure page with a reason code.
func (h *CheckoutHandler) SubmitCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		h.redirectToFailure(c, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
		return
	}

	result, err := h.checkout.StartCheckout(c.Request.Context(), req.ToUseCase())
	if err != nil {
		h.logger.Warn("Form checkout failed", map[string]any{
			"kind":   req.Kind,
			"method": req.Method,
			"error":  err.Error(),
		})
		h.redirectToFailure(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, result.RedirectURL)
}

// GetTransaction handles the GET /api/transactions/:reference endpoint
func (h *CheckoutHandler) GetTransaction(c *gin.Context) {
	reference := c.Param("reference")

	txn, err := h.checkout.GetTransaction(c.Request.Context(), reference)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{"reference": reference})
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

func (h *CheckoutHandler) redirectToFailure(c *gin.Context, err error) {
	target, parseErr := url.Parse(h.failureURL)
	if h.failureURL == "" || parseErr != nil {
		c.JSON(dto.StatusForError(err), dto.NewErrorResponse(err))
		return
	}

	query := target.Query()
	query.Set("reason", errs.ReasonCode(err))
	target.RawQuery = query.Encode()

	c.Redirect(http.StatusSeeOther, target.String())
}
