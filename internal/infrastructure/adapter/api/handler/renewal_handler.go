package handler

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RenewalHandler serves renewal price quotes
type RenewalHandler struct {
	renewals usecase.RenewalUseCase
	logger   coreport.Logger
}

// NewRenewalHandler creates a new renewal handler instance
func NewRenewalHandler(renewals usecase.RenewalUseCase, logger coreport.Logger) *RenewalHandler {
	return &RenewalHandler{
		renewals: renewals,
		logger:   logger,
	}
}

// Quote handles the GET /api/licenses/:licenseId/renewal-quote endpoint
func (h *RenewalHandler) Quote(c *gin.Context) {
	licenseID, err := parseID(c, "licenseId")
	if err != nil {
		respondError(c, h.logger, err, nil)
		return
	}

	raw := c.DefaultQuery("months", "12")
	months, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, h.logger, errs.NewValidationError("months", raw, errs.ErrUnsupportedRenewalPeriod), nil)
		return
	}

	quote, err := h.renewals.Quote(c.Request.Context(), licenseID, months)
	if err != nil {
		respondError(c, h.logger, err, map[string]any{
			"licenseId": licenseID,
			"months":    months,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewRenewalQuoteResponse(quote))
}
