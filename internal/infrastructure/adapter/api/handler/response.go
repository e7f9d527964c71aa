package handler

import (
	"fmt"
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes the mapped error response. Server-side failures are logged as errors.
func respondError(c *gin.Context, logger coreport.Logger, err error, fields map[string]any) {
	status := dto.StatusForError(err)

	logFields := map[string]any{
		"path":       c.FullPath(),
		"status":     status,
		"error":      err.Error(),
		"error_code": errs.ErrorCode(err),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", logFields)
	} else {
		logger.Warn("Request rejected", logFields)
	}

	c.JSON(status, dto.NewErrorResponse(err))
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewValidationError(name, raw, fmt.Errorf("%w: %s must be a positive integer", errs.ErrInvalidRequest, name))
	}
	return id, nil
}
