package dto

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds the response body for err. Server-side failures hide their details.
func NewErrorResponse(err error) ErrorResponse {
	status := StatusForError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusGatewayTimeout {
		message = http.StatusText(status)
	}

	return ErrorResponse{
		Code:    errs.ErrorCode(err),
		Error:   errs.ReasonCode(err),
		Message: message,
	}
}

// StatusForError maps a domain error to its HTTP status
func StatusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrSignatureMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnknownGateway):
		return http.StatusNotFound
	case errs.IsValidationError(err),
		errors.Is(err, errs.ErrInvalidRequest),
		errors.Is(err, errs.ErrMalformedWebhook),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrNegativeAmount),
		errors.Is(err, errs.ErrUnsupportedRenewalPeriod):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateTransaction),
		errors.Is(err, errs.ErrGatewayReferenceImmutable),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrGatewayTimeout):
		return http.StatusGatewayTimeout
	case errs.IsGatewayError(err):
		return http.StatusBadGateway
	case errs.IsStorageFailure(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// StatusForDenial maps a download denial to its HTTP status
func StatusForDenial(kind entity.DenialKind) int {
	switch kind {
	case entity.DenialVersionNotFound:
		return http.StatusNotFound
	case entity.DenialQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusForbidden
	}
}
