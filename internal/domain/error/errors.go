package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount             = 4001
	CodeUnsupportedMethod         = 4002
	CodeInvalidEmail              = 4003
	CodeDuplicateTransaction      = 4004
	CodeConstraintViolation       = 4005
	CodeAmountOutOfRange          = 4006
	CodeUnsupportedRenewalPeriod  = 4007
	CodeInvalidRequest            = 4008
	CodeSignatureMismatch         = 4010
	CodeNotFound                  = 4040
	CodeGatewayReferenceImmutable = 4090
	CodeInvalidTransition         = 4091

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeGateway        = 5020
	CodeStorageFailure = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when the payment amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the payment amount is zero or negative
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrAmountOutOfRange is returned when the amount exceeds the configured upper bound
	ErrAmountOutOfRange = errors.New("amount exceeds the allowed maximum")

	// ErrUnsupportedMethod is returned when no gateway is registered for the payment method
	ErrUnsupportedMethod = errors.New("unsupported payment method")

	// ErrGatewayDisabled is returned when the payment method exists but is switched off
	ErrGatewayDisabled = errors.New("payment method is disabled")

	// ErrInvalidEmail is returned when the payer email is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidVersion is returned when a version string is not dotted-numeric
	ErrInvalidVersion = errors.New("invalid version string")

	// ErrDuplicateTransaction is returned when a transaction reference already exists
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLicenseNotFound is returned when the requested license doesn't exist
	ErrLicenseNotFound = errors.New("license not found")

	// ErrProductNotFound is returned when the requested product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrVersionNotFound is returned when the requested product version doesn't exist
	ErrVersionNotFound = errors.New("product version not found")

	// ErrGatewayReferenceImmutable is returned when a transaction already carries a different gateway reference
	ErrGatewayReferenceImmutable = errors.New("gateway reference is already set")

	// ErrInvalidTransition is returned when a status change would break the lifecycle order
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnsupportedRenewalPeriod is returned for renewal periods outside the price table
	ErrUnsupportedRenewalPeriod = errors.New("unsupported renewal period")

	// ErrPerpetualLicense is returned when a renewal is requested for a license whose updates never expire
	ErrPerpetualLicense = errors.New("license has perpetual updates and cannot be renewed")

	// ErrInvalidDiscount is returned when a discount percent is outside [0, 100]
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")

	// ErrUnknownGateway is returned when a webhook arrives for an unregistered gateway
	ErrUnknownGateway = errors.New("unknown gateway")

	// ErrSignatureMismatch is returned when a webhook signature does not verify
	ErrSignatureMismatch = errors.New("webhook signature mismatch")

	// ErrMalformedWebhook is returned when a webhook body cannot be parsed
	ErrMalformedWebhook = errors.New("malformed webhook payload")

	// ErrGateway is returned for gateway network failures and malformed upstream responses
	ErrGateway = errors.New("payment gateway error")

	// ErrGatewayTimeout is returned when a gateway call exceeds its deadline
	ErrGatewayTimeout = errors.New("payment gateway timeout")

	// ErrStorageFailure is returned when a version file is missing or unreadable
	ErrStorageFailure = errors.New("update file unavailable")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOutOfRange):
		return CodeAmountOutOfRange
	case errors.Is(err, ErrUnsupportedMethod), errors.Is(err, ErrGatewayDisabled), errors.Is(err, ErrUnknownGateway):
		return CodeUnsupportedMethod
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrUnsupportedRenewalPeriod), errors.Is(err, ErrInvalidDiscount):
		return CodeUnsupportedRenewalPeriod
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrMalformedWebhook), errors.Is(err, ErrInvalidVersion),
		errors.Is(err, ErrPerpetualLicense):
		return CodeInvalidRequest
	case errors.Is(err, ErrSignatureMismatch):
		return CodeSignatureMismatch
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrLicenseNotFound),
		errors.Is(err, ErrProductNotFound), errors.Is(err, ErrVersionNotFound), errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrGatewayReferenceImmutable):
		return CodeGatewayReferenceImmutable
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrGateway), errors.Is(err, ErrGatewayTimeout):
		return CodeGateway
	case errors.Is(err, ErrStorageFailure):
		return CodeStorageFailure
	default:
		return CodeInternalServer
	}
}

// ReasonCode returns a short machine-readable reason used on checkout failure pages
func ReasonCode(err error) string {
	switch ErrorCode(err) {
	case CodeInvalidAmount, CodeAmountOutOfRange:
		return "invalid_amount"
	case CodeUnsupportedMethod:
		return "unsupported_method"
	case CodeInvalidEmail:
		return "invalid_email"
	case CodeUnsupportedRenewalPeriod:
		return "unsupported_period"
	case CodeInvalidRequest:
		return "invalid_request"
	case CodeNotFound:
		return "not_found"
	case CodeGateway:
		return "gateway_error"
	case CodeStorageFailure:
		return "unavailable"
	default:
		return "internal_error"
	}
}

// ValidationError describes bad caller input; no state is mutated when it is returned
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("validation failed for %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("validation failed for %s (%q): %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}

// GatewayError wraps every network, timeout and upstream-format failure at the adapter boundary
type GatewayError struct {
	Gateway    string
	Operation  string
	StatusCode int
	Err        error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway %s %s failed with status %d: %v", e.Gateway, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gateway %s %s failed: %v", e.Gateway, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is reports every GatewayError as ErrGateway
func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "gateway_error",
		"gateway":     e.Gateway,
		"operation":   e.Operation,
		"status_code": e.StatusCode,
		"error":       e.Err.Error(),
		"error_code":  CodeGateway,
	}
}

// NewGatewayError creates a gateway error
func NewGatewayError(gateway, operation string, statusCode int, err error) error {
	return &GatewayError{Gateway: gateway, Operation: operation, StatusCode: statusCode, Err: err}
}

// StorageFailureError is returned when a version file recorded in the database cannot be served
type StorageFailureError struct {
	Path     string
	RecordID string
	Err      error
}

// Error implements the error interface for StorageFailureError
func (e *StorageFailureError) Error() string {
	return fmt.Sprintf("storage failure for %s (download %s): %v", e.Path, e.RecordID, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageFailureError) Unwrap() error {
	return e.Err
}

// Is reports every StorageFailureError as ErrStorageFailure
func (e *StorageFailureError) Is(target error) bool {
	return target == ErrStorageFailure
}

// LogFields returns a map of fields for structured logging
func (e *StorageFailureError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_failure",
		"path":       e.Path,
		"record_id":  e.RecordID,
		"error":      e.Err.Error(),
		"error_code": CodeStorageFailure,
	}
}

// NewStorageFailureError creates a storage failure error
func NewStorageFailureError(path, recordID string, err error) error {
	return &StorageFailureError{Path: path, RecordID: recordID, Err: err}
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsGatewayError checks if an error originated at a gateway boundary
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGateway) || errors.Is(err, ErrGatewayTimeout)
}

// IsStorageFailure checks if an error is a StorageFailureError
func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

// IsNotFound checks if an error denotes a missing resource
func IsNotFound(err error) bool {
	return ErrorCode(err) == CodeNotFound
}
