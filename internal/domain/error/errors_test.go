package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrSignatureMismatch.Error() != "webhook signature mismatch" {
		t.Errorf("ErrSignatureMismatch has unexpected message: %s", ErrSignatureMismatch.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"NegativeAmount", ErrNegativeAmount, 4001},
		{"UnsupportedMethod", ErrUnsupportedMethod, 4002},
		{"GatewayDisabled", ErrGatewayDisabled, 4002},
		{"InvalidEmail", ErrInvalidEmail, 4003},
		{"DuplicateTransaction", ErrDuplicateTransaction, 4004},
		{"AmountOutOfRange", ErrAmountOutOfRange, 4006},
		{"UnsupportedRenewalPeriod", ErrUnsupportedRenewalPeriod, 4007},
		{"SignatureMismatch", ErrSignatureMismatch, 4010},
		{"LicenseNotFound", ErrLicenseNotFound, 4040},
		{"GatewayReferenceImmutable", ErrGatewayReferenceImmutable, 4090},
		{"GatewayTimeout", ErrGatewayTimeout, 5020},
		{"StorageFailure", ErrStorageFailure, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidEmail), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestReasonCode(t *testing.T) {
	if got := ReasonCode(NewGatewayError("paypal", "create_checkout", 503, errors.New("upstream down"))); got != "gateway_error" {
		t.Errorf("ReasonCode(gateway) = %s, want gateway_error", got)
	}
	if got := ReasonCode(NewValidationError("amount", "-1", ErrNegativeAmount)); got != "invalid_amount" {
		t.Errorf("ReasonCode(validation) = %s, want invalid_amount", got)
	}
	if got := ReasonCode(errors.New("boom")); got != "internal_error" {
		t.Errorf("ReasonCode(unknown) = %s, want internal_error", got)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("donorEmail", "not-an-email", ErrInvalidEmail)

	expected := `validation failed for donorEmail ("not-an-email"): invalid email address`
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("errors.Is(err, ErrInvalidEmail) = false, want true")
	}
	if !IsValidationError(fmt.Errorf("checkout: %w", err)) {
		t.Errorf("IsValidationError(wrapped) = false, want true")
	}
}

func TestGatewayError(t *testing.T) {
	err := NewGatewayError("mercadopago", "fetch_payment", 500, errors.New("bad gateway"))

	expected := "gateway mercadopago fetch_payment failed with status 500: bad gateway"
	if err.Error() != expected {
		t.Errorf("GatewayError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrGateway) {
		t.Errorf("errors.Is(err, ErrGateway) = false, want true")
	}
	if !IsGatewayError(err) {
		t.Errorf("IsGatewayError(err) = false, want true")
	}

	timeout := NewGatewayError("paypal", "create_checkout", 0, ErrGatewayTimeout)
	if !errors.Is(timeout, ErrGatewayTimeout) {
		t.Errorf("errors.Is(timeout, ErrGatewayTimeout) = false, want true")
	}

	var gwErr *GatewayError
	if !errors.As(timeout, &gwErr) {
		t.Fatalf("errors.As failed: not a *GatewayError")
	}
	if gwErr.LogFields()["gateway"] != "paypal" {
		t.Errorf("LogFields gateway = %v, want paypal", gwErr.LogFields()["gateway"])
	}
}

func TestStorageFailureError(t *testing.T) {
	err := NewStorageFailureError("/srv/files/app-2.0.zip", "rec-1", errors.New("no such file"))

	if !IsStorageFailure(err) {
		t.Errorf("IsStorageFailure(err) = false, want true")
	}
	if IsStorageFailure(ErrGateway) {
		t.Errorf("IsStorageFailure(ErrGateway) = true, want false")
	}
	if ErrorCode(err) != CodeStorageFailure {
		t.Errorf("ErrorCode(err) = %d, want %d", ErrorCode(err), CodeStorageFailure)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("lookup: %w", ErrVersionNotFound)) {
		t.Errorf("IsNotFound(wrapped version) = false, want true")
	}
	if IsNotFound(ErrInvalidRequest) {
		t.Errorf("IsNotFound(ErrInvalidRequest) = true, want false")
	}
}
