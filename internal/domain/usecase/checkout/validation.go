package checkout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/go-playground/validator/v10"
)

// Field limits for payer details
const (
	MaxDonorNameLength    = 200
	MaxDonorMessageLength = 1000
)

// Validator checks checkout requests before anything is written
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new checkout Validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateKind parses the transaction kind, defaulting to donation
func (v *Validator) ValidateKind(kind string) (entity.TransactionKind, error) {
	switch k := entity.TransactionKind(strings.ToLower(strings.TrimSpace(kind))); k {
	case "":
		return entity.KindDonation, nil
	case entity.KindDonation, entity.KindOrder, entity.KindRenewal:
		return k, nil
	default:
		return "", errs.NewValidationError("kind", kind, errs.ErrInvalidRequest)
	}
}

// ValidateMethod checks that the method names a gateway that is switched on
func (v *Validator) ValidateMethod(method string, cfg *entity.PaymentSettings) (entity.Gateway, error) {
	gateway := entity.Gateway(strings.ToLower(strings.TrimSpace(method)))
	if gateway == "" {
		return "", errs.NewValidationError("method", method, errs.ErrUnsupportedMethod)
	}
	if _, known := cfg.Gateway(gateway); !known {
		return "", errs.NewValidationError("method", method, errs.ErrUnsupportedMethod)
	}
	if !cfg.GatewayEnabled(gateway) {
		return "", errs.NewValidationError("method", method, errs.ErrGatewayDisabled)
	}
	return gateway, nil
}

// ValidateAmount parses the amount and checks it against the configured ceiling
func (v *Validator) ValidateAmount(amount string, cfg *entity.PaymentSettings) error {
	parsed, err := entity.ParseAmount(amount)
	if err != nil {
		return errs.NewValidationError("amount", amount, err)
	}
	if err := entity.ValidatePaymentAmount(parsed, cfg.MaxAmount); err != nil {
		return errs.NewValidationError("amount", amount, err)
	}
	return nil
}

// ValidatePayer checks the optional payer details
func (v *Validator) ValidatePayer(req usecase.CheckoutRequest) (entity.PayerInfo, error) {
	payer := entity.PayerInfo{
		Name:    strings.TrimSpace(req.DonorName),
		Email:   strings.TrimSpace(req.DonorEmail),
		Message: strings.TrimSpace(req.DonorMessage),
	}

	if payer.Email != "" {
		if err := v.validate.Var(payer.Email, "email"); err != nil {
			return entity.PayerInfo{}, errs.NewValidationError("donorEmail", payer.Email, errs.ErrInvalidEmail)
		}
	}
	if utf8.RuneCountInString(payer.Name) > MaxDonorNameLength {
		return entity.PayerInfo{}, errs.NewValidationError("donorName", "",
			fmt.Errorf("%w: name longer than %d characters", errs.ErrInvalidRequest, MaxDonorNameLength))
	}
	if utf8.RuneCountInString(payer.Message) > MaxDonorMessageLength {
		return entity.PayerInfo{}, errs.NewValidationError("donorMessage", "",
			fmt.Errorf("%w: message longer than %d characters", errs.ErrInvalidRequest, MaxDonorMessageLength))
	}

	return payer, nil
}

// ValidateReferences checks the product and license references each kind needs
func (v *Validator) ValidateReferences(kind entity.TransactionKind, req usecase.CheckoutRequest) error {
	switch kind {
	case entity.KindOrder:
		if req.ProductID == nil || *req.ProductID == 0 {
			return errs.NewValidationError("productId", "", errs.ErrInvalidRequest)
		}
	case entity.KindRenewal:
		if req.LicenseID == nil || *req.LicenseID == 0 {
			return errs.NewValidationError("licenseId", "", errs.ErrInvalidRequest)
		}
		if _, err := entity.RenewalFactor(req.RenewalMonths); err != nil {
			return errs.NewValidationError("months", fmt.Sprint(req.RenewalMonths), err)
		}
	}
	return nil
}
