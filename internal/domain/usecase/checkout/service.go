package checkout

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
)

// Checkout outcomes reported to metrics
const (
	outcomeRedirected   = "redirected"
	outcomeRejected     = "rejected"
	outcomeGatewayError = "gateway_error"
	outcomeError        = "error"
)

// Service creates pending transactions and opens gateway checkout sessions
type Service struct {
	ledger      *ledger.Ledger
	registry    *gateway.Registry
	settings    *settings.Provider
	renewals    usecase.RenewalUseCase
	productRepo persistence.ProductRepository
	validator   *Validator
	metrics     coreport.MetricsRecorder
	logger      coreport.Logger
}

// NewService creates a new checkout Service
func NewService(
	ledger *ledger.Ledger,
	registry *gateway.Registry,
	settingsProvider *settings.Provider,
	renewals usecase.RenewalUseCase,
	productRepo persistence.ProductRepository,
	metrics coreport.MetricsRecorder,
	logger coreport.Logger,
) *Service {
	return &Service{
		ledger:      ledger,
		registry:    registry,
		settings:    settingsProvider,
		renewals:    renewals,
		productRepo: productRepo,
		validator:   NewValidator(),
		metrics:     metrics,
		logger:      logger,
	}
}

// StartCheckout validates the request, records a pending transaction, opens the gateway
// session and stores its reference before returning the redirect URL
func (s *Service) StartCheckout(ctx context.Context, req usecase.CheckoutRequest) (*usecase.CheckoutResult, error) {
	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	intent, err := s.buildIntent(ctx, req, cfg)
	if err != nil {
		s.metrics.CheckoutCompleted(req.Method, outcomeRejected)
		return nil, err
	}

	adapter, err := s.registry.Resolve(string(intent.Method))
	if err != nil {
		s.metrics.CheckoutCompleted(req.Method, outcomeRejected)
		return nil, errs.NewValidationError("method", req.Method, err)
	}

	txn, err := s.ledger.Create(ctx, *intent)
	if err != nil {
		s.metrics.CheckoutCompleted(string(intent.Method), outcomeError)
		return nil, err
	}

	session, err := adapter.CreateCheckout(ctx, txn)
	if err == nil && (session.CheckoutURL == "" || session.GatewayReference == "") {
		err = errs.NewGatewayError(string(intent.Method), "create_checkout", 0,
			errors.New("checkout response is missing the redirect url or reference"))
	}
	if err != nil {
		return nil, s.abandon(ctx, txn, err, outcomeGatewayError)
	}

	if err := s.ledger.AttachCheckout(ctx, txn, session); err != nil {
		return nil, s.abandon(ctx, txn, err, outcomeError)
	}

	s.metrics.CheckoutCompleted(string(txn.Gateway), outcomeRedirected)
	s.logger.Info("Checkout session created", map[string]any{
		"reference":         txn.Reference,
		"gateway":           string(txn.Gateway),
		"gateway_reference": txn.GatewayReference,
	})

	return &usecase.CheckoutResult{
		Reference:   txn.Reference,
		RedirectURL: session.CheckoutURL,
	}, nil
}

// GetTransaction returns a transaction by reference
func (s *Service) GetTransaction(ctx context.Context, reference string) (*entity.Transaction, error) {
	return s.ledger.Find(ctx, reference)
}

// abandon marks the transaction failed so it never lingers in pending, then returns cause
func (s *Service) abandon(ctx context.Context, txn *entity.Transaction, cause error, outcome string) error {
	fields := map[string]any{
		"reference": txn.Reference,
		"gateway":   string(txn.Gateway),
		"error":     cause.Error(),
	}
	var gwErr *errs.GatewayError
	if errors.As(cause, &gwErr) {
		for k, v := range gwErr.LogFields() {
			fields[k] = v
		}
	}
	s.logger.Error("Checkout failed, marking transaction failed", fields)

	if err := s.ledger.MarkFailed(ctx, txn, errs.ReasonCode(cause)); err != nil {
		s.logger.Error("Failed to mark abandoned transaction failed", map[string]any{
			"reference": txn.Reference,
			"error":     err.Error(),
		})
	}

	s.metrics.CheckoutCompleted(string(txn.Gateway), outcome)
	return cause
}

// buildIntent validates the request and prices it according to its kind
func (s *Service) buildIntent(ctx context.Context, req usecase.CheckoutRequest, cfg *entity.PaymentSettings) (*entity.PaymentIntent, error) {
	kind, err := s.validator.ValidateKind(req.Kind)
	if err != nil {
		return nil, err
	}
	method, err := s.validator.ValidateMethod(req.Method, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateReferences(kind, req); err != nil {
		return nil, err
	}
	payer, err := s.validator.ValidatePayer(req)
	if err != nil {
		return nil, err
	}

	intent := &entity.PaymentIntent{
		Kind:      kind,
		Currency:  cfg.Currency,
		Method:    method,
		Payer:     payer,
		ProductID: req.ProductID,
	}

	switch kind {
	case entity.KindRenewal:
		quote, err := s.renewals.Quote(ctx, *req.LicenseID, req.RenewalMonths)
		if err != nil {
			return nil, err
		}
		intent.Amount = quote.Amount
		intent.Currency = quote.Currency
		intent.LicenseID = req.LicenseID
		intent.RenewalMonths = req.RenewalMonths
		intent.ProductID = &quote.ProductID
	case entity.KindOrder:
		product, err := s.productRepo.GetProduct(ctx, *req.ProductID)
		if err != nil {
			return nil, err
		}
		intent.Amount = product.Price
		if product.Currency != "" {
			intent.Currency = product.Currency
		}
	default:
		if err := s.validator.ValidateAmount(req.Amount, cfg); err != nil {
			return nil, err
		}
		intent.Amount, _ = entity.ParseAmount(req.Amount)
	}

	if err := entity.ValidatePaymentAmount(intent.Amount, cfg.MaxAmount); err != nil {
		return nil, errs.NewValidationError("amount", entity.FormatAmount(intent.Amount), err)
	}

	return intent, nil
}
