package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/shopspring/decimal"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusRefunded  TransactionStatus = "refunded"
)

// TransactionKind distinguishes what a payment is for
type TransactionKind string

// Transaction kinds
const (
	KindDonation TransactionKind = "donation"
	KindOrder    TransactionKind = "order"
	KindRenewal  TransactionKind = "renewal"
)

// Gateway identifies a payment processor and doubles as the checkout method name
type Gateway string

// Supported gateways
const (
	GatewayPayPal      Gateway = "paypal"
	GatewayMercadoPago Gateway = "mercadopago"
)

// allowedTransitions is the status DAG: pending -> {completed, failed}, completed -> refunded
var allowedTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:   {StatusCompleted, StatusFailed},
	StatusCompleted: {StatusRefunded},
}

// TransitionResult classifies what applying a target status to a transaction does
type TransitionResult string

// Transition results
const (
	ResultApplied           TransitionResult = "applied"
	ResultAlreadySettled    TransitionResult = "already_settled"
	ResultInvalidTransition TransitionResult = "invalid_transition"
	ResultNotFound          TransitionResult = "not_found"
)

// Transaction is a donation, order or renewal payment tracked across its gateway lifecycle
type Transaction struct {
	ID               uint64
	Reference        string // Human-readable, globally unique external identifier
	Kind             TransactionKind
	Amount           decimal.Decimal // Requested amount, never mutated
	Currency         string
	Gateway          Gateway
	Status           TransactionStatus
	GatewayReference string // Gateway order/preference id, immutable once set
	GatewayResponse  []byte // Raw checkout response, stored verbatim
	WebhookReceived  bool
	WebhookPayload   []byte
	FinalAmount      *decimal.Decimal // Settled amount, may differ from Amount
	ProductID        *uint64
	LicenseID        *uint64
	RenewalMonths    int
	PayerName        string
	PayerEmail       string
	PayerMessage     string
	FailureReason    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CompletedAt      *time.Time
}

// NewTransaction builds a pending transaction for a validated payment intent
func NewTransaction(reference string, intent PaymentIntent, now time.Time) (*Transaction, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("%w: empty transaction reference", errs.ErrInvalidRequest)
	}
	if !intent.Amount.IsPositive() {
		return nil, errs.ErrNegativeAmount
	}
	if intent.Method == "" {
		return nil, errs.ErrUnsupportedMethod
	}

	kind := intent.Kind
	if kind == "" {
		kind = KindDonation
	}

	return &Transaction{
		Reference:     reference,
		Kind:          kind,
		Amount:        RoundAmount(intent.Amount),
		Currency:      strings.ToUpper(intent.Currency),
		Gateway:       intent.Method,
		Status:        StatusPending,
		ProductID:     intent.ProductID,
		LicenseID:     intent.LicenseID,
		RenewalMonths: intent.RenewalMonths,
		PayerName:     intent.Payer.Name,
		PayerEmail:    intent.Payer.Email,
		PayerMessage:  intent.Payer.Message,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsValid reports whether s is a known status
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s TransactionStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransition reports whether from -> to is an edge of the status DAG
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DecideTransition classifies moving a transaction from current to target.
// Reaching a status the transaction already holds is a no-op, not an error.
func DecideTransition(current, target TransactionStatus) TransitionResult {
	if current == target {
		return ResultAlreadySettled
	}
	if CanTransition(current, target) {
		return ResultApplied
	}
	return ResultInvalidTransition
}

// IsSettled reports whether the monetary outcome is final
func (t *Transaction) IsSettled() bool {
	return t.Status != StatusPending
}

// SettledAmount returns the final amount when known, otherwise the requested amount
func (t *Transaction) SettledAmount() decimal.Decimal {
	if t.FinalAmount != nil {
		return *t.FinalAmount
	}
	return t.Amount
}

// IsRenewal reports whether completing this transaction extends a license
func (t *Transaction) IsRenewal() bool {
	return t.Kind == KindRenewal && t.LicenseID != nil && t.RenewalMonths > 0
}
