package ledger

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/google/uuid"
)

// referenceRandomBytes is the number of random bytes in a reference suffix (48 bits)
const referenceRandomBytes = 6

var referencePrefixes = map[entity.TransactionKind]string{
	entity.KindDonation: "DON",
	entity.KindOrder:    "ORD",
	entity.KindRenewal:  "REN",
}

// ReferenceGenerator builds external-facing transaction references such as DON-20260115093012-4F1A9C03B2D7
type ReferenceGenerator struct {
	timeProvider coreport.TimeProvider
	newRandom    func() (uuid.UUID, error)
}

// NewReferenceGenerator creates a generator backed by random UUIDs
func NewReferenceGenerator(timeProvider coreport.TimeProvider) *ReferenceGenerator {
	return &ReferenceGenerator{
		timeProvider: timeProvider,
		newRandom:    uuid.NewRandom,
	}
}

// Next returns a new reference; it fails instead of degrading when no randomness is available
func (g *ReferenceGenerator) Next(kind entity.TransactionKind) (string, error) {
	prefix, ok := referencePrefixes[kind]
	if !ok {
		prefix = referencePrefixes[entity.KindDonation]
	}

	id, err := g.newRandom()
	if err != nil {
		return "", fmt.Errorf("%w: reference randomness unavailable: %s", errs.ErrInternalServer, err.Error())
	}

	// The first six bytes of a v4 UUID carry no version or variant bits
	suffix := strings.ToUpper(hex.EncodeToString(id[:referenceRandomBytes]))
	stamp := g.timeProvider.Now().UTC().Format("20060102150405")

	return fmt.Sprintf("%s-%s-%s", prefix, stamp, suffix), nil
}
