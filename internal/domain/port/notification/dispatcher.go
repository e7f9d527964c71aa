package notification

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// Dispatcher hands a templated email to the delivery system
type Dispatcher interface {
	SendTemplateEmail(ctx context.Context, message entity.EmailMessage) error
}
