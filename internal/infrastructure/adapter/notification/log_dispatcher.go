package notification

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
)

// LogDispatcher writes email messages to the log; used when no broker is configured
type LogDispatcher struct {
	logger coreport.Logger
}

// NewLogDispatcher creates a LogDispatcher
func NewLogDispatcher(logger coreport.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

// SendTemplateEmail logs the message and never fails
func (d *LogDispatcher) SendTemplateEmail(_ context.Context, message entity.EmailMessage) error {
	d.logger.Info("Email dispatched", map[string]any{
		"event_id":      message.EventID,
		"recipient":     message.Recipient,
		"template_key":  message.TemplateKey,
		"substitutions": message.Substitutions,
	})
	return nil
}
