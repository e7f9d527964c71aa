package notification

import (
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// BuildMessages returns the emails a status change produces under the current settings.
// Payer emails need an address on the transaction; admin emails need notify_admin and admin_email.
func BuildMessages(event *entity.NotificationEvent, txn *entity.Transaction, cfg *entity.PaymentSettings) []entity.EmailMessage {
	subs := substitutions(txn, cfg)
	var messages []entity.EmailMessage

	payer := func(template string) {
		if !cfg.NotifyPayer || txn.PayerEmail == "" {
			return
		}
		messages = append(messages, entity.EmailMessage{
			EventID:       fmt.Sprintf("%s:%s", event.ID, template),
			Recipient:     txn.PayerEmail,
			TemplateKey:   template,
			Substitutions: subs,
		})
	}

	switch event.Status {
	case entity.StatusCompleted:
		payer(entity.TemplatePaymentCompleted)
		if cfg.NotifyAdmin && cfg.AdminEmail != "" {
			messages = append(messages, entity.EmailMessage{
				EventID:       fmt.Sprintf("%s:%s", event.ID, entity.TemplatePaymentReceivedAdmin),
				Recipient:     cfg.AdminEmail,
				TemplateKey:   entity.TemplatePaymentReceivedAdmin,
				Substitutions: subs,
			})
		}
	case entity.StatusRefunded:
		payer(entity.TemplatePaymentRefunded)
	case entity.StatusFailed:
		payer(entity.TemplatePaymentFailed)
	}

	return messages
}

func substitutions(txn *entity.Transaction, cfg *entity.PaymentSettings) map[string]string {
	name := txn.PayerName
	if name == "" {
		name = "Supporter"
	}
	return map[string]string{
		"reference":  txn.Reference,
		"kind":       string(txn.Kind),
		"amount":     entity.FormatAmount(txn.SettledAmount()),
		"currency":   txn.Currency,
		"gateway":    string(txn.Gateway),
		"status":     string(txn.Status),
		"payer_name": name,
		"message":    txn.PayerMessage,
		"status_url": fmt.Sprintf("%s/api/transactions/%s", cfg.SiteURL, txn.Reference),
	}
}
