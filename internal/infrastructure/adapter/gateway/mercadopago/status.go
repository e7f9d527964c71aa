package mercadopago

import "github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"

var statusMap = map[string]entity.TransactionStatus{
	"approved":     entity.StatusCompleted,
	"pending":      entity.StatusPending,
	"in_process":   entity.StatusPending,
	"in_mediation": entity.StatusPending,
	"authorized":   entity.StatusPending,
	"rejected":     entity.StatusFailed,
	"cancelled":    entity.StatusFailed,
	"refunded":     entity.StatusRefunded,
	"charged_back": entity.StatusRefunded,
}

// mapStatus returns the ledger status for a MercadoPago payment status and whether it was known
func mapStatus(status string) (entity.TransactionStatus, bool) {
	mapped, ok := statusMap[status]
	if !ok {
		return entity.StatusPending, false
	}
	return mapped, true
}
