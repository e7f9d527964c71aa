package mercadopago

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway"
)

type item struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Quantity   int         `json:"quantity"`
	CurrencyID string      `json:"currency_id"`
	UnitPrice  json.Number `json:"unit_price"`
}

type payer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type backURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type preferenceRequest struct {
	Items               []item            `json:"items"`
	ExternalReference   string            `json:"external_reference"`
	Payer               payer             `json:"payer"`
	BackURLs            backURLs          `json:"back_urls"`
	AutoReturn          string            `json:"auto_return,omitempty"`
	NotificationURL     string            `json:"notification_url,omitempty"`
	StatementDescriptor string            `json:"statement_descriptor,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type payment struct {
	ID                json.Number    `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail"`
	ExternalReference string         `json:"external_reference"`
	TransactionAmount json.Number    `json:"transaction_amount"`
	CurrencyID        string         `json:"currency_id"`
	Metadata          map[string]any `json:"metadata"`
}

// notification is the union of the webhook body and the legacy IPN query form
type notification struct {
	Type   string
	Action string
	DataID string
}

type notificationBody struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// parseNotification reads type and payment id from the query first, then from the JSON body
func parseNotification(request entity.WebhookRequest) (*notification, error) {
	n := &notification{
		Type:   firstNonEmpty(request.Query.Get("type"), request.Query.Get("topic")),
		DataID: firstNonEmpty(request.Query.Get("data.id"), request.Query.Get("id")),
	}

	if len(bytes.TrimSpace(request.Body)) > 0 {
		var body notificationBody
		if err := json.Unmarshal(request.Body, &body); err != nil {
			return nil, err
		}
		n.Type = firstNonEmpty(n.Type, body.Type, body.Topic)
		n.Action = body.Action
		n.DataID = firstNonEmpty(n.DataID, strings.Trim(string(body.Data.ID), `"`))
	}

	if n.Type == "" {
		return nil, errors.New("notification type is missing")
	}
	return n, nil
}

// verifySignature checks x-signature "ts=<ts>,v1=<hex>" over "id:<data.id>;request-id:<x-request-id>;ts:<ts>;"
func verifySignature(secret, dataID, requestID, header string) bool {
	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}
	if ts == "" || v1 == "" {
		return false
	}
	return gateway.VerifyHMAC(secret, []byte(Manifest(dataID, requestID, ts)), v1)
}

// Manifest builds the string MercadoPago signs; alphanumeric ids are lowercased
func Manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
