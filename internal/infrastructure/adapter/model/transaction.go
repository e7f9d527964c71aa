package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction represents the database model for donation, order and renewal payments
type Transaction struct {
	ID               uint64              `gorm:"primaryKey;autoIncrement"`
	Reference        string              `gorm:"uniqueIndex;not null;size:64"`
	Kind             string              `gorm:"not null;size:16;index"`
	Amount           decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	Currency         string              `gorm:"not null;size:3"`
	Gateway          string              `gorm:"not null;size:32;uniqueIndex:idx_transactions_gateway_reference"`
	Status           string              `gorm:"not null;size:16;index"`
	GatewayReference *string             `gorm:"size:128;uniqueIndex:idx_transactions_gateway_reference"`
	GatewayResponse  datatypes.JSON      `gorm:"type:json"`
	WebhookReceived  bool                `gorm:"not null"`
	WebhookPayload   datatypes.JSON      `gorm:"type:json"`
	FinalAmount      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ProductID        *uint64             `gorm:"index"`
	LicenseID        *uint64             `gorm:"index"`
	RenewalMonths    int                 `gorm:"not null"`
	PayerName        string              `gorm:"size:200"`
	PayerEmail       string              `gorm:"size:254"`
	PayerMessage     string              `gorm:"type:text"`
	FailureReason    string              `gorm:"type:text"`
	CreatedAt        time.Time           `gorm:"not null"`
	UpdatedAt        time.Time           `gorm:"not null"`
	CompletedAt      *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
