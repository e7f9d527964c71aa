package model

import (
	"time"
)

// NotificationEvent represents an outbox row announcing one status change
type NotificationEvent struct {
	ID            string `gorm:"primaryKey;size:36"`
	TransactionID uint64 `gorm:"not null;uniqueIndex:idx_notification_events_transaction_status"`
	Reference     string `gorm:"not null;size:64"`
	Status        string `gorm:"not null;size:16;uniqueIndex:idx_notification_events_transaction_status"`
	Attempts      int    `gorm:"not null"`
	LastError     string `gorm:"type:text"`
	ClaimedUntil  *time.Time
	SentAt        *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null;index"`

	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for NotificationEvent
func (NotificationEvent) TableName() string {
	return "notification_events"
}
