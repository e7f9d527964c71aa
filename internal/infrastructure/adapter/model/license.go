package model

import (
	"time"
)

// License represents the database model for a user's product license
type License struct {
	ID                    uint64 `gorm:"primaryKey;autoIncrement"`
	UserID                uint64 `gorm:"not null;index:idx_licenses_user_product"`
	ProductID             uint64 `gorm:"not null;index:idx_licenses_user_product"`
	Active                bool   `gorm:"not null;index"`
	UpdateExpiresAt       *time.Time
	DownloadsUsed         int    `gorm:"not null;check:chk_licenses_downloads_used,downloads_used >= 0 AND downloads_used <= download_limit"`
	DownloadLimit         int    `gorm:"not null"`
	LastVersionDownloaded string `gorm:"size:32"`
	LastUpdateCheck       *time.Time
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for License
func (License) TableName() string {
	return "licenses"
}
