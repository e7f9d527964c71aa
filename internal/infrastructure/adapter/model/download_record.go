package model

import (
	"time"
)

// UpdateDownloadRecord represents the database model for one download attempt
type UpdateDownloadRecord struct {
	ID              string    `gorm:"primaryKey;size:36"`
	LicenseID       uint64    `gorm:"not null;index:idx_download_records_license_status"`
	VersionID       uint64    `gorm:"not null;index"`
	Version         string    `gorm:"not null;size:32"`
	PreviousVersion string    `gorm:"size:32"`
	Status          string    `gorm:"not null;size:16;index:idx_download_records_license_status"`
	ErrorMessage    string    `gorm:"type:text"`
	StartedAt       time.Time `gorm:"not null"`
	FinishedAt      *time.Time

	License License `gorm:"foreignKey:LicenseID;references:ID"`
}

// TableName specifies the table name for UpdateDownloadRecord
func (UpdateDownloadRecord) TableName() string {
	return "update_download_records"
}
