package entity

import "time"

// DownloadStatus is the lifecycle state of one download attempt
type DownloadStatus string

// Download statuses
const (
	DownloadStarted   DownloadStatus = "started"
	DownloadCompleted DownloadStatus = "completed"
	DownloadFailed    DownloadStatus = "failed"
)

// UpdateDownloadRecord tracks one download attempt; it is terminal once completed or failed
type UpdateDownloadRecord struct {
	ID              string
	LicenseID       uint64
	VersionID       uint64
	Version         string
	PreviousVersion string
	Status          DownloadStatus
	ErrorMessage    string
	StartedAt       time.Time
	FinishedAt      *time.Time
}

// IsTerminal reports whether the attempt has finished
func (r *UpdateDownloadRecord) IsTerminal() bool {
	return r.Status == DownloadCompleted || r.Status == DownloadFailed
}
