package entity

import (
	"fmt"
	"time"
)

// DenialKind names the gate that refused an update
type DenialKind string

// Denial kinds
const (
	DenialNoLicense           DenialKind = "no_license"
	DenialEntitlementExpired  DenialKind = "entitlement_expired"
	DenialReleasedAfterExpiry DenialKind = "released_after_expiry"
	DenialMinimumVersion      DenialKind = "minimum_version"
	DenialQuotaExceeded       DenialKind = "quota_exceeded"
	DenialVersionNotFound     DenialKind = "version_not_found"
)

// Denial is an expected negative outcome with a reason that can be shown to the user
type Denial struct {
	Kind   DenialKind `json:"kind"`
	Reason string     `json:"reason"`
}

// NoLicenseDenial is returned when the user has no active license for the product
func NoLicenseDenial() Denial {
	return Denial{Kind: DenialNoLicense, Reason: "no active license for this product"}
}

// EntitlementExpiredDenial is returned when the update window closed
func EntitlementExpiredDenial(expiredAt time.Time) Denial {
	return Denial{
		Kind:   DenialEntitlementExpired,
		Reason: fmt.Sprintf("entitlement expired on %s", expiredAt.UTC().Format("2006-01-02")),
	}
}

// ReleasedAfterExpiryDenial is returned for versions released after the window closed
func ReleasedAfterExpiryDenial(version string) Denial {
	return Denial{
		Kind:   DenialReleasedAfterExpiry,
		Reason: fmt.Sprintf("version %s released after entitlement lapsed", version),
	}
}

// MinimumVersionDenial is returned when the installed version is too old to upgrade directly
func MinimumVersionDenial(minVersion string) Denial {
	return Denial{
		Kind:   DenialMinimumVersion,
		Reason: fmt.Sprintf("must upgrade to at least %s first", minVersion),
	}
}

// QuotaExceededDenial is returned when the download limit is used up
func QuotaExceededDenial(limit int) Denial {
	return Denial{
		Kind:   DenialQuotaExceeded,
		Reason: fmt.Sprintf("download limit of %d reached, contact support", limit),
	}
}

// VersionNotFoundDenial is returned when the requested version does not exist
func VersionNotFoundDenial() Denial {
	return Denial{Kind: DenialVersionNotFound, Reason: "version not found"}
}

// UpdateCandidate is one newer version annotated with its download eligibility
type UpdateCandidate struct {
	VersionID       uint64    `json:"versionId"`
	Version         string    `json:"version"`
	ReleasedAt      time.Time `json:"releasedAt"`
	RequiresLicense bool      `json:"requiresLicense"`
	Changelog       string    `json:"changelog,omitempty"`
	FileSize        int64     `json:"fileSize"`
	Eligible        bool      `json:"eligible"`
	Denials         []Denial  `json:"denials,omitempty"`
}

// UpdateStatus is the update-availability view for a user and product
type UpdateStatus struct {
	UserID             uint64            `json:"userId"`
	ProductID          uint64            `json:"productId"`
	HasLicense         bool              `json:"hasLicense"`
	LicenseID          uint64            `json:"licenseId,omitempty"`
	Denial             *Denial           `json:"denial,omitempty"`
	CurrentVersion     string            `json:"currentVersion"`
	LatestVersion      string            `json:"latestVersion"`
	Updates            []UpdateCandidate `json:"updates"`
	DaysRemaining      *int              `json:"daysRemaining"`
	DownloadsRemaining int               `json:"downloadsRemaining"`
	CheckedAt          time.Time         `json:"checkedAt"`
}

// DownloadResult is the outcome of a download attempt
type DownloadResult struct {
	Allowed   bool    `json:"allowed"`
	Denial    *Denial `json:"denial,omitempty"`
	RecordID  string  `json:"recordId,omitempty"`
	Version   string  `json:"version,omitempty"`
	BytesSent int64   `json:"bytesSent"`
}

// DeniedDownload builds a refused download result
func DeniedDownload(denial Denial) *DownloadResult {
	return &DownloadResult{Denial: &denial}
}

// FileMeta describes the file being streamed for a download
type FileMeta struct {
	Name string
	Size int64
}
