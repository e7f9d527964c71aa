package entity

import (
	"math"
	"time"
)

// License is a user's entitlement to a product and to its updates
type License struct {
	ID                    uint64
	UserID                uint64
	ProductID             uint64
	Active                bool
	UpdateExpiresAt       *time.Time // nil means perpetual updates
	DownloadsUsed         int
	DownloadLimit         int
	LastVersionDownloaded string
	LastUpdateCheck       *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasQuota reports whether another download fits in the limit
func (l *License) HasQuota() bool {
	return l.DownloadsUsed < l.DownloadLimit
}

// DownloadsRemaining returns how many downloads are left, never negative
func (l *License) DownloadsRemaining() int {
	if l.DownloadsUsed >= l.DownloadLimit {
		return 0
	}
	return l.DownloadLimit - l.DownloadsUsed
}

// UpdateWindowExpired reports whether the update window closed before now
func (l *License) UpdateWindowExpired(now time.Time) bool {
	return l.UpdateExpiresAt != nil && now.After(*l.UpdateExpiresAt)
}

// DaysRemaining returns whole days left in the update window, rounded up.
// nil means the window never closes; an expired window returns 0.
func (l *License) DaysRemaining(now time.Time) *int {
	if l.UpdateExpiresAt == nil {
		return nil
	}

	days := 0
	if left := l.UpdateExpiresAt.Sub(now); left > 0 {
		days = int(math.Ceil(left.Hours() / 24))
	}
	return &days
}

// IsPerpetual reports whether the update window never closes
func (l *License) IsPerpetual() bool {
	return l.UpdateExpiresAt == nil
}

// ExtendedUpdateExpiry returns the expiry after adding months to the window.
// A lapsed window restarts from now; a running one is extended from its end.
// A perpetual window stays perpetual and nil is returned.
func (l *License) ExtendedUpdateExpiry(months int, now time.Time) *time.Time {
	if l.IsPerpetual() {
		return nil
	}
	start := now
	if l.UpdateExpiresAt.After(now) {
		start = *l.UpdateExpiresAt
	}
	expiresAt := start.AddDate(0, months, 0)
	return &expiresAt
}
