package entitlement

import (
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// evaluateGates returns every denial that applies to downloading version under license.
// Each gate is checked on its own so callers can show all reasons, not only the first.
func evaluateGates(license *entity.License, version *entity.ProductVersion, currentVersion string, now time.Time) []entity.Denial {
	var denials []entity.Denial

	if version.RequiresLicense && license.UpdateWindowExpired(now) {
		denials = append(denials, entity.EntitlementExpiredDenial(*license.UpdateExpiresAt))
	}

	// Applies whether or not the version requires a license
	if license.UpdateExpiresAt != nil && version.ReleasedAt.After(*license.UpdateExpiresAt) {
		denials = append(denials, entity.ReleasedAfterExpiryDenial(version.Version))
	}

	if version.MinVersionRequired != "" && entity.CompareVersions(currentVersion, version.MinVersionRequired) < 0 {
		denials = append(denials, entity.MinimumVersionDenial(version.MinVersionRequired))
	}

	return denials
}
