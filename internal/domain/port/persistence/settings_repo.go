package persistence

import "context"

// SettingsRepository stores the keyed string settings read by the payment core
type SettingsRepository interface {
	// GetAll returns every stored setting
	GetAll(ctx context.Context) (map[string]string, error)

	// EnsureDefaults inserts keys that are not stored yet and leaves existing values alone
	EnsureDefaults(ctx context.Context, defaults map[string]string) error
}
