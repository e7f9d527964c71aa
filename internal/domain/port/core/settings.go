package core

import "context"

// SettingsStore is the read-only key/value settings collaborator
type SettingsStore interface {
	GetAll(ctx context.Context) (map[string]string, error)
}
