package driven

import "context"

// SettingsStore defines the driven port for application-wide key/value settings.
// Get returns ("", nil) if the key has never been set.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
