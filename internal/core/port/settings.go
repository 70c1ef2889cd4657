package port

import "github.com/jackramireznewacc/webp-converter/internal/core/domain"

// SettingsStore persists converter defaults between runs.
type SettingsStore interface {
	// Load returns the current defaults.
	Load() domain.Settings
	// Save persists new defaults.
	Save(settings domain.Settings) error
}
