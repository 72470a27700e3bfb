package ports

import "github.com/AntonioJCosta/gogo/internal/core/domain/settings"

// SettingsProvider defines the interface for sourcing optional user settings.
type SettingsProvider interface {
	// GetSettings loads settings, returning defaults when no settings are configured.
	GetSettings() (settings.Settings, error)
}
