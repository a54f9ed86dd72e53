package driving

import "github.com/custodia-labs/folio/internal/core/domain"

// SettingsService exposes the effective runtime settings.
type SettingsService interface {
	// Get returns the settings with defaults applied.
	Get() domain.Settings

	// Set validates and persists one setting by its dotted key.
	Set(key, value string) error

	// Keys returns every settable key in display order.
	Keys() []string

	// Path returns the backing configuration file, if any.
	Path() string
}
