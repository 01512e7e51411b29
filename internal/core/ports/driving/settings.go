package driving

import "github.com/custodia-labs/lorequery/internal/core/domain"

// SettingsService resolves typed settings from the configuration store.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (domain.Settings, error)

	// Set stores a single setting by key after validating it.
	Set(key, value string) error

	// Keys lists the recognised setting keys.
	Keys() []string
}
