package flatten

import "strings"

const (
	debugConfigurationKeySuffixConstant     = ".debug"
	entryListConfigurationKeySuffixConstant = ".list"
)

// CommandConfiguration captures persisted configuration for the flatten command.
type CommandConfiguration struct {
	EnableDebugLogging bool   `mapstructure:"debug"`
	EntryListPath      string `mapstructure:"list"`
}

// DefaultCommandConfiguration returns baseline configuration values for the flatten command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		EnableDebugLogging: false,
		EntryListPath:      "",
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.EntryListPath = strings.TrimSpace(configuration.EntryListPath)
	return sanitized
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + debugConfigurationKeySuffixConstant:     defaults.EnableDebugLogging,
		configurationKey + entryListConfigurationKeySuffixConstant: defaults.EntryListPath,
	}
}
