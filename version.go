package di

import "github.com/0xalexb/hjarta-settings/settings"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// SettingsVersion is the settings schema version the application was built against.
	SettingsVersion = settings.ConfigurationVersion
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)
