// Package logging builds the structured slog logger shared by the App, the settings registry and
// the settingscheck tool. JSON is the default output; text output is available for terminals.
package logging
