// Package settings defines the typed settings sections and composes them into a registry.
//
// The root UmbracoSection and the GlobalSettings and HostingSettings sections are loaded from a
// settings document (ComposeRoot). The Content and Security sections, and with ComposeAll the
// RequestHandler, WebRouting and Logging sections, are projections of the root registered by
// Compose. Every section is a singleton of the registry it was composed into.
//
//	reg := registry.New()
//	_ = settings.ComposeRoot(reg, yamlparser.NewParser(), fetcher)
//	_ = settings.Compose(reg)
//
//	content, err := registry.Resolve[*settings.ContentSection](reg)
//
// Resolved sections are shared and must be treated as read-only; use Clone for a private copy.
//
// NewModule wires the same composition into an Fx application.
package settings
