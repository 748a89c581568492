// Package config provides the loading pipeline for settings documents.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a settings struct, with path navigation support
//   - DataFetcher: retrieves raw data (file, embedded resource, etc.)
//   - Validator: validates settings after parsing
//   - Defaulter: applies default values before validation
//
// Fetchers report a missing resource with ErrResourceNotFound.
//
// # Path Navigation
//
// Provider and Load accept a path that targets one section of a document. Paths use colon (:)
// as the separator:
//
//	"umbracoConfiguration:global"   -> config["umbracoConfiguration"]["global"]
//	""                              -> entire document
//
// # Example
//
//	global, err := config.Load[settings.GlobalSettings](yamlparser.NewParser(), fetcher, "umbracoConfiguration:global")
package config
