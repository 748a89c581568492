// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. Colon-separated paths
// ("umbracoConfiguration:global") are converted to YAML path format
// ("$.umbracoConfiguration.global"), the node at that path is read and then decoded into the
// target. WithStrict makes unknown keys an error.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var global settings.GlobalSettings
//	err := parser.Parse(data, &global, "umbracoConfiguration:global")
package yaml
