// Package jsonc provides a JSON-with-comments parser implementation for the config package.
//
// Comments (// and /* */) and trailing commas are stripped with github.com/tidwall/jsonc,
// the colon-separated path is resolved with github.com/tidwall/gjson and the selected value is
// decoded with encoding/json.
//
// Usage:
//
//	parser := jsonc.NewParser()
//	var hosting settings.HostingSettings
//	err := parser.Parse(data, &hosting, "umbracoConfiguration:hosting")
package jsonc
