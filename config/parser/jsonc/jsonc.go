package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidJSON is returned when the data is not valid JSON after comments are stripped.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrPathNotFound is returned when the specified path is not found in the document.
	ErrPathNotFound = errors.New("path not found")
)

// Parser implements config.Parser for JSONC settings documents.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects keys that do not map to a field of the target.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new JSONC parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{strict: false}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse strips comments from data, navigates to path and decodes the value into target.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	stripped := jsonc.ToJSON(data)
	if !gjson.ValidBytes(stripped) {
		return ErrInvalidJSON
	}

	raw := stripped

	if path != "" {
		result := gjson.GetBytes(stripped, convertToGJSONPath(path))
		if !result.Exists() {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		raw = []byte(result.Raw)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	if p.strict {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	return nil
}

// gjsonEscaper escapes characters gjson treats as path syntax.
var gjsonEscaper = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
)

// convertToGJSONPath converts a colon-separated path to a gjson path.
// Examples:
//   - "umbracoConfiguration:global" -> "umbracoConfiguration.global"
//   - "paths:~/umbraco" -> "paths.~/umbraco"
func convertToGJSONPath(path string) string {
	parts := strings.Split(path, ":")
	for i, part := range parts {
		parts[i] = gjsonEscaper.Replace(part)
	}

	return strings.Join(parts, ".")
}
