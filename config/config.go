package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrResourceNotFound is returned by DataFetcher implementations when the configuration
// resource they point at does not exist. It is not retried: a missing resource is a broken
// deployment or a broken test fixture.
var ErrResourceNotFound = errors.New("configuration resource not found")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "umbracoConfiguration:settings" navigates to config["umbracoConfiguration"]["settings"]
//   - "umbracoConfiguration:settings:content" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration
// data into target. Every call of the returned function fills the same target.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		err := fill(target, parser, fetcher, path)
		if err != nil {
			return nil, err
		}

		return target, nil
	}
}

// Load reads, parses, sets defaults, and validates configuration data into a newly allocated T.
func Load[T any](parser Parser, fetcher DataFetcher, path string) (*T, error) {
	target := new(T)

	err := fill(target, parser, fetcher, path)
	if err != nil {
		return nil, err
	}

	return target, nil
}

func fill[T any](target *T, parser Parser, fetcher DataFetcher, path string) error {
	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return fmt.Errorf("parsing error: %w", err)
	}

	targetDefaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Debug("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := any(target).(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}
