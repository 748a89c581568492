package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-settings/config"
	filefetcher "github.com/0xalexb/hjarta-settings/config/fetcher/file"
	jsoncparser "github.com/0xalexb/hjarta-settings/config/parser/jsonc"
	yamlparser "github.com/0xalexb/hjarta-settings/config/parser/yaml"
	"github.com/0xalexb/hjarta-settings/registry"

	"go.uber.org/fx"
)

// ErrEmptyDocumentPath is returned when WithDocument is given an empty path.
var ErrEmptyDocumentPath = errors.New("settings document path must not be empty")

// ModuleConfig holds the configuration of the settings module.
type ModuleConfig struct {
	DocumentPath string
	Strict       bool
}

// Option defines a function type for configuring the settings module.
type Option func(*ModuleConfig)

// WithDocument makes the module read settings from the file at path. Files ending in .json or
// .jsonc are parsed as JSON with comments, everything else as YAML.
func WithDocument(path string) Option {
	return func(cfg *ModuleConfig) {
		cfg.DocumentPath = path
	}
}

// WithStrict rejects unknown keys in the settings document.
func WithStrict() Option {
	return func(cfg *ModuleConfig) {
		cfg.Strict = true
	}
}

type registryParams struct {
	fx.In

	Parser  config.Parser
	Fetcher config.DataFetcher
	Logger  *slog.Logger `optional:"true"`
}

// NewModule creates the Fx module that composes settings into a registry and provides
// *registry.Registry and every settings section to the container.
//
// With WithDocument the module supplies its own config.Parser and config.DataFetcher; other
// options require WithDocument. Without options both must be provided externally.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var cfg ModuleConfig

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 && cfg.DocumentPath == "" {
		return fx.Error(ErrEmptyDocumentPath)
	}

	if cfg.DocumentPath != "" {
		moduleOpts = append(moduleOpts,
			fx.Provide(
				fx.Annotate(filefetcher.NewFetcher(cfg.DocumentPath), fx.As(new(config.DataFetcher))),
			),
			fx.Provide(func() config.Parser {
				return parserFor(cfg)
			}),
		)
	}

	moduleOpts = append(moduleOpts,
		fx.Provide(newRegistry),
		fx.Provide(
			resolve[*UmbracoSection],
			resolve[*GlobalSettings],
			resolve[*HostingSettings],
			resolve[*ContentSection],
			resolve[*SecuritySection],
			resolve[*RequestHandlerSettings],
			resolve[*WebRoutingSettings],
			resolve[*LoggingSettings],
		),
	)

	return fx.Module("settings", moduleOpts...)
}

func newRegistry(params registryParams) (*registry.Registry, error) {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := registry.New(registry.WithLogger(logger))

	err := ComposeRoot(reg, params.Parser, params.Fetcher)
	if err != nil {
		return nil, err
	}

	err = ComposeAll(reg)
	if err != nil {
		return nil, err
	}

	err = reg.Validate()
	if err != nil {
		return nil, fmt.Errorf("settings composition: %w", err)
	}

	logger.Info("settings composed", slog.String("registry_id", reg.ID()), slog.Any("types", reg.Registered()))

	return reg, nil
}

func resolve[T any](reg *registry.Registry) (T, error) {
	return registry.Resolve[T](reg)
}

//nolint:ireturn // the parser is chosen by document extension
func parserFor(cfg ModuleConfig) config.Parser {
	switch strings.ToLower(filepath.Ext(cfg.DocumentPath)) {
	case ".json", ".jsonc":
		if cfg.Strict {
			return jsoncparser.NewParser(jsoncparser.WithStrict())
		}

		return jsoncparser.NewParser()
	default:
		if cfg.Strict {
			return yamlparser.NewParser(yamlparser.WithStrict())
		}

		return yamlparser.NewParser()
	}
}
