// settingscheck loads a settings document the way an application does and prints the composed
// sections. It exits non-zero when the document is missing, cannot be parsed, or fails
// validation, which makes it usable as a deployment gate.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"go.uber.org/fx"

	di "github.com/0xalexb/hjarta-settings"
	"github.com/0xalexb/hjarta-settings/logging"
	"github.com/0xalexb/hjarta-settings/settings"
)

var (
	errMissingConfig = errors.New("--config is required")
	errUnknownOutput = errors.New("unknown output format")
	errUnknownFormat = errors.New("unknown log format")
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// composed holds every section the settings module provides.
type composed struct {
	Global         *settings.GlobalSettings         `json:"global"         yaml:"global"`
	Hosting        *settings.HostingSettings        `json:"hosting"        yaml:"hosting"`
	Content        *settings.ContentSection         `json:"content"        yaml:"content"`
	Security       *settings.SecuritySection        `json:"security"       yaml:"security"`
	RequestHandler *settings.RequestHandlerSettings `json:"requestHandler" yaml:"requestHandler"`
	WebRouting     *settings.WebRoutingSettings     `json:"webRouting"     yaml:"webRouting"`
	Logging        *settings.LoggingSettings        `json:"logging"        yaml:"logging"`
}

type sectionParams struct {
	fx.In

	Global         *settings.GlobalSettings
	Hosting        *settings.HostingSettings
	Content        *settings.ContentSection
	Security       *settings.SecuritySection
	RequestHandler *settings.RequestHandlerSettings
	WebRouting     *settings.WebRoutingSettings
	Logging        *settings.LoggingSettings
}

type arguments struct {
	config    string
	strict    bool
	logLevel  string
	logFormat string
	output    string
	urls      []string
}

func run(args []string, stdout, stderr io.Writer) error {
	var arguments arguments

	flagSet := pflag.NewFlagSet("settingscheck", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&arguments.config, "config", "c", "", "settings document (.yaml, .yml, .json or .jsonc)")
	flagSet.BoolVar(&arguments.strict, "strict", false, "reject keys that do not map to a setting")
	flagSet.StringVar(&arguments.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.StringVar(&arguments.logFormat, "log-format", "text", "log format: json or text")
	flagSet.StringVarP(&arguments.output, "output", "o", "yaml", "output format: yaml or json")
	flagSet.StringSliceVar(&arguments.urls, "reserved", nil, "request urls to check against the reserved paths and urls")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Bool("version", false, "print version information")

	err := flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)

			return nil
		}

		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stderr)

		return nil
	}

	if version, _ := flagSet.GetBool("version"); version {
		fmt.Fprintf(stdout, "settingscheck %s (settings %s, compiled %s)\n", di.Version, di.SettingsVersion, di.CompiledAt)

		return nil
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	if arguments.config == "" {
		return errMissingConfig
	}

	err = validateArguments(arguments)
	if err != nil {
		return err
	}

	sections, err := load(arguments, stderr)
	if err != nil {
		return err
	}

	err = write(stdout, arguments.output, sections)
	if err != nil {
		return err
	}

	for _, url := range arguments.urls {
		fmt.Fprintf(stdout, "reserved %s: %t\n", url, sections.Global.IsReservedPathOrURL(url))
	}

	return nil
}

func validateArguments(arguments arguments) error {
	_, err := logging.ParseLevel(arguments.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	switch strings.ToLower(arguments.logFormat) {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("--log-format: %w: %q", errUnknownFormat, arguments.logFormat)
	}

	switch strings.ToLower(arguments.output) {
	case "yaml", "yml", "json":
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, arguments.output)
	}

	return nil
}

func load(arguments arguments, logOutput io.Writer) (*composed, error) {
	moduleOpts := []settings.Option{settings.WithDocument(arguments.config)}
	if arguments.strict {
		moduleOpts = append(moduleOpts, settings.WithStrict())
	}

	var sections composed

	app := di.NewApp(
		di.WithLogLevel(arguments.logLevel),
		di.WithLogFormat(arguments.logFormat),
		di.WithLogOutput(logOutput),
		di.WithSettings(moduleOpts...),
		di.WithModules(fx.Invoke(func(params sectionParams) {
			sections = composed{
				Global:         params.Global,
				Hosting:        params.Hosting,
				Content:        params.Content,
				Security:       params.Security,
				RequestHandler: params.RequestHandler,
				WebRouting:     params.WebRouting,
				Logging:        params.Logging,
			}
		})),
	)

	err := app.Start()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", arguments.config, err)
	}

	err = app.Stop()
	if err != nil {
		return nil, err
	}

	return &sections, nil
}

func write(w io.Writer, format string, sections *composed) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err := yaml.Marshal(sections)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		_, err = w.Write(data)

		return err
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(sections)
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, format)
	}
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `settingscheck loads a settings document and prints the composed sections.

Usage:
  settingscheck --config FILE [flags]

Examples:
  # Print every section of a YAML document
  settingscheck --config umbraco.yaml

  # Fail on unknown keys and print JSON
  settingscheck --config umbraco.jsonc --strict --output json

  # Check request urls against the reserved paths
  settingscheck --config umbraco.yaml --reserved /umbraco/login,/blog

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
