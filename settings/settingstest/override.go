package settingstest

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"

	"github.com/0xalexb/hjarta-settings/config"
	"github.com/0xalexb/hjarta-settings/config/fetcher/resource"
	yamlparser "github.com/0xalexb/hjarta-settings/config/parser/yaml"
	"github.com/0xalexb/hjarta-settings/lazy"
	"github.com/0xalexb/hjarta-settings/settings"
	"github.com/0xalexb/hjarta-settings/settings/mock"
)

// Location of the default root settings.
const (
	DefaultResource     = "resources/umbracosettings.yaml"
	DefaultResourcePath = "umbracoConfiguration:defaultSettings"
)

//go:embed resources/umbracosettings.yaml
var resources embed.FS

// Options holds configuration settings for an Override.
type Options struct {
	FS           fs.FS
	Resource     string
	ResourcePath string
}

// Option defines a function type for applying Override options.
type Option func(*Options)

// WithResource loads the root settings from name in fsys instead of the embedded document.
// The document must contain the section at DefaultResourcePath.
func WithResource(fsys fs.FS, name string) Option {
	return func(opts *Options) {
		opts.FS = fsys
		opts.Resource = name
	}
}

// WithResourcePath changes the document path of the root settings section.
func WithResourcePath(path string) Option {
	return func(opts *Options) {
		opts.ResourcePath = path
	}
}

// Override holds the default settings instances handed to tests.
// It is safe for use by parallel tests; each kind is built by one caller at a time.
type Override struct {
	options  Options
	global   lazy.Value[*settings.GlobalSettings]
	hosting  lazy.Value[*settings.HostingSettings]
	umbraco  lazy.Value[*settings.UmbracoSection]
	fetcher  *resource.Fetcher
	yamlOpts []yamlparser.Option
}

// New creates an Override with every cache cell Empty.
func New(opts ...Option) *Override {
	options := Options{
		FS:           resources,
		Resource:     DefaultResource,
		ResourcePath: DefaultResourcePath,
	}

	for _, apply := range opts {
		apply(&options)
	}

	return &Override{
		options:  options,
		fetcher:  resource.NewFetcher(options.FS, options.Resource),
		yamlOpts: []yamlparser.Option{yamlparser.WithStrict()},
	}
}

// Attach creates an Override whose caches are reset when t finishes.
func Attach(t testing.TB, opts ...Option) *Override {
	t.Helper()

	override := New(opts...)
	t.Cleanup(override.Reset)

	return override
}

// GlobalSettings returns the cached default global settings, building them on first use.
func (o *Override) GlobalSettings() *settings.GlobalSettings {
	global, _ := o.global.Get(func() (*settings.GlobalSettings, error) {
		return mock.GlobalSettings(), nil
	})

	return global
}

// HostingSettings returns the cached default hosting settings, building them on first use.
func (o *Override) HostingSettings() *settings.HostingSettings {
	hosting, _ := o.hosting.Get(func() (*settings.HostingSettings, error) {
		return mock.HostingSettings(), nil
	})

	return hosting
}

// UmbracoSettings returns the cached default root settings, loading them from the settings
// resource on first use. A missing resource fails with config.ErrResourceNotFound; the failure is
// not cached, and the cell stays Empty.
func (o *Override) UmbracoSettings() (*settings.UmbracoSection, error) {
	return o.umbraco.Get(func() (*settings.UmbracoSection, error) {
		root, err := config.Load[settings.UmbracoSection](
			yamlparser.NewParser(o.yamlOpts...), o.fetcher, o.options.ResourcePath,
		)
		if err != nil {
			return nil, fmt.Errorf("default settings from %s: %w", o.fetcher.Name(), err)
		}

		return root, nil
	})
}

// MustUmbracoSettings is like UmbracoSettings but fails t on error.
func (o *Override) MustUmbracoSettings(t testing.TB) *settings.UmbracoSection {
	t.Helper()

	root, err := o.UmbracoSettings()
	if err != nil {
		t.Fatalf("loading default settings: %v", err)
	}

	return root
}

// State reports the cache state of every kind, keyed by section name.
func (o *Override) State() map[string]lazy.State {
	return map[string]lazy.State{
		(*settings.GlobalSettings)(nil).SectionName():  o.global.State(),
		(*settings.HostingSettings)(nil).SectionName(): o.hosting.State(),
		(*settings.UmbracoSection)(nil).SectionName():  o.umbraco.State(),
	}
}

// Reset empties every cache so the next access builds new instances.
func (o *Override) Reset() {
	o.ResetGlobal()
	o.ResetHosting()
	o.ResetUmbraco()
}

// ResetGlobal empties the global settings cache.
func (o *Override) ResetGlobal() {
	o.global.Reset()
}

// ResetHosting empties the hosting settings cache.
func (o *Override) ResetHosting() {
	o.hosting.Reset()
}

// ResetUmbraco empties the root settings cache.
func (o *Override) ResetUmbraco() {
	o.umbraco.Reset()
}
