package settings

import (
	"fmt"

	"github.com/0xalexb/hjarta-settings/config"
	"github.com/0xalexb/hjarta-settings/registry"
)

// Document paths of the sections loaded by ComposeRoot.
const (
	RootPath    = "umbracoConfiguration:settings"
	GlobalPath  = "umbracoConfiguration:global"
	HostingPath = "umbracoConfiguration:hosting"
)

// Compose registers the derivations of the Content and Security sections from the root
// UmbracoSection. It builds no values; the projections run on first resolution.
//
// Composing again before either section was resolved replaces the registrations. Composing after
// resolution fails with registry.ErrAlreadyResolved.
func Compose(reg *registry.Registry) error {
	err := derive(reg, "content", func(root *UmbracoSection) *ContentSection { return root.Content })
	if err != nil {
		return err
	}

	return derive(reg, "security", func(root *UmbracoSection) *SecuritySection { return root.Security })
}

// ComposeAll runs Compose and also registers the RequestHandler, WebRouting and Logging
// derivations.
func ComposeAll(reg *registry.Registry) error {
	err := Compose(reg)
	if err != nil {
		return err
	}

	err = derive(reg, "requestHandler", func(root *UmbracoSection) *RequestHandlerSettings { return root.RequestHandler })
	if err != nil {
		return err
	}

	err = derive(reg, "webRouting", func(root *UmbracoSection) *WebRoutingSettings { return root.WebRouting })
	if err != nil {
		return err
	}

	return derive(reg, "logging", func(root *UmbracoSection) *LoggingSettings { return root.Logging })
}

// ComposeRoot registers loaders for the root, global and hosting sections. Each reads its part
// of the document from fetcher through config.Load on first resolution.
func ComposeRoot(reg *registry.Registry, parser config.Parser, fetcher config.DataFetcher) error {
	err := registerLoader[UmbracoSection](reg, parser, fetcher, RootPath)
	if err != nil {
		return err
	}

	err = registerLoader[GlobalSettings](reg, parser, fetcher, GlobalPath)
	if err != nil {
		return err
	}

	return registerLoader[HostingSettings](reg, parser, fetcher, HostingPath)
}

func registerLoader[T any](reg *registry.Registry, parser config.Parser, fetcher config.DataFetcher, path string) error {
	err := registry.RegisterUnique(reg, func() (*T, error) {
		return config.Load[T](parser, fetcher, path)
	})
	if err != nil {
		return fmt.Errorf("composing %s: %w", path, err)
	}

	return nil
}

func derive[T any](reg *registry.Registry, name string, project func(*UmbracoSection) *T) error {
	err := registry.RegisterUnique1(reg, func(root *UmbracoSection) (*T, error) {
		if root == nil {
			return nil, fmt.Errorf("%w: settings", ErrSectionMissing)
		}

		section := project(root)
		if section == nil {
			return nil, fmt.Errorf("%w: %s", ErrSectionMissing, name)
		}

		return section, nil
	})
	if err != nil {
		return fmt.Errorf("composing %s section: %w", name, err)
	}

	return nil
}
