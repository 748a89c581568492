package mock

import "github.com/0xalexb/hjarta-settings/settings"

// Setup sets fields of a section under construction.
type Setup[T any] func(*T)

// Build returns a new T with every setup applied in order.
func Build[T any](setups ...Setup[T]) *T {
	value := new(T)

	for _, setup := range setups {
		if setup != nil {
			setup(value)
		}
	}

	return value
}

// GlobalSettings returns global settings with the canonical test defaults.
func GlobalSettings(setups ...Setup[settings.GlobalSettings]) *settings.GlobalSettings {
	return Build(prepend(func(s *settings.GlobalSettings) {
		s.ConfigurationStatus = settings.ConfigurationVersion
		s.UseHTTPS = false
		s.HideTopLevelNodeFromPath = false
		s.Path = settings.ResolveURL("~/umbraco")
		s.TimeOutInMinutes = 20
		s.DefaultUILanguage = "en"
		s.ReservedPaths = settings.StaticReservedPaths + "~/umbraco"
		s.ReservedUrls = settings.StaticReservedUrls
		s.UmbracoPath = "~/umbraco"
		s.UmbracoMediaPath = "~/media"
		s.UmbracoCSSPath = "~/css"
		s.UmbracoScriptsPath = "~/scripts"
	}, setups)...)
}

// HostingSettings returns hosting settings with the canonical test defaults.
func HostingSettings(setups ...Setup[settings.HostingSettings]) *settings.HostingSettings {
	return Build(prepend(func(s *settings.HostingSettings) {
		s.LocalTempStorageLocation = settings.LocalTempStorageEnvironmentTemp
		s.DebugMode = false
	}, setups)...)
}

// WebRoutingSettings returns web routing settings with the canonical test defaults.
func WebRoutingSettings(setups ...Setup[settings.WebRoutingSettings]) *settings.WebRoutingSettings {
	return Build(prepend(func(s *settings.WebRoutingSettings) {
		s.DisableRedirectURLTracking = false
		s.InternalRedirectPreservesTemplate = false
		s.URLProviderMode = settings.URLModeAuto
	}, setups)...)
}

// RequestHandlerSettings returns request handler settings with the canonical test defaults.
func RequestHandlerSettings(setups ...Setup[settings.RequestHandlerSettings]) *settings.RequestHandlerSettings {
	return Build(prepend(func(s *settings.RequestHandlerSettings) {
		s.AddTrailingSlash = true
		s.ConvertUrlsToASCII = false
		s.TryConvertUrlsToASCII = false
		s.CharCollection = settings.DefaultCharReplacements()
	}, setups)...)
}

// UmbracoSettings returns a root section whose sub-sections are all present. Content carries the
// default image file types and autofill properties; both password configurations are allocated
// but otherwise zero, so tests set only the rules they care about.
func UmbracoSettings(setups ...Setup[settings.UmbracoSection]) *settings.UmbracoSection {
	return Build(prepend(func(s *settings.UmbracoSection) {
		s.Content = &settings.ContentSection{
			ImageFileTypes:          settings.DefaultImageFileTypes(),
			ImageAutoFillProperties: settings.DefaultImageAutoFillProperties(),
		}
		s.Security = &settings.SecuritySection{
			UserPasswordConfiguration:   &settings.PasswordConfiguration{},
			MemberPasswordConfiguration: &settings.PasswordConfiguration{},
		}
		s.RequestHandler = &settings.RequestHandlerSettings{}
		s.Logging = &settings.LoggingSettings{}
		s.WebRouting = &settings.WebRoutingSettings{}
	}, setups)...)
}

func prepend[T any](defaults Setup[T], setups []Setup[T]) []Setup[T] {
	return append([]Setup[T]{defaults}, setups...)
}
