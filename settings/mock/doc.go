// Package mock builds synthetic settings sections for tests.
//
// Build allocates a section and applies setups in order; fields no setup touches keep their zero
// value. The canonical builders (GlobalSettings, HostingSettings, UmbracoSettings,
// WebRoutingSettings, RequestHandlerSettings) start from fixed defaults and accept setups that
// override them:
//
//	global := mock.GlobalSettings(func(s *settings.GlobalSettings) {
//	    s.UseHTTPS = true
//	})
//
// Builders never read a settings document and return a new value on every call.
package mock
