// Package settingstest provides default settings for tests with explicit cache lifecycle.
//
// An Override caches one default instance per settings kind (global, hosting, root). Each cache
// cell is Empty until first access, then Populated with exactly one instance until Reset.
//
//	func TestSomething(t *testing.T) {
//	    defaults := settingstest.Attach(t) // Reset runs in t.Cleanup
//
//	    global := defaults.GlobalSettings()
//	    root, err := defaults.UmbracoSettings()
//	    ...
//	}
//
// The root settings come from a known-good settings document embedded in this package. Tests of
// other fixtures can point an Override at any fs.FS with WithResource.
package settingstest
