// Package resource provides a DataFetcher that reads a named resource from an fs.FS.
//
// It is meant for settings documents shipped inside the binary with go:embed, such as the
// fixture behind the default test settings, but works with any fs.FS (os.DirFS, fstest.MapFS).
// A missing resource is reported as config.ErrResourceNotFound.
package resource
