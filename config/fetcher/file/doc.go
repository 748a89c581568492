// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so every Fetch during the application
// lifetime sees the same settings document.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/settings.yaml")()
//	if errors.Is(err, config.ErrResourceNotFound) {
//	    // the settings document is missing
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - A missing file wraps config.ErrResourceNotFound
//   - A directory path wraps ErrPathIsDirectory
//   - Errors include the filepath for easier debugging
package file
