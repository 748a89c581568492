package resource

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/0xalexb/hjarta-settings/config"
)

// ErrNilFS is returned when no file system is given.
var ErrNilFS = errors.New("resource file system must not be nil")

// Fetcher implements config.DataFetcher for a single resource inside an fs.FS.
// Unlike the file fetcher it reads on every Fetch; embedded file systems are immutable.
type Fetcher struct {
	fsys fs.FS
	name string
}

// NewFetcher creates a Fetcher for the resource name in fsys.
func NewFetcher(fsys fs.FS, name string) *Fetcher {
	return &Fetcher{fsys: fsys, name: name}
}

// Name returns the resource name.
func (f *Fetcher) Name() string {
	return f.name
}

// Fetch reads the resource.
func (f *Fetcher) Fetch() ([]byte, error) {
	if f.fsys == nil {
		return nil, ErrNilFS
	}

	if !fs.ValidPath(f.name) {
		return nil, fmt.Errorf("resource %q: %w", f.name, fs.ErrInvalid)
	}

	data, err := fs.ReadFile(f.fsys, f.name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("resource %q: %w", f.name, config.ErrResourceNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("reading resource %q: %w", f.name, err)
	}

	return data, nil
}
