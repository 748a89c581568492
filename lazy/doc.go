// Package lazy provides a cache cell that builds its value on first access.
//
// A Value is either Empty or Populated. Get on an Empty cell runs the builder while holding the
// cell's own mutex, so concurrent first callers of one cell share a single build while distinct
// cells never block each other. Reset returns the cell to Empty.
//
// Usage:
//
//	var cell lazy.Value[*Settings]
//	cfg, err := cell.Get(loadSettings)
//	cell.Reset() // next Get calls loadSettings again
package lazy
