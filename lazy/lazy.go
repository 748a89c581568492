package lazy

import (
	"sync"
	"sync/atomic"
)

// State describes whether a Value holds a built result.
type State int

const (
	// Empty means the next Get runs the builder.
	Empty State = iota
	// Populated means Get returns the cached result without building.
	Populated
)

// String returns the state name.
func (s State) String() string {
	if s == Populated {
		return "populated"
	}

	return "empty"
}

// Value is a lazily built, resettable cache cell. The zero value is an Empty cell ready for use.
// A Value must not be copied after first use.
type Value[T any] struct {
	mu   sync.Mutex
	cell atomic.Pointer[T]
}

// Get returns the cached value, building it with build if the cell is Empty.
// Only a successful build populates the cell; an error is returned to the caller and the cell
// stays Empty, so the next Get builds again.
func (v *Value[T]) Get(build func() (T, error)) (T, error) {
	if cached := v.cell.Load(); cached != nil {
		return *cached, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if cached := v.cell.Load(); cached != nil {
		return *cached, nil
	}

	value, err := build()
	if err != nil {
		var zero T

		return zero, err
	}

	v.cell.Store(&value)

	return value, nil
}

// Peek returns the cached value without building. The boolean is false when the cell is Empty.
func (v *Value[T]) Peek() (T, bool) {
	if cached := v.cell.Load(); cached != nil {
		return *cached, true
	}

	var zero T

	return zero, false
}

// State reports whether the cell is Empty or Populated.
func (v *Value[T]) State() State {
	if v.cell.Load() != nil {
		return Populated
	}

	return Empty
}

// Reset returns the cell to Empty. It waits for an in-flight build to finish, so the value that
// build produces is discarded rather than surviving the reset. Reset is idempotent.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cell.Store(nil)
}
