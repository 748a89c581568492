package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyResolved is returned when a type is registered after it has been resolved.
	ErrAlreadyResolved = errors.New("registry: type already resolved")
	// ErrCircularDependency is returned when the declared factory graph contains a cycle.
	ErrCircularDependency = errors.New("registry: circular dependency")
	// ErrNotRegistered is returned when a type or one of its dependencies has no factory.
	ErrNotRegistered = errors.New("registry: type not registered")
	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("registry: factory must not be nil")
	// ErrTypeMismatch is returned when a factory result does not match its registered type.
	ErrTypeMismatch = errors.New("registry: resolved value has unexpected type")
)

// AlreadyResolvedError reports a registration attempted after Type was resolved.
type AlreadyResolvedError struct {
	Type string
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("registry: cannot register %s: type already resolved", e.Type)
}

// Unwrap returns ErrAlreadyResolved.
func (e *AlreadyResolvedError) Unwrap() error {
	return ErrAlreadyResolved
}

// CircularDependencyError reports a dependency cycle. Path starts and ends with the same type.
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	return "registry: circular dependency: " + strings.Join(e.Path, " -> ")
}

// Unwrap returns ErrCircularDependency.
func (e *CircularDependencyError) Unwrap() error {
	return ErrCircularDependency
}
