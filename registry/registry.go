package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/0xalexb/hjarta-settings/lazy"

	"github.com/google/uuid"
)

// outcome is what an entry caches: the factory result including its error.
type outcome struct {
	value any
	err   error
}

type entry struct {
	typ      reflect.Type
	deps     []reflect.Type
	build    func(args []any) (any, error)
	cell     lazy.Value[outcome]
	resolved atomic.Bool
}

// Registry is a container of lazily built singletons keyed by type.
// It is safe for concurrent use.
type Registry struct {
	id        string
	logger    *slog.Logger
	mu        sync.RWMutex
	entries   map[reflect.Type]*entry
	validated bool
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New().String()

	return &Registry{
		id:        id,
		logger:    logger.With(slog.String("registry_id", id)),
		mu:        sync.RWMutex{},
		entries:   make(map[reflect.Type]*entry),
		validated: true,
	}
}

// ID returns the unique identifier of this registry. Singletons are unique per ID.
func (r *Registry) ID() string {
	return r.id
}

// RegisterUnique registers a factory for T without dependencies.
func RegisterUnique[T any](r *Registry, factory func() (T, error)) error {
	if factory == nil {
		return ErrNilFactory
	}

	return r.register(reflect.TypeFor[T](), nil, func(_ []any) (any, error) {
		return factory()
	})
}

// RegisterUnique1 registers a factory for T that depends on A.
func RegisterUnique1[T, A any](r *Registry, factory func(A) (T, error)) error {
	if factory == nil {
		return ErrNilFactory
	}

	deps := []reflect.Type{reflect.TypeFor[A]()}

	return r.register(reflect.TypeFor[T](), deps, func(args []any) (any, error) {
		return factory(arg[A](args[0]))
	})
}

// RegisterUnique2 registers a factory for T that depends on A and B.
func RegisterUnique2[T, A, B any](r *Registry, factory func(A, B) (T, error)) error {
	if factory == nil {
		return ErrNilFactory
	}

	deps := []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}

	return r.register(reflect.TypeFor[T](), deps, func(args []any) (any, error) {
		return factory(arg[A](args[0]), arg[B](args[1]))
	})
}

// Supply registers an already built value for T.
func Supply[T any](r *Registry, value T) error {
	return RegisterUnique(r, func() (T, error) {
		return value, nil
	})
}

// Resolve returns the singleton for T, invoking its factory on first use.
func Resolve[T any](r *Registry) (T, error) {
	var zero T

	typ := reflect.TypeFor[T]()

	value, err := r.resolve(typ)
	if err != nil {
		return zero, err
	}

	if value == nil {
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, typ, value)
	}

	return typed, nil
}

// MustResolve is like Resolve but panics on error. Intended for startup code.
func MustResolve[T any](r *Registry) T {
	value, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}

	return value
}

// IsResolved reports whether Resolve has been called for T on this registry.
func IsResolved[T any](r *Registry) bool {
	r.mu.RLock()
	e, ok := r.entries[reflect.TypeFor[T]()]
	r.mu.RUnlock()

	return ok && e.resolved.Load()
}

// Registered returns the names of all registered types in lexicographic order.
func (r *Registry) Registered() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))

	for typ := range r.entries {
		names = append(names, typ.String())
	}
	r.mu.RUnlock()

	sort.Strings(names)

	return names
}

func (r *Registry) register(typ reflect.Type, deps []reflect.Type, build func([]any) (any, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[typ]; ok && existing.resolved.Load() {
		r.logger.Error("registration after resolution", slog.String("type", typ.String()))

		return &AlreadyResolvedError{Type: typ.String()}
	}

	r.entries[typ] = &entry{
		typ:   typ,
		deps:  deps,
		build: build,
	}
	r.validated = false

	r.logger.Debug("factory registered", slog.String("type", typ.String()), slog.Int("dependencies", len(deps)))

	return nil
}

func (r *Registry) resolve(typ reflect.Type) (any, error) {
	r.mu.RLock()
	e, ok := r.entries[typ]
	r.mu.RUnlock()

	if ok {
		if cached, populated := e.cell.Peek(); populated {
			return cached.value, cached.err
		}
	}

	err := r.validateFrom(typ)
	if err != nil {
		return nil, err
	}

	// The flag is set under the lock register takes, so a resolved entry is never replaced.
	r.mu.RLock()
	e, ok = r.entries[typ]
	if ok {
		e.resolved.Store(true)
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, typ)
	}

	result, _ := e.cell.Get(func() (outcome, error) {
		return r.build(e), nil
	})

	return result.value, result.err
}

func (r *Registry) build(e *entry) outcome {
	args := make([]any, len(e.deps))

	for i, dep := range e.deps {
		value, err := r.resolve(dep)
		if err != nil {
			return outcome{value: nil, err: fmt.Errorf("resolving %s for %s: %w", dep, e.typ, err)}
		}

		args[i] = value
	}

	value, err := e.build(args)
	if err != nil {
		r.logger.Error("factory failed", slog.String("type", e.typ.String()), slog.Any("error", err))

		return outcome{value: nil, err: fmt.Errorf("building %s: %w", e.typ, err)}
	}

	r.logger.Debug("singleton built", slog.String("type", e.typ.String()))

	return outcome{value: value, err: nil}
}

// arg converts a resolved dependency to its declared parameter type.
// A nil value yields the zero value of A.
func arg[A any](value any) A {
	typed, _ := value.(A)

	return typed
}
