package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Validate checks the whole declared dependency graph: every dependency must be registered and
// the graph must be acyclic.
func (r *Registry) Validate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.validateLocked(nil)
}

// validateFrom checks the part of the graph reachable from typ. A defect elsewhere in the graph
// does not fail the resolution of typ.
func (r *Registry) validateFrom(typ reflect.Type) error {
	r.mu.RLock()
	validated := r.validated
	r.mu.RUnlock()

	if validated {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[typ]; !ok {
		return nil
	}

	return r.validateLocked([]reflect.Type{typ})
}

// validateLocked checks the whole graph and marks the registry validated when it passes.
// Otherwise, with roots given, only the subgraph reachable from roots decides the result.
func (r *Registry) validateLocked(roots []reflect.Type) error {
	if r.validated {
		return nil
	}

	err := checkGraph(r.entries, nil)
	if err == nil {
		r.validated = true

		return nil
	}

	if roots != nil {
		err = checkGraph(r.entries, roots)
		if err == nil {
			return nil
		}
	}

	r.logger.Error("composition graph rejected", slog.Any("error", err))

	return err
}

// checkGraph walks roots depth first, or every entry in a deterministic order when roots is nil.
// Every root must be registered.
func checkGraph(entries map[reflect.Type]*entry, roots []reflect.Type) error {
	types := roots
	if types == nil {
		types = make([]reflect.Type, 0, len(entries))
		for typ := range entries {
			types = append(types, typ)
		}

		sort.Slice(types, func(i, j int) bool {
			return types[i].String() < types[j].String()
		})
	}

	states := make(map[reflect.Type]visitState, len(entries))

	var path []reflect.Type

	var visit func(typ reflect.Type) error

	visit = func(typ reflect.Type) error {
		switch states[typ] {
		case visited:
			return nil
		case visiting:
			return cycleError(path, typ)
		case unvisited:
		}

		e, ok := entries[typ]
		if !ok {
			return fmt.Errorf("%w: %s (required by %s)", ErrNotRegistered, typ, path[len(path)-1])
		}

		states[typ] = visiting
		path = append(path, typ)

		for _, dep := range e.deps {
			err := visit(dep)
			if err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		states[typ] = visited

		return nil
	}

	for _, typ := range types {
		err := visit(typ)
		if err != nil {
			return err
		}
	}

	return nil
}

func cycleError(path []reflect.Type, repeated reflect.Type) *CircularDependencyError {
	start := 0

	for i, typ := range path {
		if typ == repeated {
			start = i

			break
		}
	}

	names := make([]string, 0, len(path)-start+1)
	for _, typ := range path[start:] {
		names = append(names, typ.String())
	}

	names = append(names, repeated.String())

	return &CircularDependencyError{Path: names}
}
