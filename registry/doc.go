// Package registry provides a composition registry of lazily built, per-container singletons.
//
// Factories are registered per result type and declare their dependencies as typed parameters:
//
//	reg := registry.New()
//	_ = registry.RegisterUnique(reg, loadRootSettings)
//	_ = registry.RegisterUnique1(reg, func(root *settings.UmbracoSection) (*settings.ContentSection, error) {
//	    return root.Content, nil
//	})
//
//	content, err := registry.Resolve[*settings.ContentSection](reg)
//
// # Lifecycle
//
// Registering a type again replaces the previous factory as long as the type has not been
// resolved. Once Resolve has been called for a type, registering it again fails with
// ErrAlreadyResolved.
//
// Before building a type, the registry validates the part of the declared graph reachable from
// it: missing dependencies fail with ErrNotRegistered and cycles fail with ErrCircularDependency.
// No factory runs on a graph that failed validation. A defect among unrelated types does not
// affect the type being resolved, and an already built singleton is always returned from its
// cache. Validate checks the whole graph.
//
// # Concurrency
//
// Every entry has its own guard. Concurrent first resolutions of one type run its factory exactly
// once and all callers receive the same result. Resolving unrelated types never serializes.
// A factory error is cached with the entry: the factory is invoked at most once per registry.
package registry
