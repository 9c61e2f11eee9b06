package dossier

import (
	"context"
	"sort"
	"sync"
)

// Registry maps class names to loaders for one family.
//
// A registry is populated once during application startup and then sealed.
// Lookups take a read lock and never mutate the table; writers are
// serialized. Registries are explicit values, so independent registries
// (one per test, for example) never share state.
type Registry[T any] struct {
	family Family

	mu      sync.RWMutex
	loaders map[string]Loader[T]
	sealed  bool
}

// NewRegistry creates an empty registry for the given family.
func NewRegistry[T any](family Family) *Registry[T] {
	return &Registry[T]{
		family:  family,
		loaders: make(map[string]Loader[T]),
	}
}

// Family returns the family this registry serves.
func (r *Registry[T]) Family() Family {
	return r.family
}

// Register associates name with loader, replacing any previous mapping.
// Registering the same name again is idempotent. Names are case-sensitive.
func (r *Registry[T]) Register(name string, loader Loader[T]) error {
	if name == "" {
		return ErrEmptyClassName
	}
	if loader == nil {
		return ErrNilLoader
	}

	r.mu.Lock()
	if r.sealed {
		r.mu.Unlock()
		return ErrRegistrySealed
	}
	r.loaders[name] = loader
	r.mu.Unlock()

	emitRegistered(context.Background(), r.family, name)
	return nil
}

// MustRegister is like Register but panics on error.
// Intended for startup wiring where a failure is a programming error.
func (r *Registry[T]) MustRegister(name string, loader Loader[T]) {
	if err := r.Register(name, loader); err != nil {
		panic("dossier: register " + string(r.family) + " class " + name + ": " + err.Error())
	}
}

// Get returns the loader registered under name.
func (r *Registry[T]) Get(name string) (Loader[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loader, ok := r.loaders[name]
	return loader, ok
}

// Seal freezes the registry. Subsequent calls to Register fail with
// ErrRegistrySealed. Sealing twice is a no-op.
func (r *Registry[T]) Seal() {
	r.mu.Lock()
	if r.sealed {
		r.mu.Unlock()
		return
	}
	r.sealed = true
	count := len(r.loaders)
	r.mu.Unlock()

	emitSealed(context.Background(), r.family, count)
}

// Sealed reports whether Seal has been called.
func (r *Registry[T]) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Names returns the registered class names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loaders)
}
