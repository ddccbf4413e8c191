package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultAlias is the reserved name that resolves to the default entry.
const DefaultAlias = "default"

var (
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("name already registered")
	// ErrNotFound is returned when a name is not registered.
	ErrNotFound = errors.New("not registered")
	// ErrReservedName is returned when registering under the default alias.
	ErrReservedName = errors.New("name is reserved")
)

// Registry maps names to values with a reassignable default alias.
// Each name is written once; only the default may be moved.
type Registry[T any] struct {
	mu          sync.RWMutex
	entries     map[string]T
	defaultName string
}

// New creates a new empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
	}
}

// Register adds a value under name. If asDefault is true, or if this is the
// first entry, the default alias is pointed at it.
func (r *Registry[T]) Register(name string, v T, asDefault bool) error {
	if name == DefaultAlias {
		return fmt.Errorf("%q: %w", name, ErrReservedName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrDuplicate)
	}
	r.entries[name] = v
	if asDefault || r.defaultName == "" {
		r.defaultName = name
	}
	return nil
}

// Get looks up a value by name. The default alias resolves to the default entry.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == DefaultAlias {
		name = r.defaultName
	}
	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return v, nil
}

// Default returns the default entry and its name.
func (r *Registry[T]) Default() (string, T, error) {
	r.mu.RLock()
	name := r.defaultName
	r.mu.RUnlock()

	v, err := r.Get(name)
	return name, v, err
}

// SetDefault points the default alias at an existing entry.
func (r *Registry[T]) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	r.defaultName = name
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names
}
