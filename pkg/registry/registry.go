package registry

import (
	"slices"
	"strings"
	"sync"

	"github.com/arthur-debert/confc/pkg/errors"
)

// Registry stores items under a canonical name plus optional aliases
type Registry[T any] struct {
	mu        sync.RWMutex
	items     map[string]T
	canonical map[string]string
}

// New creates an empty Registry
func New[T any]() *Registry[T] {
	return &Registry[T]{
		items:     make(map[string]T),
		canonical: make(map[string]string),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds an item under name and every alias. Nothing is registered
// when any of the keys is empty or already taken.
func (r *Registry[T]) Register(name string, item T, aliases ...string) error {
	keys := append([]string{name}, aliases...)
	for i, k := range keys {
		keys[i] = normalize(k)
		if keys[i] == "" {
			return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range keys {
		if _, exists := r.items[k]; exists {
			return errors.Newf(errors.ErrAlreadyExists, "%q is already registered", k).WithDetail("name", k)
		}
	}
	for _, k := range keys {
		r.items[k] = item
		r.canonical[k] = keys[0]
	}
	return nil
}

// MustRegister is Register for package initialization
func (r *Registry[T]) MustRegister(name string, item T, aliases ...string) {
	if err := r.Register(name, item, aliases...); err != nil {
		panic(err)
	}
}

// Get retrieves an item by name or alias
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[normalize(name)]
	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "%q is not registered", name).WithDetail("name", name)
	}
	return item, nil
}

// Has reports whether name or alias is registered
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[normalize(name)]
	return ok
}

// Names returns the canonical names in sorted order
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for k, c := range r.canonical {
		if k == c {
			names = append(names, c)
		}
	}
	slices.Sort(names)
	return names
}

// Count returns the number of canonical entries
func (r *Registry[T]) Count() int {
	return len(r.Names())
}
