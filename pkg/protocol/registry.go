package protocol

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps canonical protocol names to handler factories.
// It is thread-safe and can be used concurrently.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// canonical normalizes a protocol name for lookup and storage.
// Lookup is case-insensitive; the stored form is lower case.
func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a factory under the given name.
// Returns an error for blank names, nil factories, or duplicates.
func (r *Registry) Register(name string, factory Factory) error {
	key := canonical(name)
	if key == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProtocol, key)
	}

	r.factories[key] = factory
	return nil
}

// New constructs a handler for the given protocol name.
// Returns ErrUnknownProtocol when no factory is registered for the
// name. Construction is a pure lookup plus factory call; no network
// I/O occurs here.
func (r *Registry) New(name string, opts map[string]any) (Handler, error) {
	key := canonical(name)

	r.mu.RLock()
	factory, exists := r.factories[key]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
	}
	return factory(opts)
}

// Has reports whether a factory is registered for the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[canonical(name)]
	return exists
}

// Names returns all registered protocol names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered factories.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// DefaultRegistry holds the built-in handlers. Handler files populate
// it from their init functions.
var DefaultRegistry = NewRegistry()

// Register adds a factory to the default registry.
func Register(name string, factory Factory) error {
	return DefaultRegistry.Register(name, factory)
}

// MustRegister registers with the default registry and panics on
// error. Intended for init-time registration of built-in handlers,
// where a failure is a programming error.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// New constructs a handler from the default registry.
func New(name string, opts map[string]any) (Handler, error) {
	return DefaultRegistry.New(name, opts)
}

// Names returns the default registry's protocol names, sorted.
func Names() []string {
	return DefaultRegistry.Names()
}
