package manifest

import (
	"fmt"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Kind says where a module lives.
type Kind string

const (
	// KindVendor is a third-party browser library shipped with the assets.
	KindVendor Kind = "vendor"
	// KindClient is app code that runs only in the browser.
	KindClient Kind = "client"
	// KindFeature has server routes backing it.
	KindFeature Kind = "feature"
)

// Module is a named, independently loadable unit of the dashboard.
type Module struct {
	Name string
	Kind Kind
	// View is the client route the module renders, e.g. "/wallets".
	// Empty for modules without a page of their own.
	View string
	// Mount attaches the module's server routes. Nil for vendor and client
	// modules.
	Mount func(r chi.Router)
}

// Registry is the set of modules the host knows how to load.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds m. Registering the same name twice is an error.
func (r *Registry) Register(m Module) error {
	if m.Name == "" {
		return ErrEmptyModuleName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[m.Name]; ok {
		return fmt.Errorf("%w: %q already registered", ErrDuplicateModule, m.Name)
	}
	r.modules[m.Name] = m
	return nil
}

// MustRegister is Register for package-level wiring; it panics on error.
func (r *Registry) MustRegister(mods ...Module) {
	for _, m := range mods {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the module registered under name.
func (r *Registry) Lookup(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// Resolve maps every manifest entry to its module, in manifest order.
// The first unknown name fails the whole resolution.
func (r *Registry) Resolve(m Manifest) ([]Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Module, 0, len(m))
	for _, name := range m {
		mod, ok := r.modules[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedModule, name)
		}
		out = append(out, mod)
	}
	return out, nil
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
