package manifest

import "sync"

// Host is the applied bootstrap state the HTTP layer reads from.
type Host struct {
	registry *Registry

	mu           sync.RWMutex
	configured   bool
	app          string
	modules      []Module
	notification NotificationOptions
	hashPrefix   string
	routes       RouteTable
}

// NewHost returns a host that resolves module names against reg.
func NewHost(reg *Registry) *Host {
	return &Host{registry: reg}
}

// Configure applies d to h. Every manifest entry must resolve; if one does
// not, the error wraps ErrUnresolvedModule and h is left untouched.
// Applying the same descriptor again replaces state rather than adding to it.
func (d Descriptor) Configure(h *Host) error {
	if err := d.Validate(); err != nil {
		return err
	}
	mods, err := h.registry.Resolve(d.requires)
	if err != nil {
		return err
	}

	var views []string
	for _, m := range mods {
		if m.View != "" {
			views = append(views, m.View)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.app = d.name
	h.modules = mods
	h.notification = d.notification
	h.hashPrefix = d.hashPrefix
	h.routes = NewRouteTable(views, d.hashPrefix, d.otherwise)
	h.configured = true
	return nil
}

// Configured reports whether a descriptor has been applied.
func (h *Host) Configured() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.configured
}

// AppName returns the applied composite identifier.
func (h *Host) AppName() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.app
}

// Modules returns the resolved modules in manifest order.
func (h *Host) Modules() []Module {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Module, len(h.modules))
	copy(out, h.modules)
	return out
}

// ModuleNames returns the resolved module identifiers in manifest order.
func (h *Host) ModuleNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.modules))
	for i, m := range h.modules {
		out[i] = m.Name
	}
	return out
}

// Notification returns the applied notification defaults.
func (h *Host) Notification() NotificationOptions {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.notification
}

// HashPrefix returns the applied address-mode prefix.
func (h *Host) HashPrefix() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.hashPrefix
}

// Routes returns the applied route table.
func (h *Host) Routes() RouteTable {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.routes
}

// Snapshot is the JSON shape the browser reads at boot.
type Snapshot struct {
	Module       string              `json:"module"`
	Requires     []string            `json:"requires"`
	Notification NotificationOptions `json:"notification"`
	HashPrefix   string              `json:"hashPrefix"`
	Otherwise    Otherwise           `json:"otherwise"`
	Views        []string            `json:"views"`
}

// Otherwise mirrors the router's fallback definition.
type Otherwise struct {
	RedirectTo string `json:"redirectTo"`
}

// Snapshot returns the applied state for serialisation.
func (h *Host) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, len(h.modules))
	for i, m := range h.modules {
		names[i] = m.Name
	}
	return Snapshot{
		Module:       h.app,
		Requires:     names,
		Notification: h.notification,
		HashPrefix:   h.hashPrefix,
		Otherwise:    Otherwise{RedirectTo: h.routes.otherwise},
		Views:        h.routes.Views(),
	}
}
