// Provider abstraction
// A provider enumerates the backends it exposes; the registry indexes them

package provider

import (
	"sync"

	"github.com/perclft/QubitScope/backend"
)

// Provider enumerates available backends (local snapshot providers, the
// runtime service catalog).
type Provider interface {
	Name() string
	Backends() []backend.Backend
}

// Search scans the backends of a provider for one with the given name and
// returns it, or nil when no backend matches. When several backends share a
// name the last one enumerated wins.
func Search(p Provider, name string) backend.Backend {
	var found backend.Backend

	for _, b := range p.Backends() {
		if b.Name() == name {
			found = b
		}
	}

	return found
}

// Registry indexes backends by name. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]backend.Backend
}

func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]backend.Backend),
	}
}

func (r *Registry) Register(b backend.Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Name()] = b
}

func (r *Registry) Get(name string) (backend.Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

func (r *Registry) List() []backend.Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]backend.Backend, 0, len(r.backends))
	for _, b := range r.backends {
		out = append(out, b)
	}
	return out
}
