package dispatch

import (
	"fmt"
	"sync"
)

// Registry is the runtime-wide collection of Bundles, keyed by
// message name and arity (two bundles may share a name at different
// arities, e.g. a unary and a binary "combine").
type Registry struct {
	mu      sync.RWMutex
	bundles map[string]map[int]*Bundle
}

func NewRegistry() *Registry {
	return &Registry{bundles: map[string]map[int]*Bundle{}}
}

// GetOrCreate returns the Bundle for name/arity, creating an empty one
// if this is the first definition at that arity (spec §3 "a bundle
// collects every method definition sharing a name").
func (r *Registry) GetOrCreate(name string, arity int) *Bundle {
	r.mu.Lock()
	defer r.mu.Unlock()
	byArity, ok := r.bundles[name]
	if !ok {
		byArity = map[int]*Bundle{}
		r.bundles[name] = byArity
	}
	b, ok := byArity[arity]
	if !ok {
		b = NewBundle(name, arity)
		byArity[arity] = b
	}
	return b
}

// Lookup returns an existing bundle without creating one.
func (r *Registry) Lookup(name string, arity int) (*Bundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byArity, ok := r.bundles[name]
	if !ok {
		return nil, fmt.Errorf("no-method: no bundle named %q", name)
	}
	b, ok := byArity[arity]
	if !ok {
		return nil, fmt.Errorf("no-method: bundle %q has no definitions of arity %d", name, arity)
	}
	return b, nil
}
