package rule

import (
	"sync"

	"github.com/dshills/signalmethods/signal"
)

// Registry tracks active rules by (signal, ID) so that re-registering an
// ID replaces the earlier rule. Entries appear on Do and disappear only
// on Stop. The package keeps one default registry; tests and embedders
// wanting isolation pass their own via WithRegistry.
type Registry struct {
	mu    sync.Mutex
	rules map[registryKey]*Rule
}

type registryKey struct {
	sig *signal.Signal
	id  string
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[registryKey]*Rule)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry used when WithRegistry is not
// given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup returns the active rule registered under (sig, id), if any.
func (g *Registry) Lookup(sig *signal.Signal, id string) (*Rule, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rules[registryKey{sig: sig, id: id}]
	return r, ok
}

// Count returns the number of active rules.
func (g *Registry) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rules)
}

// StopAll stops every active rule.
func (g *Registry) StopAll() {
	g.mu.Lock()
	rules := make([]*Rule, 0, len(g.rules))
	for _, r := range g.rules {
		rules = append(rules, r)
	}
	g.mu.Unlock()

	for _, r := range rules {
		r.Stop()
	}
}

// evict removes and returns the rule under (sig, id) without stopping
// it. The caller stops it outside the lock.
func (g *Registry) evict(sig *signal.Signal, id string) *Rule {
	key := registryKey{sig: sig, id: id}
	g.mu.Lock()
	defer g.mu.Unlock()
	r := g.rules[key]
	delete(g.rules, key)
	return r
}

func (g *Registry) put(sig *signal.Signal, id string, r *Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules[registryKey{sig: sig, id: id}] = r
}

// drop removes the entry for (sig, id) only while it still points at r.
func (g *Registry) drop(sig *signal.Signal, id string, r *Rule) {
	key := registryKey{sig: sig, id: id}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rules[key] == r {
		delete(g.rules, key)
	}
}
