package config

import (
	"sync"

	"github.com/dshills/signalmethods/rule"
)

// Receivers maps declaration names to receivers. The host program
// registers everything a config document may reference before Load.
type Receivers struct {
	mu sync.RWMutex
	m  map[string]rule.Receiver
}

// NewReceivers creates an empty receiver registry.
func NewReceivers() *Receivers {
	return &Receivers{m: make(map[string]rule.Receiver)}
}

// Register adds a receiver under a declaration name. Registering the
// same name twice is an error; declarations should be unambiguous.
func (r *Receivers) Register(name string, rcv rule.Receiver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.m[name]; exists {
		return &DeclError{Decl: name, Err: ErrDuplicateReceiver}
	}
	r.m[name] = rcv.WithName(name)
	return nil
}

// Lookup returns the receiver registered under name.
func (r *Receivers) Lookup(name string) (rule.Receiver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rcv, ok := r.m[name]
	return rcv, ok
}

// Names returns the registered declaration names, in no particular order.
func (r *Receivers) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	return names
}
