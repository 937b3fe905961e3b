package rule

import (
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/signalmethods/argspec"
	"github.com/dshills/signalmethods/broadcast"
	"github.com/dshills/signalmethods/signal"
)

// Registrar binds a pending registration to one signal. When configures
// it; Do performs it.
type Registrar struct {
	sig      *signal.Signal
	id       string
	sender   any
	registry *Registry
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithID sets the rule's identifier, used as the dispatch UID: a later
// rule with the same ID on the same signal replaces this one. The
// default is a generated UUID, which never collides.
func WithID(id string) Option {
	return func(r *Registrar) {
		r.id = id
	}
}

// WithSender restricts the rule to sends with the given sender. For a
// signal invoked through Bind, the sender is the owner's dynamic type.
// The default receives every send of the signal.
func WithSender(sender any) Option {
	return func(r *Registrar) {
		r.sender = sender
	}
}

// WithRegistry tracks the rule in the given registry instead of the
// package default.
func WithRegistry(reg *Registry) Option {
	return func(r *Registrar) {
		r.registry = reg
	}
}

// When returns a registrar bound to the given signal.
//
//	r, err := rule.When(HasCollided, rule.WithID("collision")).Do(
//	    rule.Named(explode, "spaceship"),
//	)
func When(sig *signal.Signal, opts ...Option) *Registrar {
	r := &Registrar{
		sig:      sig,
		registry: defaultRegistry,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do registers the receivers, in call order, and activates the rule.
// Registration fails as a whole if any receiver is malformed or requires
// an argument the signal never sends; optional parameters may name
// anything.
func (r *Registrar) Do(receivers ...Receiver) (*Rule, error) {
	if len(receivers) == 0 {
		return nil, ErrNoReceivers
	}

	for _, rcv := range receivers {
		if rcv.err != nil {
			return nil, rcv.err
		}
		if err := r.validate(rcv); err != nil {
			return nil, err
		}
	}

	id := r.id
	if id == "" {
		id = uuid.NewString()
	}

	// Replace-not-duplicate: a prior rule under the same ID is stopped
	// before the new receivers connect.
	if prior := r.registry.evict(r.sig, id); prior != nil {
		prior.Stop()
	}

	rule := &Rule{
		id:       id,
		sig:      r.sig,
		registry: r.registry,
	}

	caster := r.sig.Broadcaster()
	rule.conns = make([]broadcast.Connection, len(receivers))
	for i, rcv := range receivers {
		uid := id + "#" + strconv.Itoa(i)
		rule.conns[i] = caster.Connect(wrap(rcv), r.sender, uid)
	}

	r.registry.put(r.sig, id, rule)
	return rule, nil
}

// validate checks that every required parameter of the receiver is one
// the signal can actually send.
func (r *Registrar) validate(rcv Receiver) error {
	if rcv.spec.IsCatchAll() {
		return nil
	}
	for _, name := range rcv.spec.Required() {
		if r.sig.Declares(name) || broadcast.IsReservedKey(name) {
			continue
		}
		return &UnsendableArgError{
			Receiver: rcv.name,
			Name:     name,
			Declared: r.sig.Names(),
		}
	}
	return nil
}

// wrap turns a Receiver into the raw broadcast receiver: filter the full
// set down to the declared subset, then invoke. A missing required
// argument is the receiver's natural call failure and propagates as-is.
func wrap(rcv Receiver) broadcast.Receiver {
	name := rcv.name
	spec := rcv.spec
	invoke := rcv.invoke
	return func(args broadcast.Args) (any, error) {
		bound, err := spec.Bind(args)
		if err != nil {
			var missing *argspec.MissingArgError
			if errors.As(err, &missing) && missing.Receiver == "" {
				missing.Receiver = name
			}
			return nil, err
		}
		return invoke(bound)
	}
}

// Rule is an active registration. Its only transition is Stop: active,
// then stopped, terminally.
type Rule struct {
	id       string
	sig      *signal.Signal
	conns    []broadcast.Connection
	registry *Registry
	stopped  atomic.Bool
}

// ID returns the rule's identifier.
func (r *Rule) ID() string { return r.id }

// Signal returns the signal the rule is attached to.
func (r *Rule) Signal() *signal.Signal { return r.sig }

// Stopped reports whether the rule has been stopped.
func (r *Rule) Stopped() bool { return r.stopped.Load() }

// Stop detaches every receiver the rule registered. Stopping twice is a
// no-op. A stopped rule never fires again; register a fresh rule to
// resume.
func (r *Rule) Stop() {
	if r.stopped.Swap(true) {
		return
	}
	caster := r.sig.Broadcaster()
	for _, conn := range r.conns {
		caster.Disconnect(conn)
	}
	r.registry.drop(r.sig, r.id, r)
}

// During runs fn with the rule active and stops the rule on the way out,
// whether fn returns normally, returns an error, or panics.
func (r *Rule) During(fn func() error) error {
	defer r.Stop()
	return fn()
}
