package signal

import (
	"github.com/dshills/signalmethods/broadcast"
)

// Args is the keyword-argument set a signal send assembles.
type Args = broadcast.Args

// Signal is a named signal: an ordered sequence of argument names plus
// the broadcaster that delivers its sends. The names are fixed at
// construction and never change.
type Signal struct {
	names  []string
	caster broadcast.Broadcaster
}

// Option configures a Signal at construction.
type Option func(*Signal)

// WithBroadcaster sets the broadcaster sends are forwarded to. The
// default is a fresh broadcast.Dispatcher owned by the signal.
func WithBroadcaster(b broadcast.Broadcaster) Option {
	return func(s *Signal) {
		s.caster = b
	}
}

// New creates a signal declaring the given argument names, in order.
// At least one name is required; by convention the first is the
// instance slot filled by Bind. Names must be unique and must not
// collide with the broadcaster's reserved keys.
func New(names []string, opts ...Option) (*Signal, error) {
	if len(names) == 0 {
		return nil, ErrNoNames
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if broadcast.IsReservedKey(name) {
			return nil, ErrReservedName
		}
		if _, dup := seen[name]; dup {
			return nil, ErrDuplicateName
		}
		seen[name] = struct{}{}
	}

	s := &Signal{names: append([]string(nil), names...)}
	for _, opt := range opts {
		opt(s)
	}
	if s.caster == nil {
		s.caster = broadcast.NewDispatcher()
	}
	return s, nil
}

// MustNew works like New but panics on error. Intended for package-level
// signal declarations.
func MustNew(names []string, opts ...Option) *Signal {
	s, err := New(names, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the declared argument names in order.
func (s *Signal) Names() []string {
	return append([]string(nil), s.names...)
}

// Declares reports whether name is one of the signal's argument names.
func (s *Signal) Declares(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Broadcaster returns the broadcaster the signal forwards sends to.
func (s *Signal) Broadcaster() broadcast.Broadcaster {
	return s.caster
}

// Send forwards the keyword set to the broadcaster with the given sender.
// Keyword names outside the declared list are passed through untouched;
// declared names that are absent stay absent.
func (s *Signal) Send(sender any, kw Args) ([]broadcast.Response, error) {
	return s.SendValues(sender, nil, kw)
}

// SendValues resolves positional values against the declared names
// (positional[i] binds to the i-th name), merges kw on top and forwards
// the result. Supplying more positional values than names, or a name
// both positionally and by keyword, is a configuration error and nothing
// is sent.
func (s *Signal) SendValues(sender any, positional []any, kw Args) ([]broadcast.Response, error) {
	merged, err := s.resolve(positional, kw)
	if err != nil {
		return nil, err
	}
	merged[broadcast.SignalKey] = s
	return s.caster.Send(sender, merged)
}

// resolve turns positional values into named entries and merges the
// keyword set.
func (s *Signal) resolve(positional []any, kw Args) (Args, error) {
	if len(positional) > len(s.names) {
		return nil, &TooManyArgsError{Declared: len(s.names), Got: len(positional)}
	}

	merged := make(Args, len(positional)+len(kw)+1)
	for i, v := range positional {
		merged[s.names[i]] = v
	}
	for name, v := range kw {
		if _, dup := merged[name]; dup {
			return nil, &DuplicateArgError{Name: name}
		}
		merged[name] = v
	}
	return merged, nil
}
