package config

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/signalmethods/broadcast"
	"github.com/dshills/signalmethods/rule"
	"github.com/dshills/signalmethods/signal"
)

// ruleDecl records one rule declaration for Marshal.
type ruleDecl struct {
	signal    string
	id        string
	receivers []string
}

// Set is the live result of loading a document: the declared signals and
// their started rules.
type Set struct {
	signals map[string]*signal.Signal
	rules   []*rule.Rule
	decls   []ruleDecl
}

// Option configures loading.
type Option func(*loader)

// WithBroadcaster routes every declared signal through the given
// broadcaster instead of a per-signal dispatcher.
func WithBroadcaster(b broadcast.Broadcaster) Option {
	return func(l *loader) {
		l.caster = b
	}
}

// WithRegistry tracks the declared rules in the given rule registry.
func WithRegistry(reg *rule.Registry) Option {
	return func(l *loader) {
		l.registry = reg
	}
}

type loader struct {
	caster   broadcast.Broadcaster
	registry *rule.Registry
}

// Load parses a JSON document, constructs its signals and starts its
// rules. Receiver names resolve through recv. On any error the rules
// already started are stopped again and nothing is returned.
func Load(data []byte, recv *Receivers, opts ...Option) (*Set, error) {
	var l loader
	for _, opt := range opts {
		opt(&l)
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(data)

	declared := doc.Get("signals")
	if !declared.Exists() || len(declared.Map()) == 0 {
		return nil, ErrNoSignals
	}

	set := &Set{signals: make(map[string]*signal.Signal)}

	var declErr error
	declared.ForEach(func(name, decl gjson.Result) bool {
		var names []string
		for _, arg := range decl.Get("args").Array() {
			names = append(names, arg.String())
		}

		var sigOpts []signal.Option
		if l.caster != nil {
			sigOpts = append(sigOpts, signal.WithBroadcaster(l.caster))
		}

		sig, err := signal.New(names, sigOpts...)
		if err != nil {
			declErr = &DeclError{Decl: name.String(), Err: err}
			return false
		}
		set.signals[name.String()] = sig
		return true
	})
	if declErr != nil {
		return nil, declErr
	}

	for _, decl := range doc.Get("rules").Array() {
		if err := l.startRule(set, recv, decl); err != nil {
			set.Stop()
			return nil, err
		}
	}

	return set, nil
}

// startRule wires one rule declaration.
func (l *loader) startRule(set *Set, recv *Receivers, decl gjson.Result) error {
	sigName := decl.Get("signal").String()
	sig, ok := set.signals[sigName]
	if !ok {
		return &DeclError{Decl: sigName, Err: ErrUnknownSignal}
	}

	var receivers []rule.Receiver
	var names []string
	for _, rcvName := range decl.Get("receivers").Array() {
		rcv, ok := recv.Lookup(rcvName.String())
		if !ok {
			return &DeclError{Decl: rcvName.String(), Err: ErrUnknownReceiver}
		}
		receivers = append(receivers, rcv)
		names = append(names, rcvName.String())
	}

	var ruleOpts []rule.Option
	id := decl.Get("id").String()
	if id != "" {
		ruleOpts = append(ruleOpts, rule.WithID(id))
	}
	if l.registry != nil {
		ruleOpts = append(ruleOpts, rule.WithRegistry(l.registry))
	}

	r, err := rule.When(sig, ruleOpts...).Do(receivers...)
	if err != nil {
		return &DeclError{Decl: sigName, Err: err}
	}

	set.rules = append(set.rules, r)
	set.decls = append(set.decls, ruleDecl{signal: sigName, id: id, receivers: names})
	return nil
}

// Signal returns a declared signal by name.
func (s *Set) Signal(name string) (*signal.Signal, bool) {
	sig, ok := s.signals[name]
	return sig, ok
}

// Rules returns the started rules in declaration order.
func (s *Set) Rules() []*rule.Rule {
	return append([]*rule.Rule(nil), s.rules...)
}

// Stop stops every rule the set started. The signals remain usable.
func (s *Set) Stop() {
	for _, r := range s.rules {
		r.Stop()
	}
}

// Marshal renders the set's declarations back as JSON: the signals with
// their argument lists and the rule wiring. Runtime state is not
// included.
func (s *Set) Marshal() ([]byte, error) {
	out := []byte(`{}`)
	var err error

	for name, sig := range s.signals {
		if out, err = sjson.SetBytes(out, "signals."+name+".args", sig.Names()); err != nil {
			return nil, err
		}
	}

	for i, decl := range s.decls {
		base := "rules." + strconv.Itoa(i)
		if out, err = sjson.SetBytes(out, base+".signal", decl.signal); err != nil {
			return nil, err
		}
		if decl.id != "" {
			if out, err = sjson.SetBytes(out, base+".id", decl.id); err != nil {
				return nil, err
			}
		}
		if out, err = sjson.SetBytes(out, base+".receivers", decl.receivers); err != nil {
			return nil, err
		}
	}

	return out, nil
}
