package argspec

// Param describes one named parameter of a receiver.
type Param struct {
	// Name is the argument name the parameter binds to.
	Name string

	// Optional marks the parameter as safe to omit.
	Optional bool

	// Default is bound when an optional parameter is absent from the
	// full set. A nil Default means the parameter is simply omitted.
	Default any
}

// Spec is the declared parameter set of a receiver. The zero value
// declares nothing; a catch-all Spec accepts everything.
type Spec struct {
	params   []Param
	catchAll bool
}

// New returns a Spec declaring the given names as required parameters,
// in order.
func New(names ...string) Spec {
	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = Param{Name: name}
	}
	return Spec{params: params}
}

// Of returns a Spec declaring the given parameters, in order.
func Of(params ...Param) Spec {
	return Spec{params: append([]Param(nil), params...)}
}

// CatchAll returns a Spec that disables filtering: binding passes the
// entire argument set through untouched.
func CatchAll() Spec {
	return Spec{catchAll: true}
}

// WithOptional returns a copy of the Spec with the named parameter marked
// optional, carrying def as its default. A name not yet declared is
// appended.
func (s Spec) WithOptional(name string, def any) Spec {
	params := append([]Param(nil), s.params...)
	for i, p := range params {
		if p.Name == name {
			params[i].Optional = true
			params[i].Default = def
			return Spec{params: params, catchAll: s.catchAll}
		}
	}
	params = append(params, Param{Name: name, Optional: true, Default: def})
	return Spec{params: params, catchAll: s.catchAll}
}

// Params returns the declared parameters in order.
func (s Spec) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Names returns the declared parameter names in order.
func (s Spec) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}
	return names
}

// IsCatchAll reports whether the Spec disables filtering.
func (s Spec) IsCatchAll() bool {
	return s.catchAll
}

// Declares reports whether the Spec names the given parameter.
// A catch-all Spec declares everything.
func (s Spec) Declares(name string) bool {
	if s.catchAll {
		return true
	}
	for _, p := range s.params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Required returns the names of the non-optional parameters, in order.
func (s Spec) Required() []string {
	var names []string
	for _, p := range s.params {
		if !p.Optional {
			names = append(names, p.Name)
		}
	}
	return names
}

// Bind narrows full down to the declared parameter subset.
//
// Declared names present in full are copied over; surplus names are
// dropped. An absent optional parameter binds its default when one is
// set and is omitted otherwise. An absent required parameter fails with
// a MissingArgError. A catch-all Spec returns a copy of full unchanged.
func (s Spec) Bind(full map[string]any) (map[string]any, error) {
	if s.catchAll {
		out := make(map[string]any, len(full))
		for k, v := range full {
			out[k] = v
		}
		return out, nil
	}

	out := make(map[string]any, len(s.params))
	for _, p := range s.params {
		if v, ok := full[p.Name]; ok {
			out[p.Name] = v
			continue
		}
		if p.Optional {
			if p.Default != nil {
				out[p.Name] = p.Default
			}
			continue
		}
		return nil, &MissingArgError{Name: p.Name}
	}
	return out, nil
}
