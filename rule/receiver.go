package rule

import (
	"errors"
	"reflect"
	"runtime"
	"strings"

	"github.com/dshills/signalmethods/argspec"
	"github.com/dshills/signalmethods/broadcast"
)

// Receiver is a callable adapted for dispatch: a parameter spec naming
// the arguments it accepts plus an invoker taking the bound subset.
// Receivers are built with the ArgsFunc, Func and Named adapters; a
// malformed adapter call is carried as a deferred error and surfaced by
// Registrar.Do.
type Receiver struct {
	name   string
	spec   argspec.Spec
	invoke func(bound map[string]any) (any, error)
	err    error
}

// Name returns the receiver's display name, usually the wrapped
// function's name.
func (r Receiver) Name() string { return r.name }

// Spec returns the receiver's parameter spec.
func (r Receiver) Spec() argspec.Spec { return r.spec }

// Err returns the deferred construction error, if any.
func (r Receiver) Err() error { return r.err }

// WithSpec returns a copy of the receiver using the given spec instead
// of the derived one. Useful to mark parameters optional or attach
// defaults on top of Named.
func (r Receiver) WithSpec(spec argspec.Spec) Receiver {
	r.spec = spec
	return r
}

// WithName returns a copy of the receiver with a different display name.
func (r Receiver) WithName(name string) Receiver {
	r.name = name
	return r
}

// NewReceiver builds a receiver from its raw parts: a display name, the
// parameter spec the dispatch set is filtered against, and an invoker
// taking the bound subset. This is the extension point for adapters the
// package does not ship, such as scripted receivers.
func NewReceiver(name string, spec argspec.Spec, invoke func(bound map[string]any) (any, error)) Receiver {
	return Receiver{name: name, spec: spec, invoke: invoke}
}

// InvalidReceiver carries an adapter's construction failure so that
// Registrar.Do can report it.
func InvalidReceiver(name string, err error) Receiver {
	return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: err}}
}

// ArgsFunc adapts a catch-all function: fn receives the complete
// argument set, reserved keys included, and no filtering happens.
func ArgsFunc(fn func(args broadcast.Args) (any, error)) Receiver {
	return Receiver{
		name: funcName(fn),
		spec: argspec.CatchAll(),
		invoke: func(bound map[string]any) (any, error) {
			return fn(broadcast.Args(bound))
		},
	}
}

// Func adapts a function taking a single struct (or pointer to struct)
// parameter. The struct's exported fields name the accepted arguments;
// see argspec.FromStruct for the naming and optional rules. Supported
// shapes:
//
//	func(T)
//	func(T) error
//	func(T) (R, error)
func Func(fn any) Receiver {
	name := funcName(fn)

	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: ErrNotFunc}}
	}
	if t.IsVariadic() {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: ErrVariadic}}
	}
	if t.NumIn() != 1 {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: ErrBadShape}}
	}

	binder, err := argspec.NewStructBinder(t.In(0))
	if err != nil {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: err}}
	}

	results, err := resultScheme(t)
	if err != nil {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: err}}
	}

	fv := reflect.ValueOf(fn)
	return Receiver{
		name: name,
		spec: binder.Spec(),
		invoke: func(bound map[string]any) (any, error) {
			arg, err := binder.Build(bound)
			if err != nil {
				return nil, &ReceiverError{Receiver: name, Err: err}
			}
			return results(fv.Call([]reflect.Value{arg}))
		},
	}
}

// Named adapts a function whose parameters are bound, in order, to the
// given argument names. The name count must match the parameter count
// and every name is required; wrap the result in WithSpec to loosen
// that. Supported result shapes are those of Func.
func Named(fn any, names ...string) Receiver {
	name := funcName(fn)

	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: ErrNotFunc}}
	}
	if t.IsVariadic() {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: ErrVariadic}}
	}
	if t.NumIn() != len(names) {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: ErrBadShape}}
	}

	results, err := resultScheme(t)
	if err != nil {
		return Receiver{name: name, err: &ReceiverError{Receiver: name, Err: err}}
	}

	fv := reflect.ValueOf(fn)
	params := make([]reflect.Type, len(names))
	for i := range names {
		params[i] = t.In(i)
	}

	return Receiver{
		name: name,
		spec: argspec.New(names...),
		invoke: func(bound map[string]any) (any, error) {
			in := make([]reflect.Value, len(names))
			for i, argName := range names {
				v, err := argValue(bound[argName], params[i], argName)
				if err != nil {
					return nil, &ReceiverError{Receiver: name, Err: err}
				}
				in[i] = v
			}
			return results(fv.Call(in))
		},
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// resultScheme maps a function's results onto the (value, error) pair a
// receiver reports. Accepted: no results, a lone error, a lone value, or
// a value plus error.
func resultScheme(t reflect.Type) (func([]reflect.Value) (any, error), error) {
	switch t.NumOut() {
	case 0:
		return func([]reflect.Value) (any, error) { return nil, nil }, nil
	case 1:
		if t.Out(0).Implements(errType) {
			return func(out []reflect.Value) (any, error) {
				return nil, asError(out[0])
			}, nil
		}
		return func(out []reflect.Value) (any, error) {
			return out[0].Interface(), nil
		}, nil
	case 2:
		if !t.Out(1).Implements(errType) {
			return nil, ErrBadShape
		}
		return func(out []reflect.Value) (any, error) {
			return out[0].Interface(), asError(out[1])
		}, nil
	default:
		return nil, ErrBadShape
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// argValue turns a bound argument into a reflect.Value for parameter
// type t. A nil argument becomes the type's zero value.
func argValue(v any, t reflect.Type, argName string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, errors.New(
			"argument " + argName + ": cannot use " + rv.Type().String() + " as " + t.String())
	}
	return rv, nil
}

// funcName resolves a display name for a function value.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<not a function>"
	}
	full := runtime.FuncForPC(v.Pointer()).Name()
	if idx := strings.LastIndexByte(full, '/'); idx >= 0 {
		full = full[idx+1:]
	}
	return full
}
