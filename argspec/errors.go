package argspec

import "errors"

// Sentinel errors for spec construction.
var (
	// ErrNotStruct is returned when FromStruct is given a non-struct type.
	ErrNotStruct = errors.New("argspec: type is not a struct")

	// ErrMissingArg is the class of binding failures for absent required
	// parameters; use errors.Is against it.
	ErrMissingArg = errors.New("argspec: required argument missing")
)

// MissingArgError reports a required parameter that was absent from the
// full argument set.
type MissingArgError struct {
	// Name is the missing parameter name.
	Name string

	// Receiver optionally names the receiver the binding was for.
	Receiver string
}

// Error implements the error interface.
func (e *MissingArgError) Error() string {
	if e.Receiver != "" {
		return "missing required argument " + e.Name + " for receiver " + e.Receiver
	}
	return "missing required argument " + e.Name
}

// Is allows errors.Is to match MissingArgError with ErrMissingArg.
func (e *MissingArgError) Is(target error) bool {
	return target == ErrMissingArg
}
