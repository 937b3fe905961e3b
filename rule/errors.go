package rule

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rule registration.
var (
	// ErrNoReceivers is returned when Do is called without receivers.
	ErrNoReceivers = errors.New("rule: at least one receiver is required")

	// ErrNotFunc is returned when a receiver adapter is given a
	// non-function value.
	ErrNotFunc = errors.New("rule: receiver is not a function")

	// ErrVariadic is returned for variadic receiver functions. Variadic
	// parameters have no argument name to bind; use a named collection
	// instead.
	ErrVariadic = errors.New("rule: variadic receivers are not supported")

	// ErrBadShape is returned when a receiver function's parameters or
	// results do not fit the adapter.
	ErrBadShape = errors.New("rule: unsupported receiver signature")
)

// ReceiverError wraps a registration failure with the receiver's name.
type ReceiverError struct {
	// Receiver names the offending receiver.
	Receiver string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ReceiverError) Error() string {
	return "receiver " + e.Receiver + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ReceiverError) Unwrap() error {
	return e.Err
}

// UnsendableArgError reports a receiver requiring an argument the signal
// never sends.
type UnsendableArgError struct {
	// Receiver names the receiver.
	Receiver string

	// Name is the required argument name.
	Name string

	// Declared are the names the signal does send.
	Declared []string
}

// Error implements the error interface.
func (e *UnsendableArgError) Error() string {
	return fmt.Sprintf(
		"receiver %s requires argument %q but the signal only sends [%s]; "+
			"rename the parameter or make it optional",
		e.Receiver, e.Name, strings.Join(e.Declared, " "))
}
