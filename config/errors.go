package config

import "errors"

// Sentinel errors for config loading.
var (
	// ErrInvalidJSON is returned when the document is not valid JSON.
	ErrInvalidJSON = errors.New("config: invalid JSON")

	// ErrNoSignals is returned when the document declares no signals.
	ErrNoSignals = errors.New("config: no signals declared")

	// ErrUnknownSignal is returned when a rule references an undeclared signal.
	ErrUnknownSignal = errors.New("config: rule references unknown signal")

	// ErrUnknownReceiver is returned when a rule references an unregistered receiver.
	ErrUnknownReceiver = errors.New("config: rule references unknown receiver")

	// ErrDuplicateReceiver is returned when a receiver name is registered twice.
	ErrDuplicateReceiver = errors.New("config: receiver already registered")
)

// DeclError wraps a loading failure with the declaration it came from.
type DeclError struct {
	// Decl locates the offending declaration, e.g. a signal or rule name.
	Decl string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DeclError) Error() string {
	return e.Decl + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DeclError) Unwrap() error {
	return e.Err
}
