package signal

import (
	"errors"
	"strconv"
)

// Sentinel errors for signal construction and sending.
var (
	// ErrNoNames is returned when a signal is declared without argument names.
	ErrNoNames = errors.New("signal: at least one argument name is required")

	// ErrDuplicateName is returned when a declared argument name repeats.
	ErrDuplicateName = errors.New("signal: duplicate argument name")

	// ErrReservedName is returned when a declared argument name collides
	// with a key the broadcaster injects.
	ErrReservedName = errors.New("signal: argument name is reserved")

	// ErrTooManyArgs is the class of configuration errors for positional
	// overflow; use errors.Is against it.
	ErrTooManyArgs = errors.New("signal: too many positional arguments")

	// ErrDuplicateArg is the class of configuration errors for a name
	// supplied both positionally and by keyword.
	ErrDuplicateArg = errors.New("signal: argument supplied twice")
)

// TooManyArgsError reports more positional values than declared names.
type TooManyArgsError struct {
	// Declared is the number of names the signal declares.
	Declared int

	// Got is the number of positional values supplied.
	Got int
}

// Error implements the error interface.
func (e *TooManyArgsError) Error() string {
	return "signal declares " + strconv.Itoa(e.Declared) +
		" argument names but " + strconv.Itoa(e.Got) + " positional values were supplied"
}

// Is allows errors.Is to match TooManyArgsError with ErrTooManyArgs.
func (e *TooManyArgsError) Is(target error) bool {
	return target == ErrTooManyArgs
}

// DuplicateArgError reports a name given both positionally and by keyword.
type DuplicateArgError struct {
	// Name is the doubly supplied argument name.
	Name string
}

// Error implements the error interface.
func (e *DuplicateArgError) Error() string {
	return "argument " + e.Name + " supplied both positionally and by keyword"
}

// Is allows errors.Is to match DuplicateArgError with ErrDuplicateArg.
func (e *DuplicateArgError) Is(target error) bool {
	return target == ErrDuplicateArg
}
