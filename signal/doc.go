// Package signal implements named signals: declarative event definitions
// that carry an ordered list of argument names and can be invoked like
// methods.
//
// A Signal is constructed with its argument names and never changes them.
// Sending resolves positional values against the declared names, merges
// any keyword arguments, and forwards the result to the signal's
// broadcaster, which notifies every connected receiver in registration
// order and reports their (receiver, value) responses.
//
//	HasCollided := signal.MustNew([]string{"spaceship", "asteroid"})
//
//	responses, err := HasCollided.SendValues(sender,
//	    []any{ship, rock}, nil)
//
// Binding a signal to an owner yields a method-like callable: the owner
// fills the first declared name and the owner's dynamic type becomes the
// sender.
//
//	responses, err := HasCollided.Bind(ship).Call(rock)
//
// Supplying more positional values than declared names, or the same name
// both positionally and by keyword, is a configuration error raised
// before anything is sent. Declared names that receive no value are
// simply omitted; whether that is fatal is each receiver's own affair.
package signal
