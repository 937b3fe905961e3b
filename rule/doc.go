// Package rule declares event-handling rules over named signals.
//
// A rule attaches one or more receivers to a signal. Receivers are plain
// Go functions adapted into the signal's argument model: each one
// declares which argument names it accepts, and at dispatch time only
// that subset of the full argument set is passed to it. Surplus
// arguments are silently dropped; optional parameters stay optional; a
// required parameter that the send did not supply fails with the same
// missing-argument error a direct call would produce, and that failure
// halts the dispatch walk.
//
//	rule, err := rule.When(HasCollided).Do(
//	    rule.Named(explode, "spaceship"),
//	    rule.Func(destroyBoth), // func(Collision) error, names from fields
//	)
//	defer rule.Stop()
//
// Three receiver adapters cover the useful shapes:
//
//   - Named wraps a function whose parameters are listed by name at
//     registration time, in order.
//   - Func wraps a function taking a single struct; the struct's fields
//     name the accepted arguments (see argspec.FromStruct).
//   - ArgsFunc is the catch-all: the function receives the entire
//     argument set, reserved keys included, and filtering is disabled.
//
// Rules registered under an explicit ID deduplicate: a later rule with
// the same ID on the same signal replaces the earlier one instead of
// stacking. The rules are tracked in an explicit Registry (the package
// default unless WithRegistry says otherwise) whose entries are removed
// only by Stop.
//
// Stop is idempotent and a stopped rule never fires again; re-registering
// is the only way back. During runs a function with the rule active and
// stops it on the way out, whether the function returns, errors or
// panics.
package rule
