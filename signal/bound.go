package signal

import (
	"reflect"

	"github.com/dshills/signalmethods/broadcast"
)

// Bound is a signal read through an owning instance. Calling it treats
// the owner as the first declared argument and the owner's dynamic type
// as the sender. Bound values are cheap and ephemeral; Bind on each use
// is fine.
type Bound struct {
	sig    *Signal
	owner  any
	sender any
}

// Bind pairs the signal with an owning instance.
func (s *Signal) Bind(owner any) *Bound {
	return &Bound{
		sig:    s,
		owner:  owner,
		sender: reflect.TypeOf(owner),
	}
}

// Signal returns the underlying signal definition.
func (b *Bound) Signal() *Signal {
	return b.sig
}

// Owner returns the bound instance.
func (b *Bound) Owner() any {
	return b.owner
}

// Sender returns the sender used for the bound sends: the owner's
// dynamic type.
func (b *Bound) Sender() any {
	return b.sender
}

// Call invokes the bound signal. The owner fills the first declared
// name; positional values bind to the remaining names in order. Calling
// with no values is legal and sends only the owner slot.
func (b *Bound) Call(positional ...any) ([]broadcast.Response, error) {
	return b.CallKW(positional, nil)
}

// CallKW invokes the bound signal with positional and keyword arguments.
func (b *Bound) CallKW(positional []any, kw Args) ([]broadcast.Response, error) {
	shifted := make([]any, 0, len(positional)+1)
	shifted = append(shifted, b.owner)
	shifted = append(shifted, positional...)
	return b.sig.SendValues(b.sender, shifted, kw)
}
