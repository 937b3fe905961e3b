package broadcast

// Reserved argument keys injected during a send. Receivers only see them
// when they ask for them; the argument-filtering layer strips them
// otherwise.
const (
	// SenderKey carries the logical origin of the send.
	SenderKey = "sender"

	// SignalKey carries the signal definition being sent, when the send
	// originates from the signal layer.
	SignalKey = "signal"
)

// IsReservedKey reports whether name is one of the keys a Broadcaster
// injects on its own.
func IsReservedKey(name string) bool {
	return name == SenderKey || name == SignalKey
}

// Args is the full keyword-argument set delivered to receivers.
type Args map[string]any

// Clone returns a shallow copy of the argument set.
// A nil Args clones to an empty, non-nil map.
func (a Args) Clone() Args {
	out := make(Args, len(a)+2)
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Receiver is a callable attached to a Broadcaster. It receives the full
// argument set, including the reserved keys, and returns a value for the
// sender along with any error.
type Receiver func(args Args) (any, error)

// Response pairs a receiver with the value it returned for one send.
type Response struct {
	// Receiver is the receiver that produced the value.
	Receiver Receiver

	// UID is the dispatch UID of the receiver's connection.
	UID string

	// Value is whatever the receiver returned.
	Value any
}

// Connection represents a registered receiver. It is returned by Connect
// and identifies the registration for Disconnect.
type Connection interface {
	// UID returns the connection's dispatch UID.
	UID() string

	// Sender returns the sender filter, or nil if the connection
	// receives every send.
	Sender() any

	// IsActive reports whether the connection can still receive sends.
	IsActive() bool
}

// Broadcaster is the publish/subscribe contract the signal layer depends
// on: register a receiver, remove it, and broadcast an argument set.
type Broadcaster interface {
	// Connect registers a receiver. A non-nil sender restricts delivery
	// to sends with that exact sender. A non-empty uid deduplicates:
	// connecting again under the same (sender, uid) pair replaces the
	// earlier receiver in place. An empty uid is assigned a fresh one.
	Connect(r Receiver, sender any, uid string) Connection

	// Disconnect removes a connection. It reports whether the
	// connection was still registered.
	Disconnect(c Connection) bool

	// Send broadcasts args to every connection whose sender filter is
	// nil or equal to sender, in registration order. The reserved
	// "sender" key is injected into the delivered set. Responses for
	// receivers that ran are returned even when err is non-nil; the
	// error is the first receiver failure, returned as-is.
	Send(sender any, args Args) ([]Response, error)
}
