package broadcast

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// connState values for a connection's lifecycle.
const (
	connActive int32 = iota
	connRemoved
)

// connection is the internal Connection implementation.
type connection struct {
	uid      string
	sender   any
	receiver Receiver
	state    atomic.Int32
}

// UID returns the connection's dispatch UID.
func (c *connection) UID() string { return c.uid }

// Sender returns the sender filter, or nil for a wildcard connection.
func (c *connection) Sender() any { return c.sender }

// IsActive reports whether the connection can still receive sends.
func (c *connection) IsActive() bool { return c.state.Load() == connActive }

func (c *connection) remove() { c.state.Store(connRemoved) }

// Dispatcher is the default Broadcaster implementation: an ordered,
// mutex-guarded connection list with dispatch-UID deduplication and
// halt-on-first-failure delivery.
type Dispatcher struct {
	mu    sync.RWMutex
	conns []*connection

	logger zerolog.Logger

	// Stats
	sends     atomic.Uint64
	delivered atomic.Uint64
	failed    atomic.Uint64
	replaced  atomic.Uint64
}

// NewDispatcher creates a new Dispatcher with the given options.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Connect registers a receiver and returns its connection.
// Connecting under a (sender, uid) pair that is already registered
// replaces the earlier receiver in place, preserving its position in the
// delivery order.
func (d *Dispatcher) Connect(r Receiver, sender any, uid string) Connection {
	if uid == "" {
		uid = uuid.NewString()
	}

	conn := &connection{
		uid:      uid,
		sender:   sender,
		receiver: r,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.conns {
		if existing.uid == uid && existing.sender == sender {
			existing.remove()
			d.conns[i] = conn
			d.replaced.Add(1)
			d.logger.Debug().Str("uid", uid).Msg("connection replaced")
			return conn
		}
	}

	d.conns = append(d.conns, conn)
	d.logger.Debug().Str("uid", uid).Int("connections", len(d.conns)).Msg("connected")
	return conn
}

// Disconnect removes a connection. It reports whether the connection was
// still registered. Disconnecting twice is a no-op.
func (d *Dispatcher) Disconnect(c Connection) bool {
	conn, ok := c.(*connection)
	if !ok {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.conns {
		if existing == conn {
			d.conns = append(d.conns[:i], d.conns[i+1:]...)
			conn.remove()
			d.logger.Debug().Str("uid", conn.uid).Int("connections", len(d.conns)).Msg("disconnected")
			return true
		}
	}
	return false
}

// Send broadcasts args to every matching connection in registration order
// on the calling goroutine. The delivered set is a copy of args with the
// reserved "sender" key injected; args itself is never mutated. The first
// receiver error halts the walk: responses collected so far are returned
// together with that error, untouched.
func (d *Dispatcher) Send(sender any, args Args) ([]Response, error) {
	d.sends.Add(1)

	// Snapshot matching connections so receivers may connect or
	// disconnect without deadlocking; such changes take effect on the
	// next send.
	d.mu.RLock()
	matched := make([]*connection, 0, len(d.conns))
	for _, conn := range d.conns {
		if conn.sender == nil || conn.sender == sender {
			matched = append(matched, conn)
		}
	}
	d.mu.RUnlock()

	if len(matched) == 0 {
		return nil, nil
	}

	full := args.Clone()
	full[SenderKey] = sender

	d.logger.Debug().Int("receivers", len(matched)).Msg("sending")

	responses := make([]Response, 0, len(matched))
	for _, conn := range matched {
		if !conn.IsActive() {
			continue
		}

		value, err := conn.receiver(full.Clone())
		if err != nil {
			d.failed.Add(1)
			d.logger.Debug().Str("uid", conn.uid).Err(err).Msg("receiver failed")
			return responses, err
		}

		d.delivered.Add(1)
		responses = append(responses, Response{
			Receiver: conn.receiver,
			UID:      conn.uid,
			Value:    value,
		})
	}

	return responses, nil
}

// Connections returns the number of registered connections.
func (d *Dispatcher) Connections() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.conns)
}

// Clear removes every connection.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, conn := range d.conns {
		conn.remove()
	}
	d.conns = nil
}
