package broadcast

import "github.com/tidwall/sjson"

// Stats contains dispatcher counters.
type Stats struct {
	// Sends is the total number of Send calls.
	Sends uint64

	// Delivered is the number of successful receiver invocations.
	Delivered uint64

	// Failed is the number of receiver invocations that returned an error.
	Failed uint64

	// Replaced is the number of connections replaced by dispatch-UID
	// deduplication.
	Replaced uint64

	// Connections is the current number of registered connections.
	Connections int
}

// Stats returns a snapshot of the dispatcher's counters.
// Counters are read individually, so a snapshot taken during concurrent
// sends may be slightly inconsistent.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Sends:       d.sends.Load(),
		Delivered:   d.delivered.Load(),
		Failed:      d.failed.Load(),
		Replaced:    d.replaced.Load(),
		Connections: d.Connections(),
	}
}

// JSON renders the stats as a JSON document.
func (s Stats) JSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "sends", s.Sends); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "delivered", s.Delivered); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "failed", s.Failed); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "replaced", s.Replaced); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "connections", s.Connections); err != nil {
		return nil, err
	}
	return out, nil
}
