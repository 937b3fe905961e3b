// Package broadcast provides the publish/subscribe primitive that the
// signal layer is built on.
//
// A Broadcaster maintains an ordered list of connections. Each connection
// pairs a receiver with an optional sender filter and a dispatch UID.
// Sending walks the matching connections in registration order on the
// calling goroutine, collecting one (receiver, value) response per
// connection. The first receiver failure halts the walk and propagates to
// the caller; receivers registered after the failing one are not invoked.
//
// Connecting under a dispatch UID that is already registered for the same
// sender replaces the earlier connection in place rather than adding a
// duplicate.
//
// # Basic Usage
//
//	d := broadcast.NewDispatcher()
//	conn := d.Connect(func(args broadcast.Args) (any, error) {
//	    fmt.Println(args["text"])
//	    return nil, nil
//	}, nil, "printer")
//
//	responses, err := d.Send(nil, broadcast.Args{"text": "hello"})
//	// ...
//	d.Disconnect(conn)
//
// # Thread Safety
//
// The Dispatcher's connection list is guarded for concurrent Connect,
// Disconnect and Send calls. Receivers themselves run unguarded on the
// sending goroutine and must manage their own state.
package broadcast
