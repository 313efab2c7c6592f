// Package socket provides the concrete network handles pooled by
// endpoints.
//
// A Socket wraps a dialed net.Conn with a stable identity and open
// timestamp, and guarantees an idempotent Close so pool cleansing and
// engine-side teardown can race harmlessly. Dialing honors the
// caller's context; everything after the dial is non-blocking
// bookkeeping.
package socket
