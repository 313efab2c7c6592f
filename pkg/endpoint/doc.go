// Package endpoint models a single queryable game server: a validated
// network address bound to a protocol handler, with a pool of
// reusable sockets.
//
// A Server is built once from a Descriptor and is immutable in its
// identity, address, and protocol thereafter; only its options map
// and socket pool mutate. Construction validates the descriptor,
// resolves the host specification (IPv4, bracketed IPv6, or a
// hostname looked up via DNS), binds the protocol handler from the
// registry, and derives the query port:
//
//	srv, err := endpoint.New(ctx, endpoint.Descriptor{
//	    Type: "source",
//	    Host: "203.0.113.4:27015",
//	})
//
// The query engine borrows sockets from the pool before opening new
// ones and returns them after a query round:
//
//	if h := srv.SocketGet(); h != nil {
//	    // reuse h
//	}
//	srv.SocketAdd(h)       // hand back for reuse
//	srv.SocketCleanse()    // teardown: close everything pooled
//
// This package performs no network I/O beyond hostname resolution at
// construction time. Deadlines, retries, and socket health checks
// belong to the engine driving the queries.
package endpoint
