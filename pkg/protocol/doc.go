// Package protocol defines the handler contract for game server query
// protocols and the registry used to construct handlers by name.
//
// A Handler encapsulates a protocol's conventions: the offset between
// the port players connect to and the port that answers status
// queries, and the join-link format used to build clickable connect
// URLs. The actual byte-level query codecs live with the query engine,
// not here.
//
// # Registration
//
// Built-in handlers register themselves with the default registry at
// init time:
//
//	func init() {
//	    protocol.MustRegister("source", NewSource)
//	}
//
// Endpoint construction then resolves a protocol by its configured
// type name:
//
//	h, err := protocol.New("source", opts)
//	if err != nil {
//	    // errors.Is(err, protocol.ErrUnknownProtocol)
//	}
//
// Names are canonicalized to lower case, so "Source", "SOURCE" and
// "source" all resolve to the same handler. Registration is static:
// adding a protocol means adding a factory, never reflecting over type
// names at query time.
package protocol
