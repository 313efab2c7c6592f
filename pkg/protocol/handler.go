package protocol

// Handler is the contract every query protocol implements.
//
// Handlers are pure convention carriers: they know how a protocol
// relates client and query ports and how to format a join link. They
// perform no network I/O and hold no sockets.
type Handler interface {
	// Name returns the canonical protocol name (lower case).
	Name() string

	// PortOffset returns the delta added to an endpoint's client port
	// to obtain its query port when no explicit query port is
	// configured. Zero means the two ports coincide.
	PortOffset() int

	// JoinLinkTemplate returns a fmt template consuming the endpoint's
	// IP (string) and client port (int), in that order. Empty when the
	// protocol has no join-link convention.
	JoinLinkTemplate() string
}

// Factory constructs a Handler from the endpoint's options map.
// Factories must not perform network I/O.
type Factory func(opts map[string]any) (Handler, error)

// base holds the construction options shared by the built-in handlers.
// Protocol-specific passthrough values (rcon passwords, buffer sizes,
// master-server coordinates) stay available to the query engine via
// Option.
type base struct {
	opts map[string]any
}

func newBase(opts map[string]any) base {
	if opts == nil {
		opts = map[string]any{}
	}
	return base{opts: opts}
}

// Option returns the construction option stored under key, or nil.
func (b base) Option(key string) any {
	return b.opts[key]
}
