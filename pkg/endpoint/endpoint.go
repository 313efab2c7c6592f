package endpoint

import (
	"context"
	"fmt"

	"github.com/getgsq/gsq/pkg/protocol"
)

// Descriptor is the raw input an endpoint is built from, typically
// decoded from a server collection file.
type Descriptor struct {
	// Type selects the protocol handler. Required.
	Type string `json:"type" yaml:"type"`

	// Host is the address specification: host, host:port, ipv6,
	// [ipv6], or [ipv6]:port. Required.
	Host string `json:"host" yaml:"host"`

	// ID is the endpoint's unique handle. Defaults to "<ip>:<port>".
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Options carries the reserved keys (query_port,
	// master_server_port) plus protocol-specific passthrough values.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Server is one queryable game server endpoint. Identity, address,
// and protocol are fixed at construction; the options map and socket
// pool are the only mutable state.
//
// Socket and option operations are internally locked, but a single
// endpoint is still meant to have one logical owner per query round:
// the pool does not track which goroutine borrowed a handle.
type Server struct {
	id         string
	ip         string
	portClient int
	hasClient  bool
	portQuery  int
	handler    protocol.Handler
	opts       map[string]any
	pool       *SocketPool
}

// New builds a Server from desc using the default protocol registry
// and the system resolver. See NewWith.
func New(ctx context.Context, desc Descriptor) (*Server, error) {
	return NewWith(ctx, desc, protocol.DefaultRegistry, defaultResolver)
}

// NewWith builds a Server from desc, resolving the host with resolver
// and binding the protocol handler from registry. Construction fails
// on a missing type or host, an unparseable or unresolvable address,
// an unregistered protocol, or when no query port can be derived. A
// failed construction returns no partial Server.
//
// The context bounds hostname resolution only; no other I/O happens
// here.
func NewWith(ctx context.Context, desc Descriptor, registry *protocol.Registry, resolver *Resolver) (*Server, error) {
	if desc.Type == "" {
		return nil, ErrMissingType
	}
	if desc.Host == "" {
		return nil, ErrMissingHost
	}

	opts := make(map[string]any, len(desc.Options))
	for k, v := range desc.Options {
		opts[k] = v
	}

	addr, err := resolver.Resolve(ctx, desc.Host)
	if err != nil {
		return nil, fmt.Errorf("resolving host %q: %w", desc.Host, err)
	}

	handler, err := registry.New(desc.Type, opts)
	if err != nil {
		return nil, err
	}

	s := &Server{
		ip:         addr.IP,
		portClient: addr.Port,
		hasClient:  addr.HasPort,
		handler:    handler,
		opts:       opts,
		pool:       NewSocketPool(),
	}

	if optionPresent(opts, OptionQueryPort) {
		port, ok := coerceInt(opts[OptionQueryPort])
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQueryPort, opts[OptionQueryPort])
		}
		s.portQuery = port
	} else {
		if !addr.HasPort {
			return nil, fmt.Errorf("%w: host %q has no port and no %s option is set",
				ErrMissingClientPort, desc.Host, OptionQueryPort)
		}
		s.portQuery = addr.Port + handler.PortOffset()
	}

	s.id = desc.ID
	if s.id == "" {
		s.id = fmt.Sprintf("%s:%d", s.ip, s.portClient)
	}

	return s, nil
}

// ID returns the endpoint's unique handle.
func (s *Server) ID() string { return s.id }

// IP returns the validated IP literal, without brackets for IPv6.
func (s *Server) IP() string { return s.ip }

// PortClient returns the port players connect to. ok is false when
// the host specification carried no port.
func (s *Server) PortClient() (port int, ok bool) {
	return s.portClient, s.hasClient
}

// PortQuery returns the port status queries are sent to. Always set
// after construction.
func (s *Server) PortQuery() int { return s.portQuery }

// Protocol returns the bound protocol handler.
func (s *Server) Protocol() protocol.Handler { return s.handler }

// SetOption stores an option value and returns the Server for
// chaining. Values are not validated.
func (s *Server) SetOption(key string, value any) *Server {
	s.opts[key] = value
	return s
}

// GetOption returns the option stored under key, or nil.
func (s *Server) GetOption(key string) any {
	return s.opts[key]
}

// MasterServerPort returns the master_server_port option, if set to a
// coercible value.
func (s *Server) MasterServerPort() (int, bool) {
	if !optionPresent(s.opts, OptionMasterServerPort) {
		return 0, false
	}
	return coerceInt(s.opts[OptionMasterServerPort])
}

// JoinLink formats the protocol's join-link template with the
// endpoint's IP and client port. Requires a client port; protocols
// without a join-link convention return ErrNoJoinLink.
func (s *Server) JoinLink() (string, error) {
	tmpl := s.handler.JoinLinkTemplate()
	if tmpl == "" {
		return "", fmt.Errorf("%w: %s", ErrNoJoinLink, s.handler.Name())
	}
	if !s.hasClient {
		return "", fmt.Errorf("%w: join link for %s", ErrMissingClientPort, s.id)
	}
	return fmt.Sprintf(tmpl, s.ip, s.portClient), nil
}

// SocketAdd hands a handle to the endpoint's reuse pool.
func (s *Server) SocketAdd(h SocketHandle) {
	s.pool.Add(h)
}

// SocketGet borrows the most recently pooled handle, or nil when the
// pool is empty.
func (s *Server) SocketGet() SocketHandle {
	return s.pool.Get()
}

// SocketCleanse closes every pooled handle and empties the pool.
// Called on endpoint teardown so no socket leaks past the endpoint's
// lifetime.
func (s *Server) SocketCleanse() {
	s.pool.Cleanse()
}

// String returns the endpoint's id.
func (s *Server) String() string { return s.id }
