package socket

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Info is a diagnostic snapshot of a socket.
type Info struct {
	// ID is the socket's unique identifier.
	ID string `json:"id"`

	// Network is the dialed network ("udp" or "tcp").
	Network string `json:"network"`

	// RemoteAddr is the dialed address.
	RemoteAddr string `json:"remoteAddr"`

	// OpenedAt is when the socket was dialed.
	OpenedAt time.Time `json:"openedAt"`
}

// Socket is an open connection to a game server's query port. It
// implements the handle contract expected by endpoint socket pools:
// Close is safe to call any number of times.
type Socket struct {
	id       string
	network  string
	conn     net.Conn
	openedAt time.Time

	closeOnce sync.Once
	closeErr  error
}

// Dial opens a socket over network ("udp" or "tcp") to addr. The
// context bounds the dial; it does not bound later reads or writes,
// which the query engine controls with deadlines on Conn.
func Dial(ctx context.Context, network, addr string) (*Socket, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s %s: %w", network, addr, err)
	}
	return Wrap(network, conn), nil
}

// Wrap adopts an already-open connection as a Socket.
func Wrap(network string, conn net.Conn) *Socket {
	return &Socket{
		id:       uuid.New().String(),
		network:  network,
		conn:     conn,
		openedAt: time.Now(),
	}
}

// ID returns the socket's unique identifier.
func (s *Socket) ID() string { return s.id }

// Conn returns the underlying connection for the query engine's
// reads and writes.
func (s *Socket) Conn() net.Conn { return s.conn }

// Info returns a diagnostic snapshot.
func (s *Socket) Info() Info {
	return Info{
		ID:         s.id,
		Network:    s.network,
		RemoteAddr: s.conn.RemoteAddr().String(),
		OpenedAt:   s.openedAt,
	}
}

// Close closes the underlying connection. Subsequent calls are no-ops
// returning the first close's error.
func (s *Socket) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}
