package socket

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getgsq/gsq/pkg/endpoint"
)

// fakeConn is a net.Conn that records closes.
type fakeConn struct {
	net.Conn
	closes   int
	closeErr error
	remote   net.Addr
}

func (c *fakeConn) Close() error {
	c.closes++
	return c.closeErr
}

func (c *fakeConn) RemoteAddr() net.Addr { return c.remote }

func newFakeConn() *fakeConn {
	return &fakeConn{
		remote: &net.UDPAddr{IP: net.ParseIP("1.2.3.4"), Port: 27015},
	}
}

func TestWrap_Identity(t *testing.T) {
	a := Wrap("udp", newFakeConn())
	b := Wrap("udp", newFakeConn())

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.WithinDuration(t, time.Now(), a.Info().OpenedAt, time.Minute)
}

func TestSocket_Info(t *testing.T) {
	s := Wrap("udp", newFakeConn())

	info := s.Info()
	assert.Equal(t, s.ID(), info.ID)
	assert.Equal(t, "udp", info.Network)
	assert.Equal(t, "1.2.3.4:27015", info.RemoteAddr)
}

func TestSocket_CloseIdempotent(t *testing.T) {
	conn := newFakeConn()
	conn.closeErr = errors.New("reset")
	s := Wrap("udp", conn)

	err1 := s.Close()
	err2 := s.Close()

	assert.Equal(t, 1, conn.closes)
	require.Error(t, err1)
	assert.Equal(t, err1, err2)
}

// Socket must satisfy the pool's handle contract.
var _ endpoint.SocketHandle = (*Socket)(nil)

func TestSocket_PoolsAsHandle(t *testing.T) {
	conn := newFakeConn()
	s := Wrap("udp", conn)

	p := endpoint.NewSocketPool()
	p.Add(s)
	p.Cleanse()

	assert.Equal(t, 1, conn.closes)
}
