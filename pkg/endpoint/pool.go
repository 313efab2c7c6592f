package endpoint

import "sync"

// SocketHandle is an open network handle owned by a socket pool.
// Close must be safe to call more than once.
type SocketHandle interface {
	Close() error
}

// SocketPool caches open sockets for one endpoint so repeated query
// rounds can reuse connections instead of reopening them. Reuse is
// LIFO: Get returns the most recently added handle.
//
// The pool carries its own lock, but it does no staleness or health
// checking; callers verify a handle is still usable before reuse.
type SocketPool struct {
	mu      sync.Mutex
	handles []SocketHandle
}

// NewSocketPool creates an empty pool.
func NewSocketPool() *SocketPool {
	return &SocketPool{}
}

// Add appends a handle to the pool. The pool owns the handle until it
// is retrieved with Get or closed by Cleanse. Nil handles are ignored.
func (p *SocketPool) Add(h SocketHandle) {
	if h == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handles = append(p.handles, h)
}

// Get removes and returns the most recently added handle, or nil when
// the pool is empty. The caller becomes the handle's owner.
func (p *SocketPool) Get() SocketHandle {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := len(p.handles)
	if n == 0 {
		return nil
	}
	h := p.handles[n-1]
	p.handles[n-1] = nil
	p.handles = p.handles[:n-1]
	return h
}

// Len returns the number of pooled handles.
func (p *SocketPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.handles)
}

// Cleanse closes every pooled handle and empties the pool. Each close
// is best-effort: a failing handle does not stop the sweep. Cleansing
// an empty pool is a no-op.
func (p *SocketPool) Cleanse() {
	p.mu.Lock()
	handles := p.handles
	p.handles = nil
	p.mu.Unlock()

	for _, h := range handles {
		_ = h.Close()
	}
}
