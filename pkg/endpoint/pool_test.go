package endpoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingHandle counts its closes and can be made to fail.
type recordingHandle struct {
	closed   int
	closeErr error
}

func (h *recordingHandle) Close() error {
	h.closed++
	return h.closeErr
}

func TestSocketPool_LIFO(t *testing.T) {
	p := NewSocketPool()
	a := &recordingHandle{}
	b := &recordingHandle{}

	p.Add(a)
	p.Add(b)

	assert.Same(t, b, p.Get())
	assert.Same(t, a, p.Get())
	assert.Nil(t, p.Get())
}

func TestSocketPool_AddNil(t *testing.T) {
	p := NewSocketPool()
	p.Add(nil)
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Get())
}

func TestSocketPool_Cleanse(t *testing.T) {
	p := NewSocketPool()
	handles := []*recordingHandle{{}, {}, {}}
	for _, h := range handles {
		p.Add(h)
	}

	p.Cleanse()

	for i, h := range handles {
		assert.Equal(t, 1, h.closed, "handle %d", i)
	}
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Get())
}

func TestSocketPool_CleanseBestEffort(t *testing.T) {
	p := NewSocketPool()
	bad := &recordingHandle{closeErr: errors.New("already closed")}
	good := &recordingHandle{}
	p.Add(bad)
	p.Add(good)

	// A failing close must not stop the sweep.
	p.Cleanse()

	assert.Equal(t, 1, bad.closed)
	assert.Equal(t, 1, good.closed)
}

func TestSocketPool_CleanseEmptyIsNoop(t *testing.T) {
	p := NewSocketPool()
	p.Cleanse()
	p.Cleanse()
	assert.Equal(t, 0, p.Len())
}

func TestSocketPool_CleanseDoesNotDoubleClose(t *testing.T) {
	p := NewSocketPool()
	h := &recordingHandle{}
	p.Add(h)

	p.Cleanse()
	p.Cleanse()

	assert.Equal(t, 1, h.closed)
}
