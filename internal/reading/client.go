package reading

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/bibleread/core/position"
)

// queue is shared by every Client cloned from one Launch.
type queue struct {
	mu       sync.RWMutex
	requests chan request
	done     chan struct{}
	refs     int
	closed   bool
}

// enqueue never blocks. Holding the read lock across the send keeps
// release from closing the channel underneath it.
func (q *queue) enqueue(req request) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return &Error{Op: req.op.String(), Kind: ErrClosed}
	}
	select {
	case q.requests <- req:
		return nil
	default:
		return &Error{Op: req.op.String(), Kind: ErrOverloaded}
	}
}

func (q *queue) retain() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.refs++
	return true
}

func (q *queue) release() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.refs--
	if q.refs == 0 && !q.closed {
		q.closed = true
		close(q.requests)
	}
}

// Client is a handle on the actor. Every call is a synchronous round trip;
// a full queue fails immediately with ErrOverloaded. A Client is safe for
// concurrent use.
type Client struct {
	q        *queue
	released atomic.Bool
}

func (c *Client) call(o op, p position.Position) response {
	if c.released.Load() {
		return response{err: &Error{Op: o.String(), Kind: ErrClosed}}
	}
	req := request{
		id:    uuid.New(),
		op:    o,
		pos:   p,
		reply: make(chan response, 1),
	}
	if err := c.q.enqueue(req); err != nil {
		return response{err: err}
	}
	return <-req.reply
}

// GetFromFile reads the save file and makes it the current position.
// Failures wrap ErrFailedToGetSave and leave the current position alone.
func (c *Client) GetFromFile() (position.Position, error) {
	resp := c.call(opGetFromFile, position.Position{})
	return resp.pos, resp.err
}

// SetCurrent replaces the current position without touching the file. The
// position is checked against the actor's catalog; a zero or foreign
// position that fails the check is rejected with errors.ErrInvalidInput and
// the current position is left alone.
func (c *Client) SetCurrent(p position.Position) error {
	return c.call(opSetCurrent, p).err
}

// SaveToFile writes the current position, replacing the file. It fails with
// ErrNoDataToSave when no position has been set or loaded.
func (c *Client) SaveToFile() error {
	return c.call(opSaveToFile, position.Position{}).err
}

// GetCurrent returns the cell holding the current position.
func (c *Client) GetCurrent() (*Cell, error) {
	resp := c.call(opGetCurrent, position.Position{})
	return resp.cell, resp.err
}

// Clone returns another handle on the same actor. Cloning a closed Client
// returns a closed Client.
func (c *Client) Clone() *Client {
	clone := &Client{q: c.q}
	if c.released.Load() || !c.q.retain() {
		clone.released.Store(true)
	}
	return clone
}

// Close releases the handle. When the last handle is closed the actor
// finishes queued requests and exits. Close is idempotent.
func (c *Client) Close() {
	if c.released.CompareAndSwap(false, true) {
		c.q.release()
	}
}

// Done is closed once the actor has exited.
func (c *Client) Done() <-chan struct{} {
	return c.q.done
}
