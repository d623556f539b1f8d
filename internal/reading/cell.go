package reading

import (
	"sync"

	"github.com/FocuswithJustin/bibleread/core/position"
)

// Cell holds the current position. The actor is its only writer; callers
// get it from GetCurrent and read it with Load.
type Cell struct {
	mu  sync.RWMutex
	pos position.Position
	set bool
}

// Load returns the current position and whether one has been set.
func (c *Cell) Load() (position.Position, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pos, c.set
}

func (c *Cell) store(p position.Position) {
	c.mu.Lock()
	c.pos = p
	c.set = true
	c.mu.Unlock()
}
