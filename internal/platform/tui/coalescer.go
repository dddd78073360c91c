package tui

import (
	"sync"
	"time"
)

// Coalescer drops repeats of the same logical input that arrive within a
// window of the previous accepted one. Timestamps come from time.Now and
// are compared on the monotonic clock.
type Coalescer struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
	now    func() time.Time
}

// NewCoalescer creates a coalescer. A zero window accepts everything.
func NewCoalescer(window time.Duration) *Coalescer {
	return &Coalescer{
		window: window,
		last:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// Allow reports whether the input keyed by key should be delivered and, if
// so, records it.
func (c *Coalescer) Allow(key string) bool {
	if c == nil || c.window <= 0 {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if prev, ok := c.last[key]; ok && now.Sub(prev) < c.window {
		return false
	}
	c.last[key] = now
	return true
}

// Reset forgets all recorded inputs.
func (c *Coalescer) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.last)
}

// Window returns the coalescing window.
func (c *Coalescer) Window() time.Duration {
	if c == nil {
		return 0
	}
	return c.window
}
