package clock

import (
	"sync"
	"time"
)

// Monotonic hands out strictly increasing UTC timestamps. Two records created
// back to back never share a creation time, so ordering by timestamp is the
// same as ordering by insertion.
type Monotonic struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func New() *Monotonic {
	return NewWithSource(time.Now)
}

func NewWithSource(now func() time.Time) *Monotonic {
	return &Monotonic{now: now}
}

func (c *Monotonic) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Microsecond precision survives a round trip through SQLite text columns.
	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
