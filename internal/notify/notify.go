// Package notify implements the notification center: a single visible
// notification slot with an auto-hide timer. Each notification gets a
// monotonic id and a newer notification supersedes any pending
// dismissal, so an old hide timer can never clobber a newer message.
package notify

import (
	"sync"
	"time"

	"github.com/youriscent/storefront/internal/ui"
)

// Center owns the single notification slot. It implements ui.Notifier
// and fans out to the display sink.
type Center struct {
	sink      ui.Notifier
	hideDelay time.Duration

	mu      sync.Mutex
	current int64
	timer   *time.Timer
}

// NewCenter creates a notification center that auto-hides each message
// after hideDelay.
func NewCenter(sink ui.Notifier, hideDelay time.Duration) *Center {
	return &Center{
		sink:      sink,
		hideDelay: hideDelay,
	}
}

// Show displays a message and schedules its dismissal. A pending
// dismissal for an earlier message is cancelled.
func (c *Center) Show(message string, severity ui.Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current++
	id := c.current

	if c.timer != nil {
		c.timer.Stop()
	}

	c.sink.Show(message, severity)

	c.timer = time.AfterFunc(c.hideDelay, func() {
		c.hide(id)
	})
}

// Hide dismisses whatever is currently shown.
func (c *Center) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.sink.Hide()
}

func (c *Center) hide(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer notification owns the slot now.
	if id != c.current {
		return
	}
	c.sink.Hide()
	c.timer = nil
}
