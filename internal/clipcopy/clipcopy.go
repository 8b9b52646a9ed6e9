// Package clipcopy copies text to the clipboard and exposes a transient
// "copied" flag that clears itself after ResetDelay.
package clipcopy

import (
	"time"

	"go.uber.org/zap"

	"github.com/csheth/shortlink/internal/schedule"
)

// ResetDelay is how long Copied stays true after the latest Copy.
const ResetDelay = 2000 * time.Millisecond

// Controller owns the copied flag. It must be used from the event loop only.
type Controller struct {
	writer Writer
	sched  schedule.Scheduler
	logger *zap.Logger

	copied bool
	reset  *schedule.Timer
}

// New returns a Controller. A nil logger discards clipboard failures.
func New(writer Writer, sched schedule.Scheduler, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{writer: writer, sched: sched, logger: logger}
}

// Copy writes text and raises the copied flag for ResetDelay. A second Copy
// inside the window restarts it. Write failures are logged, not surfaced.
func (c *Controller) Copy(text string) {
	if err := c.writer.WriteText(text); err != nil {
		c.logger.Warn("clipboard write failed", zap.Error(err))
	}
	c.copied = true
	c.reset.Cancel()
	c.reset = c.sched.After(ResetDelay, func() {
		c.copied = false
		c.reset = nil
	})
}

// Copied reports whether a copy happened within the last ResetDelay.
func (c *Controller) Copied() bool {
	return c.copied
}

// Reset lowers the flag immediately and drops any pending reset.
func (c *Controller) Reset() {
	c.reset.Cancel()
	c.reset = nil
	c.copied = false
}
