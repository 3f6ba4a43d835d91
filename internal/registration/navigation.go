package registration

import (
	"sync"
	"time"

	"github.com/nfrund/signup/internal/domain"
)

// TimerNavigator runs Go on a timer. It is used where the caller owns the
// navigation itself, like the CLI.
type TimerNavigator struct {
	Go func(path string)
}

// Navigate schedules Go(path) after the delay.
func (n TimerNavigator) Navigate(path string, after time.Duration) func() {
	t := time.AfterFunc(after, func() { n.Go(path) })
	return func() { t.Stop() }
}

// Capture records toasts and navigation requests instead of acting on them.
// Web handlers turn the captured values into the rendered response.
type Capture struct {
	mu     sync.Mutex
	toasts []domain.Toast
	path   string
	delay  time.Duration
}

// Notify records toast.
func (c *Capture) Notify(toast domain.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append(c.toasts, toast)
}

// Navigate records the target. Cancelling forgets it.
func (c *Capture) Navigate(path string, after time.Duration) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path, c.delay = path, after
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.path == path {
			c.path, c.delay = "", 0
		}
	}
}

// Toasts returns the recorded toasts in order.
func (c *Capture) Toasts() []domain.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Toast(nil), c.toasts...)
}

// Redirect returns the pending navigation target and delay.
func (c *Capture) Redirect() (string, time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path, c.delay, c.path != ""
}
