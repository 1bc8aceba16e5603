package process

import "time"

// SetClock replaces the runner's clock.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}
