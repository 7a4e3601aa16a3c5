package windowing

import "time"

// frameLimiter paces presents to a fixed rate. Vsync usually makes the
// sleep here a no-op; it matters on displays not running at the target
// rate and on software renderers.
type frameLimiter struct {
	perFrame time.Duration
	last     time.Time
}

func (l *frameLimiter) setRate(hz int) {
	if hz <= 0 {
		l.perFrame = 0
		return
	}
	l.perFrame = time.Second / time.Duration(hz)
	l.last = time.Now()
}

func (l *frameLimiter) wait() {
	if l.perFrame == 0 {
		return
	}
	if elapsed := time.Since(l.last); elapsed < l.perFrame {
		time.Sleep(l.perFrame - elapsed)
	}
	l.last = time.Now()
}
