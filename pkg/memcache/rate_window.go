package mem

import (
	"sync"
	"time"
)

// RateWindow admits at most maxCalls events per rolling interval. Callers
// that are over the limit are rejected, not blocked. Timestamps come from
// time.Now, which carries the monotonic clock, so wall-clock jumps do not
// corrupt the window.
type RateWindow struct {
	mu       sync.Mutex
	maxCalls int
	interval time.Duration
	stamps   []time.Time
	now      func() time.Time
}

func NewRateWindow(maxCalls int, interval time.Duration) *RateWindow {
	if maxCalls < 1 {
		maxCalls = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &RateWindow{
		maxCalls: maxCalls,
		interval: interval,
		now:      time.Now,
	}
}

// Allow reports whether one more call may proceed, recording it if so.
func (w *RateWindow) Allow() bool {
	now := w.now()
	w.mu.Lock()
	defer w.mu.Unlock()

	cut := 0
	for cut < len(w.stamps) && now.Sub(w.stamps[cut]) > w.interval {
		cut++
	}
	if cut > 0 {
		w.stamps = w.stamps[cut:]
	}
	if len(w.stamps) >= w.maxCalls {
		return false
	}
	w.stamps = append(w.stamps, now)
	return true
}
