package tracker

import (
	"sync"
	"time"
)

// Ticker calls a function at a fixed interval while a session is active.
// It only drives display refreshes and never mutates tracker state.
type Ticker struct {
	fn       func(time.Time)
	stop     chan struct{}
	interval time.Duration
	mu       sync.Mutex
}

// NewTicker returns a stopped ticker.
func NewTicker(interval time.Duration, fn func(time.Time)) *Ticker {
	return &Ticker{
		interval: interval,
		fn:       fn,
	}
}

// Sync starts the ticker when active is true and stops it otherwise.
// Calling it repeatedly with the same value has no further effect.
func (t *Ticker) Sync(active bool) {
	if active {
		t.start()
		return
	}

	t.Stop()
}

// Running reports whether the ticker is currently scheduled.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stop != nil
}

// Stop cancels the ticker. A callback already in flight is allowed to
// finish, so Stop is safe to call from code the callback is waiting on.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop == nil {
		return
	}

	close(t.stop)
	t.stop = nil
}

func (t *Ticker) start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return
	}

	stop := make(chan struct{})
	t.stop = stop

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				select {
				case <-stop:
					return
				default:
				}

				t.fn(now)
			}
		}
	}()
}
