package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerFollowsActiveState(t *testing.T) {
	ticks := make(chan time.Time, 100)

	ticker := NewTicker(5*time.Millisecond, func(now time.Time) {
		ticks <- now
	})

	assert.False(t, ticker.Running())

	ticker.Sync(true)
	ticker.Sync(true)
	assert.True(t, ticker.Running())

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("expected a tick while the session is active")
	}

	ticker.Sync(false)
	assert.False(t, ticker.Running())

	// allow a callback that was already in flight to land
	time.Sleep(20 * time.Millisecond)

	for len(ticks) > 0 {
		<-ticks
	}

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, ticks, "no ticks after the ticker was stopped")

	ticker.Stop()
}
