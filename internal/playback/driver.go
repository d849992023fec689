package playback

import (
	"sync"
	"time"
)

// DefaultFrameInterval targets the interactive render cadence
const DefaultFrameInterval = 16 * time.Millisecond

// FrameFunc receives the clock's virtual time once per frame
type FrameFunc func(virtualTime float64)

// Driver runs the frame-callback loop for a clock. At most one loop is ever
// in flight: starting a new one first cancels the previous, and Stop halts
// the loop deterministically with no leaked goroutine.
type Driver struct {
	clock    *Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewDriver creates a driver for the given clock. A non-positive interval
// falls back to DefaultFrameInterval.
func NewDriver(clock *Clock, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Driver{clock: clock, interval: interval}
}

// Run starts the frame loop, cancelling any loop already in flight
func (d *Driver) Run(fn FrameFunc) {
	d.Stop()

	d.mu.Lock()
	stop := make(chan struct{})
	done := make(chan struct{})
	d.stop = stop
	d.done = done
	d.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fn(d.clock.VirtualTime())
			}
		}
	}()
}

// Stop cancels the in-flight frame loop, if any, and waits for it to exit
func (d *Driver) Stop() {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
