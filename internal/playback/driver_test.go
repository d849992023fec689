package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

func TestDriverDeliversFrames(t *testing.T) {
	c := NewClock(ModeTrail, nil)
	c.Start(models.TimeWindow{})

	d := NewDriver(c, time.Millisecond)
	frames := make(chan float64, 64)
	d.Run(func(vt float64) {
		select {
		case frames <- vt:
		default:
		}
	})
	defer d.Stop()

	select {
	case vt := <-frames:
		assert.GreaterOrEqual(t, vt, 0.0)
		assert.LessOrEqual(t, vt, VirtualTimeSpan)
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
}

func TestDriverStopHaltsLoop(t *testing.T) {
	c := NewClock(ModeTrail, nil)
	c.Start(models.TimeWindow{})

	d := NewDriver(c, time.Millisecond)
	frames := make(chan float64, 64)
	d.Run(func(vt float64) {
		select {
		case frames <- vt:
		default:
		}
	})

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame before stop")
	}

	// Stop waits for the loop goroutine, so no frame arrives afterwards
	d.Stop()
	drained := len(frames)
	for i := 0; i < drained; i++ {
		<-frames
	}
	select {
	case <-frames:
		t.Fatal("frame delivered after Stop")
	case <-time.After(20 * time.Millisecond):
	}

	// Stop is idempotent
	d.Stop()
}

func TestDriverRunReplacesLoop(t *testing.T) {
	c := NewClock(ModeTrail, nil)
	c.Start(models.TimeWindow{})

	d := NewDriver(c, time.Millisecond)

	first := make(chan struct{}, 1)
	d.Run(func(float64) {
		select {
		case first <- struct{}{}:
		default:
		}
	})
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first loop never fired")
	}

	second := make(chan struct{}, 1)
	d.Run(func(float64) {
		select {
		case second <- struct{}{}:
		default:
		}
	})
	defer d.Stop()

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("replacement loop never fired")
	}

	// The first callback is no longer invoked once replaced
	for len(first) > 0 {
		<-first
	}
	select {
	case <-first:
		t.Fatal("old loop still running")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestNewDriverDefaultInterval(t *testing.T) {
	d := NewDriver(NewClock(ModeRangeScrub, nil), 0)
	require.Equal(t, DefaultFrameInterval, d.interval)
}
