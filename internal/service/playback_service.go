package service

import (
	"sync"
	"time"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/playback"
)

// PlaybackService owns the single active clock and its frame driver, and
// fans frames out to stream subscribers. Starting a new session always
// cancels the in-flight frame loop first, so no two loops ever run
// concurrently.
//
// The subscriber set has its own lock: broadcast runs on the frame
// goroutine, and Start/Stop wait for that goroutine to exit while holding
// mu, so broadcast must never need mu.
type PlaybackService struct {
	mu       sync.Mutex
	clock    *playback.Clock
	driver   *playback.Driver
	interval time.Duration

	subMu       sync.Mutex
	subscribers map[chan float64]struct{}
}

// NewPlaybackService creates a playback service with an idle range-scrub
// clock
func NewPlaybackService() *PlaybackService {
	return newPlaybackService(50 * time.Millisecond)
}

func newPlaybackService(interval time.Duration) *PlaybackService {
	s := &PlaybackService{
		interval:    interval,
		subscribers: make(map[chan float64]struct{}),
	}
	s.clock = playback.NewClock(playback.ModeRangeScrub, nil)
	s.driver = playback.NewDriver(s.clock, interval)
	return s
}

// Start begins playback of the given window in the given mode. A mode
// change replaces the clock; a paused clock in the same mode resumes.
func (s *PlaybackService) Start(mode playback.Mode, window models.TimeWindow) playback.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clock.Snapshot().Mode != mode {
		s.driver.Stop()
		s.clock = playback.NewClock(mode, nil)
		s.driver = playback.NewDriver(s.clock, s.interval)
	}

	s.clock.Start(window)
	s.driver.Run(s.broadcast)
	return s.clock.Snapshot()
}

// Pause freezes the clock; the frame loop keeps running so subscribers keep
// seeing the frozen virtual time
func (s *PlaybackService) Pause() playback.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Pause()
	return s.clock.Snapshot()
}

// Restart rewinds the current session to progress 0
func (s *PlaybackService) Restart() playback.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Restart()
	return s.clock.Snapshot()
}

// Stop halts the frame loop and resets the clock to idle
func (s *PlaybackService) Stop() playback.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.driver.Stop()
	s.clock.Stop()
	return s.clock.Snapshot()
}

// State returns the current clock status
func (s *PlaybackService) State() playback.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Snapshot()
}

// Subscribe registers a virtual-time frame channel. The returned cancel
// function must be called when the consumer goes away.
func (s *PlaybackService) Subscribe() (<-chan float64, func()) {
	ch := make(chan float64, 8)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subscribers, ch)
		s.subMu.Unlock()
	}
	return ch, cancel
}

// broadcast pushes one frame to every subscriber, dropping frames for slow
// consumers rather than blocking the loop
func (s *PlaybackService) broadcast(virtualTime float64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- virtualTime:
		default:
		}
	}
}
