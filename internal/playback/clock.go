package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

// State is the clock's lifecycle state
type State string

// Clock states
const (
	StateIdle    State = "IDLE"
	StateRunning State = "RUNNING"
	StatePaused  State = "PAUSED"
)

// Mode selects the playback duration and loop behavior
type Mode string

// Playback modes
const (
	// ModeRangeScrub plays the selected window once over 60s and halts
	ModeRangeScrub Mode = "RANGE_SCRUB"
	// ModeTrail loops a 10s comet-trail animation
	ModeTrail Mode = "TRAIL"
	// ModeDayReplay loops a 15s single-day trail animation
	ModeDayReplay Mode = "DAY_REPLAY"
)

// VirtualTimeSpan mirrors the timeline encoder's fixed virtual-time budget
const VirtualTimeSpan = 10000.0

func (m Mode) duration() time.Duration {
	switch m {
	case ModeTrail:
		return 10 * time.Second
	case ModeDayReplay:
		return 15 * time.Second
	default:
		return 60 * time.Second
	}
}

func (m Mode) loops() bool {
	return m == ModeTrail || m == ModeDayReplay
}

// Clock is the animation driver state machine. Progress advances linearly
// over the mode's fixed duration against an injected time source, so the
// machine is testable without a real frame scheduler.
type Clock struct {
	mu  sync.Mutex
	now func() time.Time

	mode      Mode
	state     State
	sessionID string

	// Captured animation bounds for the session
	window    models.TimeWindow
	hasWindow bool

	startedAt      time.Time
	frozenProgress float64
}

// NewClock creates an idle clock in the given mode. The now function is the
// clock's only time source.
func NewClock(mode Mode, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		now:   now,
		mode:  mode,
		state: StateIdle,
	}
}

// Start begins or resumes playback. On a fresh start the given window is
// captured as the session's animation bounds and progress resets to 0.
// Resuming recomputes the virtual start time so that real time elapsed
// while paused is excluded and progress never jumps.
func (c *Clock) Start(window models.TimeWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateRunning:
		return
	case StatePaused:
		c.startedAt = c.now().Add(-time.Duration(c.frozenProgress * float64(c.mode.duration())))
		c.state = StateRunning
	default:
		c.window = window.Clamped()
		c.hasWindow = true
		c.sessionID = uuid.NewString()
		c.frozenProgress = 0
		c.startedAt = c.now()
		c.state = StateRunning
	}
}

// Pause freezes the accumulated progress fraction
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return
	}
	c.frozenProgress = c.progressLocked()
	c.state = StatePaused
}

// Restart resets progress to 0 and re-enters Running, keeping the captured
// session bounds
func (c *Clock) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasWindow {
		return
	}
	c.frozenProgress = 0
	c.startedAt = c.now()
	c.state = StateRunning
}

// Stop clears the captured range and progress and returns to Idle
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateIdle
	c.hasWindow = false
	c.window = models.TimeWindow{}
	c.sessionID = ""
	c.frozenProgress = 0
}

// Progress returns the current playback fraction in [0, 1]. Looping modes
// wrap via modulo; the range-scrub mode clamps at 1 and halts there.
func (c *Clock) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progressLocked()
}

func (c *Clock) progressLocked() float64 {
	switch c.state {
	case StateIdle:
		return 0
	case StatePaused:
		return c.frozenProgress
	}

	elapsed := c.now().Sub(c.startedAt)
	p := float64(elapsed) / float64(c.mode.duration())
	if p < 0 {
		return 0
	}
	if c.mode.loops() {
		p -= float64(int(p))
		return p
	}
	if p > 1 {
		return 1
	}
	return p
}

// VirtualTime returns the clock's only output: a virtual time value in
// [0, VirtualTimeSpan] consumed by rendering to select the lit sub-path
func (c *Clock) VirtualTime() float64 {
	return c.Progress() * VirtualTimeSpan
}

// Snapshot returns the clock's externally visible state
func (c *Clock) Snapshot() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Status{
		State:       c.state,
		Mode:        c.mode,
		SessionID:   c.sessionID,
		Window:      c.window,
		Progress:    c.progressLocked(),
		VirtualTime: c.progressLocked() * VirtualTimeSpan,
	}
}

// Status is a point-in-time view of the clock
type Status struct {
	State       State             `json:"state"`
	Mode        Mode              `json:"mode"`
	SessionID   string            `json:"sessionId,omitempty"`
	Window      models.TimeWindow `json:"window"`
	Progress    float64           `json:"progress"`
	VirtualTime float64           `json:"virtualTime"`
}
