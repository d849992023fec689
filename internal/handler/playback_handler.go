package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/playback"
	"github.com/ramamani14-hue/sharat-lifemap/internal/service"
	"github.com/ramamani14-hue/sharat-lifemap/pkg/response"
)

// PlaybackHandler handles playback clock commands and the frame stream
type PlaybackHandler struct {
	service *service.PlaybackService
}

// NewPlaybackHandler creates a new playback handler
func NewPlaybackHandler(service *service.PlaybackService) *PlaybackHandler {
	return &PlaybackHandler{service: service}
}

type startRequest struct {
	Mode   string            `json:"mode"` // range, trail, day
	Window models.TimeWindow `json:"window"`
}

// Start handles POST /api/v1/playback/start
func (h *PlaybackHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	var mode playback.Mode
	switch req.Mode {
	case "", "range":
		mode = playback.ModeRangeScrub
	case "trail":
		mode = playback.ModeTrail
	case "day":
		mode = playback.ModeDayReplay
	default:
		response.BadRequest(c, "Unknown playback mode", nil)
		return
	}

	response.Success(c, h.service.Start(mode, req.Window))
}

// Pause handles POST /api/v1/playback/pause
func (h *PlaybackHandler) Pause(c *gin.Context) {
	response.Success(c, h.service.Pause())
}

// Restart handles POST /api/v1/playback/restart
func (h *PlaybackHandler) Restart(c *gin.Context) {
	response.Success(c, h.service.Restart())
}

// Stop handles POST /api/v1/playback/stop
func (h *PlaybackHandler) Stop(c *gin.Context) {
	response.Success(c, h.service.Stop())
}

// State handles GET /api/v1/playback/state
func (h *PlaybackHandler) State(c *gin.Context) {
	response.Success(c, h.service.State())
}

// Stream handles GET /api/v1/playback/stream, pushing virtual-time frames
// over SSE until the client disconnects
func (h *PlaybackHandler) Stream(c *gin.Context) {
	frames, cancel := h.service.Subscribe()
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case vt, ok := <-frames:
			if !ok {
				return false
			}
			c.SSEvent("frame", gin.H{"virtualTime": vt})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
