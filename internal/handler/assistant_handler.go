package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramamani14-hue/sharat-lifemap/internal/assistant"
	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/service"
	"github.com/ramamani14-hue/sharat-lifemap/pkg/response"
)

// AssistantHandler handles chat-assistant requests
type AssistantHandler struct {
	assistant *assistant.Assistant
	stats     *service.StatsService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(a *assistant.Assistant, stats *service.StatsService) *AssistantHandler {
	return &AssistantHandler{assistant: a, stats: stats}
}

type askRequest struct {
	Question string              `json:"question"`
	Stream   bool                `json:"stream"`
	Window   models.WindowFilter `json:"window"`
}

// Ask handles POST /api/v1/assistant/ask
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	if req.Question == "" {
		response.BadRequest(c, "question is required", nil)
		return
	}

	stats := h.stats.GetStats(req.Window)
	chapters := h.stats.GetChapters()

	if req.Stream {
		h.streamAnswer(c, req.Question, stats, chapters)
		return
	}

	answer, err := h.assistant.Ask(c.Request.Context(), req.Question, stats, chapters)
	if errors.Is(err, assistant.ErrNotConfigured) {
		response.Error(c, http.StatusServiceUnavailable, "Assistant is not configured", nil)
		return
	}
	if err != nil {
		response.InternalError(c, "Failed to get answer", err)
		return
	}

	response.Success(c, gin.H{"answer": answer})
}

func (h *AssistantHandler) streamAnswer(c *gin.Context, question string, stats models.WindowStats, chapters []models.Chapter) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	err := h.assistant.Stream(c.Request.Context(), question, stats, chapters, func(delta string) error {
		c.SSEvent("delta", delta)
		c.Writer.Flush()
		return nil
	})
	if errors.Is(err, assistant.ErrNotConfigured) {
		response.Error(c, http.StatusServiceUnavailable, "Assistant is not configured", nil)
		return
	}
	if err != nil {
		c.SSEvent("error", err.Error())
		c.Writer.Flush()
		return
	}
	c.SSEvent("done", "")
	c.Writer.Flush()
}
