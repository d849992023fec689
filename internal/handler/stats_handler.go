package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/service"
	"github.com/ramamani14-hue/sharat-lifemap/pkg/response"
)

// StatsHandler handles HTTP requests for statistics and chapters
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/v1/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	var filter models.WindowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	response.Success(c, h.service.GetStats(filter))
}

// GetChapters handles GET /api/v1/chapters
func (h *StatsHandler) GetChapters(c *gin.Context) {
	chapters := h.service.GetChapters()
	response.Success(c, gin.H{
		"data":  chapters,
		"count": len(chapters),
	})
}
