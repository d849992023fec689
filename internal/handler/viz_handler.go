package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/service"
	"github.com/ramamani14-hue/sharat-lifemap/pkg/response"
)

// VizHandler handles HTTP requests for visualization data
type VizHandler struct {
	service *service.VizService
}

// NewVizHandler creates a new visualization handler
func NewVizHandler(service *service.VizService) *VizHandler {
	return &VizHandler{service: service}
}

// GetPaths handles GET /api/v1/viz/paths
func (h *VizHandler) GetPaths(c *gin.Context) {
	var filter models.VizFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	if filter.Mode == "day" && filter.Date == "" {
		response.BadRequest(c, "day mode requires a date parameter", nil)
		return
	}

	paths, err := h.service.GetPaths(filter)
	if err != nil {
		response.BadRequest(c, "Failed to build paths", err)
		return
	}

	response.Success(c, gin.H{
		"data":  paths,
		"count": len(paths),
	})
}

// GetGrid handles GET /api/v1/viz/grid
func (h *VizHandler) GetGrid(c *gin.Context) {
	var filter models.VizFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	grid := h.service.GetGrid(filter)
	response.Success(c, gin.H{
		"data":  grid,
		"count": len(grid.Cells),
	})
}

// GetArcs handles GET /api/v1/viz/arcs
func (h *VizHandler) GetArcs(c *gin.Context) {
	var filter models.WindowFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	arcs := h.service.GetArcs(filter)
	response.Success(c, gin.H{
		"data":  arcs,
		"count": len(arcs),
	})
}
