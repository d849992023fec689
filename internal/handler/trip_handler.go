package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/service"
	"github.com/ramamani14-hue/sharat-lifemap/pkg/response"
)

// TripHandler handles HTTP requests for trips and visits
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	var window models.WindowFilter
	var page models.PageFilter
	if err := c.ShouldBindQuery(&window); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	response.Success(c, h.service.GetTrips(window, page))
}

// GetVisits handles GET /api/v1/visits
func (h *TripHandler) GetVisits(c *gin.Context) {
	var window models.WindowFilter
	var page models.PageFilter
	if err := c.ShouldBindQuery(&window); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	response.Success(c, h.service.GetVisits(window, page))
}
