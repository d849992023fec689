package service

import (
	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/session"
)

// TripService exposes the window's sanitized trips
type TripService struct {
	session *session.Session
}

// NewTripService creates a new trip service
func NewTripService(s *session.Session) *TripService {
	return &TripService{session: s}
}

// GetTrips returns a page of sanitized trips for the requested window
func (s *TripService) GetTrips(window models.WindowFilter, page models.PageFilter) models.TripsResponse {
	page.Normalize()
	d := s.session.Ensure(window.Window())

	data, total, totalPages := paginate(d.Trips, page)
	return models.TripsResponse{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
	}
}

// GetVisits returns a page of window-filtered visits
func (s *TripService) GetVisits(window models.WindowFilter, page models.PageFilter) models.VisitsResponse {
	page.Normalize()
	d := s.session.Ensure(window.Window())

	data, total, totalPages := paginate(d.Visits, page)
	return models.VisitsResponse{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
	}
}

// paginate slices one page out of items
func paginate[T any](items []T, page models.PageFilter) ([]T, int64, int) {
	total := int64(len(items))
	totalPages := (len(items) + page.PageSize - 1) / page.PageSize

	start := (page.Page - 1) * page.PageSize
	if start >= len(items) {
		return []T{}, total, totalPages
	}
	end := start + page.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, totalPages
}
