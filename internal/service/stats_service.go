package service

import (
	"github.com/ramamani14-hue/sharat-lifemap/internal/chapters"
	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/session"
)

// StatsService exposes window statistics and life chapters
type StatsService struct {
	session *session.Session

	// Chapters cover the whole dataset and never change after load
	chapters []models.Chapter
}

// NewStatsService creates a new stats service and detects chapters once
func NewStatsService(s *session.Session) *StatsService {
	return &StatsService{
		session:  s,
		chapters: chapters.Detect(s.Dataset().Visits),
	}
}

// GetStats returns the derived statistics for the requested window
func (s *StatsService) GetStats(filter models.WindowFilter) models.WindowStats {
	return s.session.Ensure(filter.Window()).Stats
}

// GetChapters returns the dataset's life chapters
func (s *StatsService) GetChapters() []models.Chapter {
	return s.chapters
}
