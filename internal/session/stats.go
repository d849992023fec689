package session

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/spatial"
)

// ComputeStats derives the window's scalar statistics from chronologically
// sorted visits. Total distance sums hops between consecutive visits, but
// skips pairs separated by more than maxGapDays (data gaps, not travel) and
// single hops above maxHopKm (sensor artifacts). This is a heuristic, not a
// physical guarantee.
func ComputeStats(visits []models.Visit, maxHopKm float64, maxGapDays int) models.WindowStats {
	stats := models.WindowStats{}
	if len(visits) == 0 {
		return stats
	}

	places := make(map[string]struct{})
	cities := make(map[string]struct{})
	var minutes float64
	hops := make([]float64, 0, len(visits))

	maxGapSeconds := int64(maxGapDays) * 86400
	for i, v := range visits {
		if v.PlaceName != "" {
			places[v.PlaceName] = struct{}{}
		}
		if v.City != "" {
			cities[v.City] = struct{}{}
		}
		minutes += v.DurationMinutes

		if i == 0 {
			continue
		}
		prev := visits[i-1]
		if v.Timestamp-prev.Timestamp > maxGapSeconds {
			continue
		}
		hop := spatial.DistanceKm(prev.Coordinates, v.Coordinates)
		if hop > maxHopKm {
			continue
		}
		hops = append(hops, hop)
	}

	stats.Places = len(places)
	stats.Cities = len(cities)
	stats.Kilometers = floats.Sum(hops)
	stats.Hours = minutes / 60
	return stats
}
