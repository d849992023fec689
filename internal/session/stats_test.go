package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/spatial"
)

const day = int64(86400)

func visitAt(lon float64, ts int64, place, city string, minutes float64) models.Visit {
	return models.Visit{
		Coordinates:     [2]float64{lon, 10},
		Timestamp:       ts,
		PlaceName:       place,
		City:            city,
		DurationMinutes: minutes,
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, models.WindowStats{}, ComputeStats(nil, 500, 7))
}

func TestComputeStatsUniqueCounts(t *testing.T) {
	visits := []models.Visit{
		visitAt(0.01, 100, "Home", "Berlin", 60),
		visitAt(0.02, 200, "Cafe", "Berlin", 30),
		visitAt(0.03, 300, "Home", "Paris", 90),
		visitAt(0.04, 400, "", "", 15), // unlabeled still counts time
	}

	stats := ComputeStats(visits, 500, 7)
	assert.Equal(t, 2, stats.Places)
	assert.Equal(t, 2, stats.Cities)
	assert.InDelta(t, 3.25, stats.Hours, 1e-9)
}

func TestComputeStatsDistanceSkipsGapsAndOutliers(t *testing.T) {
	// Daily commute legs, then a 10-day data gap, then a cross-continent
	// sensor artifact, then one more ordinary leg
	a := visitAt(0, 0, "", "", 0)
	b := visitAt(1, 1*day, "", "", 0)
	c := visitAt(2, 2*day, "", "", 0)
	d := visitAt(3, 12*day, "", "", 0)    // 10 days after c: gap
	e := visitAt(50, 13*day, "", "", 0)   // ~5200 km from d: artifact
	f := visitAt(50.5, 14*day, "", "", 0) // ordinary leg again

	stats := ComputeStats([]models.Visit{a, b, c, d, e, f}, 500, 7)

	want := spatial.DistanceKm(a.Coordinates, b.Coordinates) +
		spatial.DistanceKm(b.Coordinates, c.Coordinates) +
		spatial.DistanceKm(e.Coordinates, f.Coordinates)
	assert.InDelta(t, want, stats.Kilometers, 1e-6)
}

func TestComputeStatsSingleVisitHasNoDistance(t *testing.T) {
	stats := ComputeStats([]models.Visit{visitAt(0.01, 100, "Home", "Berlin", 10)}, 500, 7)
	assert.Zero(t, stats.Kilometers)
	assert.Equal(t, 1, stats.Places)
}
