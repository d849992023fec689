package trajectory

import (
	"sort"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/spatial"
)

const (
	// Interpolation steps per segment scale with segment length, bounded
	// to keep the pass cheap on pathological inputs
	minSegmentSteps = 8
	maxSegmentSteps = 20

	// Two-point trips below this gap render fine as a bare segment;
	// above it they get a few linear sub-points
	shortGapKm = 0.2
)

// Smooth converts raw waypoints into a denser, curvature-smoothed polyline.
// Sequences of 2 points fall back to straight-line interpolation since a
// spline is undefined with too few control points.
func Smooth(points [][2]float64) [][2]float64 {
	switch {
	case len(points) < 2:
		out := make([][2]float64, len(points))
		copy(out, points)
		return out
	case len(points) == 2:
		return smoothPair(points[0], points[1])
	}

	out := make([][2]float64, 0, len(points)*minSegmentSteps)
	for i := 0; i < len(points)-1; i++ {
		// Mirror missing neighbors to the nearest real point so the curve
		// is defined at path start and end
		p0 := points[maxInt(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[minInt(i+2, len(points)-1)]

		steps := segmentSteps(spatial.DistanceKm(p1, p2))
		for j := 0; j < steps; j++ {
			t := float64(j) / float64(steps)
			out = append(out, spatial.CatmullRom(p0, p1, p2, p3, t))
		}
	}
	out = append(out, points[len(points)-1])
	return out
}

// smoothPair handles the 2-point case with 2-4 linear sub-points
func smoothPair(a, b [2]float64) [][2]float64 {
	gap := spatial.DistanceKm(a, b)
	if gap <= shortGapKm {
		return [][2]float64{a, b}
	}

	inner := 2 + int(gap/10)
	if inner > 4 {
		inner = 4
	}

	out := make([][2]float64, 0, inner+2)
	out = append(out, a)
	for j := 1; j <= inner; j++ {
		t := float64(j) / float64(inner+1)
		out = append(out, spatial.Lerp(a, b, t))
	}
	out = append(out, b)
	return out
}

// segmentSteps maps segment length to interpolation point density
func segmentSteps(distKm float64) int {
	steps := minSegmentSteps + int(distKm)
	if steps > maxSegmentSteps {
		steps = maxSegmentSteps
	}
	return steps
}

// MergeAndSmooth concatenates all of a day's trips in start-time order and
// smooths the full concatenation as one continuous trail. Virtual timestamps
// are derived from cumulative traveled distance instead of wall-clock time,
// giving uniform-looking motion speed across a day replay even though real
// dwell and travel durations vary wildly.
func MergeAndSmooth(trips []models.Trip) models.SmoothedPath {
	ordered := make([]models.Trip, len(trips))
	copy(ordered, trips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartTime() < ordered[j].StartTime()
	})

	var merged [][2]float64
	for _, t := range ordered {
		merged = append(merged, t.Coordinates()...)
	}

	points := Smooth(merged)
	return models.SmoothedPath{
		Points:            points,
		VirtualTimestamps: EncodeByDistance(points),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
