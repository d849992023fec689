package trajectory

import (
	"github.com/ramamani14-hue/sharat-lifemap/internal/spatial"
)

const (
	// VirtualTimeSpan is the fixed virtual-time budget the playback clock
	// scrubs through, regardless of the real window's length
	VirtualTimeSpan = 10000.0

	// minTripSpan keeps a very short trip visible and scrubbable
	minTripSpan = 150.0
)

// EncodeWallClock assigns virtual timestamps to a smoothed path by placing
// the trip's wall-clock span as a fractional window within the filtered time
// range and distributing points evenly across it. The result is
// non-decreasing and has the same length as points.
func EncodeWallClock(points [][2]float64, tripStart, tripEnd, winStart, winEnd int64) []float64 {
	if len(points) == 0 {
		return nil
	}

	span := float64(winEnd - winStart)
	var startFrac, endFrac float64
	if span > 0 {
		startFrac = clamp01(float64(tripStart-winStart) / span)
		endFrac = clamp01(float64(tripEnd-winStart) / span)
	}

	v0 := startFrac * VirtualTimeSpan
	v1 := endFrac * VirtualTimeSpan
	if v1-v0 < minTripSpan {
		v1 = v0 + minTripSpan
		if v1 > VirtualTimeSpan {
			v1 = VirtualTimeSpan
			v0 = VirtualTimeSpan - minTripSpan
		}
	}

	ts := make([]float64, len(points))
	if len(points) == 1 {
		ts[0] = v0
		return ts
	}
	for i := range points {
		ts[i] = v0 + (v1-v0)*float64(i)/float64(len(points)-1)
	}
	return ts
}

// EncodeByDistance assigns virtual timestamps proportional to cumulative
// traveled distance, normalized to [0, VirtualTimeSpan]. Equal virtual-time
// increments correspond to equal distance traveled, so fast legs are not
// visually instantaneous.
func EncodeByDistance(points [][2]float64) []float64 {
	if len(points) == 0 {
		return nil
	}

	cum := spatial.CumulativeDistancesKm(points)
	total := cum[len(cum)-1]

	ts := make([]float64, len(points))
	if total <= 0 {
		return ts
	}
	for i, d := range cum {
		ts[i] = d / total * VirtualTimeSpan
	}
	return ts
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
