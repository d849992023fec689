package render

import "sort"

// TrailSlice selects the portion of a path "lit" behind the current virtual
// time: points whose virtual timestamp falls in
// (virtualTime-trailLength, virtualTime]. Returns the half-open index range
// [start, end) into the timestamp slice. Timestamps must be non-decreasing.
func TrailSlice(virtualTimestamps []float64, virtualTime, trailLength float64) (int, int) {
	if len(virtualTimestamps) == 0 || trailLength <= 0 {
		return 0, 0
	}

	end := sort.SearchFloat64s(virtualTimestamps, virtualTime)
	for end < len(virtualTimestamps) && virtualTimestamps[end] == virtualTime {
		end++
	}
	tail := virtualTime - trailLength
	start := sort.SearchFloat64s(virtualTimestamps[:end], tail)
	for start < end && virtualTimestamps[start] == tail {
		start++
	}
	return start, end
}

// TrailAlpha fades a trail point outward from the head: 1 at the current
// virtual time, 0 at the tail of the trail window
func TrailAlpha(pointTS, virtualTime, trailLength float64) float64 {
	if trailLength <= 0 {
		return 0
	}
	age := virtualTime - pointTS
	if age < 0 {
		return 0
	}
	if age > trailLength {
		return 0
	}
	return 1 - age/trailLength
}
