package trajectory

import (
	"sort"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

// Raw trip extraction routinely produces overlapping duplicate segments from
// different source signals. Two surviving trips may never overlap by more
// than this fraction of either trip's duration; the richer (more-sampled)
// trip wins so rendering artifacts are avoided without an identity signal.
const maxOverlapRatio = 0.5

// Sanitize filters trips to the absolute time range [startTS, endTS] and
// removes overlapping duplicates. Trips with fewer than 2 points are
// dropped silently. The result is sorted by start time.
func Sanitize(trips []models.Trip, startTS, endTS int64) []models.Trip {
	kept := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if len(t.Path) < 2 {
			continue
		}
		// Keep a trip iff its span intersects the window
		if t.EndTime() < startTS || t.StartTime() > endTS {
			continue
		}
		kept = append(kept, t)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].StartTime() < kept[j].StartTime()
	})

	discarded := make([]bool, len(kept))
	for i := range kept {
		if discarded[i] {
			continue
		}
		for j := i + 1; j < len(kept); j++ {
			if discarded[j] {
				continue
			}
			// The list is start-time sorted, so once a candidate starts
			// after the current trip ends no further overlap is possible
			if kept[j].StartTime() >= kept[i].EndTime() {
				break
			}
			if !excessiveOverlap(kept[i], kept[j]) {
				continue
			}
			// Keep the trip with more path points; ties keep the earlier one
			if len(kept[j].Path) > len(kept[i].Path) {
				discarded[i] = true
			} else {
				discarded[j] = true
			}
			if discarded[i] {
				break
			}
		}
	}

	result := make([]models.Trip, 0, len(kept))
	for i, t := range kept {
		if !discarded[i] {
			result = append(result, t)
		}
	}
	return result
}

// excessiveOverlap reports whether the overlapping duration of two trips
// exceeds half of either trip's own duration
func excessiveOverlap(a, b models.Trip) bool {
	overlapStart := max64(a.StartTime(), b.StartTime())
	overlapEnd := min64(a.EndTime(), b.EndTime())
	overlap := overlapEnd - overlapStart
	if overlap <= 0 {
		return false
	}

	if d := a.DurationSeconds(); d > 0 && float64(overlap)/float64(d) > maxOverlapRatio {
		return true
	}
	if d := b.DurationSeconds(); d > 0 && float64(overlap)/float64(d) > maxOverlapRatio {
		return true
	}
	return false
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
