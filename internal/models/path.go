package models

// SmoothedPath is a densified trip polyline with per-point virtual
// timestamps for playback. Rebuilt wholesale on every window change,
// never mutated in place.
type SmoothedPath struct {
	Points            [][2]float64 `json:"points"`            // [lon, lat]
	VirtualTimestamps []float64    `json:"virtualTimestamps"` // non-decreasing, same length as Points
	ActivityType      string       `json:"activityType,omitempty"`
}
