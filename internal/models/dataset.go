package models

// Metadata holds the dataset's global time bounds
type Metadata struct {
	MinTimestamp int64 `json:"minTimestamp"` // Unix timestamp in seconds
	MaxTimestamp int64 `json:"maxTimestamp"`
}

// SpanSeconds returns the total dataset time span
func (m Metadata) SpanSeconds() int64 {
	return m.MaxTimestamp - m.MinTimestamp
}

// Arc represents a precomputed transition edge between two places
type Arc struct {
	Origin    [2]float64 `json:"origin"` // [lon, lat]
	Dest      [2]float64 `json:"dest"`
	StartTime int64      `json:"startTime"`
	EndTime   int64      `json:"endTime"`
	Mode      string     `json:"mode,omitempty"`
}

// Dataset is the in-memory location history as produced by the loader.
// Immutable once loaded; every derived structure is rebuilt from it.
type Dataset struct {
	Visits []Visit  `json:"visits"`
	Trips  []Trip   `json:"trips"`
	Arcs   []Arc    `json:"arcs"`
	Meta   Metadata `json:"metadata"`
}
