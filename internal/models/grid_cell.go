package models

// GridCell represents a spatial density bucket for large-scale rendering.
// Cells are built fresh on every aggregation pass so counts can never go
// stale when the time window changes.
type GridCell struct {
	// Cell identification
	X int `json:"x"` // floor(lon / cellSize)
	Y int `json:"y"` // floor(lat / cellSize)

	// Cell centroid
	Position [2]float64 `json:"position"` // [lon, lat]

	// Statistics
	Count             int            `json:"count"`
	LocationHistogram map[string]int `json:"locationHistogram,omitempty"`
	TopLocation       string         `json:"topLocation,omitempty"`
	TopLocationCount  int            `json:"topLocationCount,omitempty"`

	// Density rank within the current pass, normalized 0~1
	DensityScore float64 `json:"densityScore"`
}
