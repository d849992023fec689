package aggregate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

// DefaultCellSizeDeg is roughly a 5 km cell at mid latitudes
const DefaultCellSizeDeg = 0.05

// PointObservation is a single labeled point fed into the aggregator
type PointObservation struct {
	Coordinates [2]float64 // [lon, lat]
	Label       string     // Place label, may be empty
}

type cellKey struct {
	x, y int
}

// Aggregate buckets point observations into fixed-size grid cells, keyed by
// floor(coord/cellSize) independently per axis. Cells are built fresh on
// every pass, so render cost is O(distinct cells) and counts can never go
// stale. Results are sorted by descending count.
func Aggregate(points []PointObservation, cellSizeDeg float64) []models.GridCell {
	if cellSizeDeg <= 0 {
		cellSizeDeg = DefaultCellSizeDeg
	}

	cellMap := make(map[cellKey]*models.GridCell)
	for _, p := range points {
		key := cellKey{
			x: int(math.Floor(p.Coordinates[0] / cellSizeDeg)),
			y: int(math.Floor(p.Coordinates[1] / cellSizeDeg)),
		}

		cell, exists := cellMap[key]
		if !exists {
			cell = &models.GridCell{
				X: key.x,
				Y: key.y,
				Position: [2]float64{
					(float64(key.x) + 0.5) * cellSizeDeg,
					(float64(key.y) + 0.5) * cellSizeDeg,
				},
				LocationHistogram: make(map[string]int),
			}
			cellMap[key] = cell
		}

		cell.Count++
		if p.Label != "" {
			cell.LocationHistogram[p.Label]++
		}
	}

	cells := make([]models.GridCell, 0, len(cellMap))
	counts := make([]float64, 0, len(cellMap))
	for _, cell := range cellMap {
		cell.TopLocation, cell.TopLocationCount = topLabel(cell.LocationHistogram)
		cells = append(cells, *cell)
		counts = append(counts, float64(cell.Count))
	}

	// Density score is the cell's rank within this pass's count distribution
	sort.Float64s(counts)
	for i := range cells {
		cells[i].DensityScore = stat.CDF(float64(cells[i].Count), stat.Empirical, counts, nil)
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Count != cells[j].Count {
			return cells[i].Count > cells[j].Count
		}
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})

	return cells
}

// topLabel selects the highest-frequency non-empty label, breaking ties
// lexicographically so the result is deterministic
func topLabel(histogram map[string]int) (string, int) {
	var top string
	var topCount int
	for label, count := range histogram {
		if count > topCount || (count == topCount && top != "" && label < top) {
			top = label
			topCount = count
		}
	}
	return top, topCount
}
