package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/session"
)

func TestGetPathsColorsEveryPoint(t *testing.T) {
	svc := NewVizService(testSession())

	paths, err := svc.GetPaths(models.VizFilter{})
	require.NoError(t, err)
	require.Len(t, paths, 1)

	p := paths[0]
	assert.NotEmpty(t, p.Points)
	assert.Len(t, p.VirtualTimestamps, len(p.Points))
	assert.Len(t, p.Colors, len(p.Points))
	assert.Greater(t, p.LengthKm, 0.0)
}

func TestGetPathsDayModeRequiresValidDate(t *testing.T) {
	svc := NewVizService(testSession())

	_, err := svc.GetPaths(models.VizFilter{Mode: "day", Date: "garbage"})
	assert.Error(t, err)

	paths, err := svc.GetPaths(models.VizFilter{Mode: "day", Date: "1970-01-01"})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0].Colors, len(paths[0].Points))
}

func TestGetGridCustomCellSize(t *testing.T) {
	svc := NewVizService(testSession())

	grid := svc.GetGrid(models.VizFilter{})
	require.NotEmpty(t, grid.Cells)

	// A much coarser grid collapses the visits into fewer cells
	coarse := svc.GetGrid(models.VizFilter{CellSize: 10})
	assert.LessOrEqual(t, len(coarse.Cells), len(grid.Cells))

	var total int
	for _, c := range coarse.Cells {
		total += c.Count
	}
	assert.Equal(t, 250, total)
}

func TestGetGridViewportHints(t *testing.T) {
	svc := NewVizService(testSession())

	grid := svc.GetGrid(models.VizFilter{})

	// Visits span lon 0.01..0.259 at lat 0.01
	assert.InDelta(t, 0.01, grid.Bounds[0], 1e-9)
	assert.InDelta(t, 0.01, grid.Bounds[1], 1e-9)
	assert.InDelta(t, 0.259, grid.Bounds[2], 1e-9)
	assert.InDelta(t, 0.01, grid.Bounds[3], 1e-9)

	assert.InDelta(t, (0.01+0.259)/2, grid.Center[0], 1e-9)
	assert.InDelta(t, 0.01, grid.Center[1], 1e-9)
}

func TestGetArcsBearing(t *testing.T) {
	ds := &models.Dataset{
		Arcs: []models.Arc{
			// Due north
			{Origin: [2]float64{0, 0}, Dest: [2]float64{0, 1}, StartTime: 100, EndTime: 200},
		},
		Meta: models.Metadata{MinTimestamp: 0, MaxTimestamp: 1000},
	}
	svc := NewVizService(session.New(ds, session.DefaultOptions()))

	arcs := svc.GetArcs(models.WindowFilter{})
	require.Len(t, arcs, 1)
	assert.InDelta(t, 0, arcs[0].BearingDeg, 1e-6)
}
