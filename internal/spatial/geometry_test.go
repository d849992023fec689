package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	assert.Equal(t, [2]float64{}, Centroid(nil))

	points := [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.Equal(t, [2]float64{1, 1}, Centroid(points))
}

func TestBoundingBox(t *testing.T) {
	points := [][2]float64{{1, 5}, {-3, 2}, {4, -1}}
	minLon, minLat, maxLon, maxLat := BoundingBox(points)

	assert.Equal(t, -3.0, minLon)
	assert.Equal(t, -1.0, minLat)
	assert.Equal(t, 4.0, maxLon)
	assert.Equal(t, 5.0, maxLat)
}

func TestCumulativeDistancesKm(t *testing.T) {
	assert.Nil(t, CumulativeDistancesKm(nil))

	points := [][2]float64{{0, 0}, {1, 0}, {2, 0}}
	cum := CumulativeDistancesKm(points)

	assert.Len(t, cum, 3)
	assert.Zero(t, cum[0])
	assert.InDelta(t, cum[1]*2, cum[2], 1e-6)
	assert.InDelta(t, PathLengthKm(points), cum[2], 1e-9)
}

func TestPathLengthKmShortPaths(t *testing.T) {
	assert.Zero(t, PathLengthKm(nil))
	assert.Zero(t, PathLengthKm([][2]float64{{1, 1}}))
}
