package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailSlice(t *testing.T) {
	ts := []float64{0, 100, 200, 300, 400, 500}

	start, end := TrailSlice(ts, 350, 200)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	// Head timestamp equal to the virtual time is included
	start, end = TrailSlice(ts, 300, 200)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)
}

func TestTrailSliceBeforeFirstPoint(t *testing.T) {
	ts := []float64{100, 200, 300}
	start, end := TrailSlice(ts, 50, 200)
	assert.Equal(t, start, end)
}

func TestTrailSliceCoversWholePath(t *testing.T) {
	ts := []float64{0, 100, 200}
	start, end := TrailSlice(ts, 200, 1000)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestTrailSliceEmptyAndZeroLength(t *testing.T) {
	start, end := TrailSlice(nil, 100, 200)
	assert.Zero(t, start)
	assert.Zero(t, end)

	start, end = TrailSlice([]float64{1, 2}, 100, 0)
	assert.Zero(t, start)
	assert.Zero(t, end)
}

func TestTrailAlpha(t *testing.T) {
	assert.Equal(t, 1.0, TrailAlpha(500, 500, 200))
	assert.InDelta(t, 0.5, TrailAlpha(400, 500, 200), 1e-9)
	assert.Zero(t, TrailAlpha(300, 500, 200))

	// Points ahead of the head or beyond the tail are dark
	assert.Zero(t, TrailAlpha(600, 500, 200))
	assert.Zero(t, TrailAlpha(100, 500, 200))
	assert.Zero(t, TrailAlpha(500, 500, 0))
}
