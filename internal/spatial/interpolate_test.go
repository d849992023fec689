package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	a := [2]float64{0, 0}
	b := [2]float64{10, -4}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, [2]float64{5, -2}, Lerp(a, b, 0.5))
}

func TestCatmullRomEndpoints(t *testing.T) {
	p0 := [2]float64{-1, 0}
	p1 := [2]float64{0, 0}
	p2 := [2]float64{1, 1}
	p3 := [2]float64{2, 1}

	at0 := CatmullRom(p0, p1, p2, p3, 0)
	assert.InDelta(t, p1[0], at0[0], 1e-12)
	assert.InDelta(t, p1[1], at0[1], 1e-12)

	at1 := CatmullRom(p0, p1, p2, p3, 1)
	assert.InDelta(t, p2[0], at1[0], 1e-12)
	assert.InDelta(t, p2[1], at1[1], 1e-12)
}

func TestCatmullRomCollinear(t *testing.T) {
	// Evenly spaced collinear control points must stay on the line
	p0 := [2]float64{0, 0}
	p1 := [2]float64{1, 1}
	p2 := [2]float64{2, 2}
	p3 := [2]float64{3, 3}

	for _, tt := range []float64{0.25, 0.5, 0.75} {
		p := CatmullRom(p0, p1, p2, p3, tt)
		assert.InDelta(t, p[0], p[1], 1e-12)
		assert.InDelta(t, 1+tt, p[0], 1e-12)
	}
}
