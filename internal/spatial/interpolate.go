package spatial

// Lerp performs straight-line interpolation between two [lon, lat] points,
// t ∈ [0, 1]
func Lerp(a, b [2]float64, t float64) [2]float64 {
	return [2]float64{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
	}
}

// CatmullRom evaluates a uniform Catmull-Rom cubic through four control
// points, per axis independently, at t ∈ [0, 1]. The curve passes through
// p1 at t=0 and p2 at t=1. Callers at sequence boundaries mirror the missing
// neighbor to the nearest real point.
func CatmullRom(p0, p1, p2, p3 [2]float64, t float64) [2]float64 {
	t2 := t * t
	t3 := t2 * t

	eval := func(v0, v1, v2, v3 float64) float64 {
		return 0.5 * ((2 * v1) +
			(-v0+v2)*t +
			(2*v0-5*v1+4*v2-v3)*t2 +
			(-v0+3*v1-3*v2+v3)*t3)
	}

	return [2]float64{
		eval(p0[0], p1[0], p2[0], p3[0]),
		eval(p0[1], p1[1], p2[1], p3[1]),
	}
}
