package render

// RGBA is a render-safe 4-channel color, each channel 0-255
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Gradient anchors: electric blue → neon purple → hot pink → electric orange,
// with slightly increasing alpha. Three linear segments partition [0,1].
var gradientAnchors = [4]RGBA{
	{R: 0, G: 200, B: 255, A: 180},
	{R: 190, G: 0, B: 255, A: 200},
	{R: 255, G: 20, B: 147, A: 225},
	{R: 255, G: 140, B: 0, A: 255},
}

// ColorFor maps a real timestamp, given the dataset's time bounds, to a color
// along the fixed gradient. Deterministic and pure: recoloring on a window
// change is recomputed per point without caching. A zero-length span maps
// everything to the gradient start.
func ColorFor(timestamp, minTime, maxTime int64) RGBA {
	var p float64
	if maxTime > minTime {
		p = float64(timestamp-minTime) / float64(maxTime-minTime)
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	const third = 1.0 / 3.0
	var from, to RGBA
	var t float64
	switch {
	case p < third:
		from, to = gradientAnchors[0], gradientAnchors[1]
		t = p / third
	case p < 2*third:
		from, to = gradientAnchors[1], gradientAnchors[2]
		t = (p - third) / third
	default:
		from, to = gradientAnchors[2], gradientAnchors[3]
		t = (p - 2*third) / third
	}

	return RGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: lerpChannel(from.A, to.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}
