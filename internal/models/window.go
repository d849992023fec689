package models

// TimeWindow is a normalized [start, end] ⊆ [0, 1] selection over the
// dataset's time bounds. It is the single shared filtering parameter;
// changing it invalidates every derived structure.
type TimeWindow struct {
	Start float64 `json:"start" form:"start"`
	End   float64 `json:"end" form:"end"`
}

// FullWindow selects the entire dataset
var FullWindow = TimeWindow{Start: 0, End: 1}

// Clamped returns the window with both fractions forced into [0,1] and
// start <= end
func (w TimeWindow) Clamped() TimeWindow {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	s, e := clamp(w.Start), clamp(w.End)
	if s > e {
		s, e = e, s
	}
	return TimeWindow{Start: s, End: e}
}

// Absolute maps the fractional window onto the dataset's absolute time range
func (w TimeWindow) Absolute(meta Metadata) (startTS, endTS int64) {
	c := w.Clamped()
	span := float64(meta.SpanSeconds())
	startTS = meta.MinTimestamp + int64(c.Start*span)
	endTS = meta.MinTimestamp + int64(c.End*span)
	return startTS, endTS
}
