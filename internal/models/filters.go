package models

// WindowFilter represents the shared [0,1] time-window query parameters.
// Pointer fields keep an absent parameter distinct from an explicit 0, so
// start=0&end=0 selects the defined empty window rather than everything.
type WindowFilter struct {
	Start *float64 `form:"start" json:"start"` // Window start fraction, default 0
	End   *float64 `form:"end" json:"end"`     // Window end fraction, default 1
}

// Window returns the filter as a TimeWindow; each absent bound falls back to
// the full-window default
func (f WindowFilter) Window() TimeWindow {
	w := FullWindow
	if f.Start != nil {
		w.Start = *f.Start
	}
	if f.End != nil {
		w.End = *f.End
	}
	return w.Clamped()
}

// PageFilter represents pagination query parameters
type PageFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize applies the default page and page size
func (f *PageFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 1000 {
		f.PageSize = 100
	}
}

// VizFilter represents filter parameters for visualization queries
type VizFilter struct {
	WindowFilter
	Mode     string  `form:"mode"`     // trips (default) or day
	Date     string  `form:"date"`     // YYYY-MM-DD, required for day mode
	CellSize float64 `form:"cellSize"` // Grid cell size in degrees
}
