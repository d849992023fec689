package service

import (
	"github.com/ramamani14-hue/sharat-lifemap/internal/aggregate"
	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/render"
	"github.com/ramamani14-hue/sharat-lifemap/internal/session"
	"github.com/ramamani14-hue/sharat-lifemap/internal/spatial"
	"github.com/ramamani14-hue/sharat-lifemap/internal/trajectory"
)

// PathPayload is a smoothed path with per-point colors, ready for rendering
type PathPayload struct {
	Points            [][2]float64  `json:"points"`
	VirtualTimestamps []float64     `json:"virtualTimestamps"`
	Colors            []render.RGBA `json:"colors"`
	LengthKm          float64       `json:"lengthKm"`
	ActivityType      string        `json:"activityType,omitempty"`
}

// GridPayload is the density grid plus the viewport hints a map client needs
// to frame the filtered data
type GridPayload struct {
	Cells  []models.GridCell `json:"cells"`
	Bounds [4]float64        `json:"bounds"` // [minLon, minLat, maxLon, maxLat]
	Center [2]float64        `json:"center"`
}

// ArcPayload is a transition edge with its forward bearing for rendering
type ArcPayload struct {
	models.Arc
	BearingDeg float64 `json:"bearingDeg"`
}

// VizService prepares visualization payloads from the session's derived state
type VizService struct {
	session *session.Session
}

// NewVizService creates a new visualization service
func NewVizService(s *session.Session) *VizService {
	return &VizService{session: s}
}

// GetPaths returns the window's smoothed trip paths. In day mode it returns
// the single merged day-replay trail instead.
func (s *VizService) GetPaths(filter models.VizFilter) ([]PathPayload, error) {
	if filter.Mode == "day" {
		path, err := s.session.DayReplayPath(filter.Date)
		if err != nil {
			return nil, err
		}
		d := s.session.Ensure(filter.Window())
		return []PathPayload{s.colorize(path, d)}, nil
	}

	d := s.session.Ensure(filter.Window())
	payloads := make([]PathPayload, 0, len(d.Paths))
	for _, p := range d.Paths {
		payloads = append(payloads, s.colorize(p, d))
	}
	return payloads, nil
}

// colorize assigns each point a gradient color by mapping its virtual
// timestamp back onto the window's wall-clock span
func (s *VizService) colorize(p models.SmoothedPath, d *session.Derived) PathPayload {
	meta := s.session.Dataset().Meta
	span := float64(d.EndTS - d.StartTS)

	colors := make([]render.RGBA, len(p.Points))
	for i, vts := range p.VirtualTimestamps {
		wallTS := d.StartTS + int64(vts/trajectory.VirtualTimeSpan*span)
		colors[i] = render.ColorFor(wallTS, meta.MinTimestamp, meta.MaxTimestamp)
	}

	return PathPayload{
		Points:            p.Points,
		VirtualTimestamps: p.VirtualTimestamps,
		Colors:            colors,
		LengthKm:          spatial.PathLengthKm(p.Points),
		ActivityType:      p.ActivityType,
	}
}

// GetGrid returns the window's density grid with the filtered visits'
// bounding box and centroid. A non-default cell size triggers a fresh
// aggregation pass over the filtered visits.
func (s *VizService) GetGrid(filter models.VizFilter) GridPayload {
	d := s.session.Ensure(filter.Window())

	cells := d.Cells
	if filter.CellSize > 0 && filter.CellSize != s.session.Options().CellSizeDeg {
		obs := make([]aggregate.PointObservation, len(d.Visits))
		for i, v := range d.Visits {
			obs[i] = aggregate.PointObservation{Coordinates: v.Coordinates, Label: v.Label()}
		}
		cells = aggregate.Aggregate(obs, filter.CellSize)
	}

	coords := make([][2]float64, len(d.Visits))
	for i, v := range d.Visits {
		coords[i] = v.Coordinates
	}
	minLon, minLat, maxLon, maxLat := spatial.BoundingBox(coords)

	return GridPayload{
		Cells:  cells,
		Bounds: [4]float64{minLon, minLat, maxLon, maxLat},
		Center: spatial.Centroid(coords),
	}
}

// GetArcs returns the window's transition edges with forward bearings
func (s *VizService) GetArcs(filter models.WindowFilter) []ArcPayload {
	d := s.session.Ensure(filter.Window())
	out := make([]ArcPayload, 0, len(d.Arcs))
	for _, a := range d.Arcs {
		out = append(out, ArcPayload{
			Arc:        a,
			BearingDeg: spatial.Bearing(a.Origin[1], a.Origin[0], a.Dest[1], a.Dest[0]),
		})
	}
	return out
}
