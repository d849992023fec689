package session

import (
	"log"
	"sort"
	"sync/atomic"
	"time"

	"github.com/ramamani14-hue/sharat-lifemap/internal/aggregate"
	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/trajectory"
)

// Options carries the tunable thresholds of the derived computations.
// The gap/outlier thresholds are empirically tuned, so they stay
// configurable rather than hard-coded.
type Options struct {
	CellSizeDeg float64 // Grid cell size in degrees
	MaxHopKm    float64 // Hops longer than this are sensor artifacts, not travel
	MaxGapDays  int     // Visit pairs further apart than this are data gaps
}

// DefaultOptions returns the standard thresholds
func DefaultOptions() Options {
	return Options{
		CellSizeDeg: aggregate.DefaultCellSizeDeg,
		MaxHopKm:    500,
		MaxGapDays:  7,
	}
}

// Derived holds every structure computed from the dataset for one time
// window. It is immutable after construction and swapped in atomically, so
// a reader always sees a fully-consistent generation.
type Derived struct {
	Window  models.TimeWindow
	StartTS int64
	EndTS   int64

	Visits []models.Visit // window-filtered, chronological
	Trips  []models.Trip  // sanitized
	Arcs   []models.Arc   // window-filtered
	Paths  []models.SmoothedPath
	Cells  []models.GridCell
	Stats  models.WindowStats
}

// Session is the single explicit context object owning the active time
// window and all derived state. All recomputation is triggered by SetWindow
// and completes synchronously; there is no concurrent mutation.
type Session struct {
	dataset *models.Dataset
	opts    Options
	derived atomic.Pointer[Derived]
}

// New creates a session over an already-loaded dataset and computes the
// initial full-window generation
func New(dataset *models.Dataset, opts Options) *Session {
	if opts.CellSizeDeg <= 0 {
		opts.CellSizeDeg = aggregate.DefaultCellSizeDeg
	}
	if opts.MaxHopKm <= 0 {
		opts.MaxHopKm = 500
	}
	if opts.MaxGapDays <= 0 {
		opts.MaxGapDays = 7
	}

	s := &Session{dataset: dataset, opts: opts}
	s.SetWindow(models.FullWindow)
	return s
}

// Dataset returns the immutable raw dataset
func (s *Session) Dataset() *models.Dataset {
	return s.dataset
}

// Options returns the session thresholds
func (s *Session) Options() Options {
	return s.opts
}

// Derived returns the current derived generation
func (s *Session) Derived() *Derived {
	return s.derived.Load()
}

// Ensure returns the derived generation for the given window, recomputing
// only when the window differs from the current generation's
func (s *Session) Ensure(window models.TimeWindow) *Derived {
	d := s.derived.Load()
	if d != nil && d.Window == window.Clamped() {
		return d
	}
	return s.SetWindow(window)
}

// SetWindow recomputes every derived structure for the given window and
// swaps the new generation in atomically
func (s *Session) SetWindow(window models.TimeWindow) *Derived {
	start := time.Now()
	window = window.Clamped()
	startTS, endTS := window.Absolute(s.dataset.Meta)

	d := &Derived{
		Window:  window,
		StartTS: startTS,
		EndTS:   endTS,
	}

	d.Visits = filterVisits(s.dataset.Visits, startTS, endTS)
	d.Trips = trajectory.Sanitize(s.dataset.Trips, startTS, endTS)
	d.Arcs = filterArcs(s.dataset.Arcs, startTS, endTS)
	d.Paths = encodePaths(d.Trips, startTS, endTS)
	d.Cells = aggregate.Aggregate(visitObservations(d.Visits), s.opts.CellSizeDeg)
	d.Stats = ComputeStats(d.Visits, s.opts.MaxHopKm, s.opts.MaxGapDays)

	s.derived.Store(d)
	log.Printf("[Session] Recomputed window [%.3f, %.3f]: %d visits, %d trips, %d cells in %v",
		window.Start, window.End, len(d.Visits), len(d.Trips), len(d.Cells), time.Since(start))
	return d
}

// DayReplayPath merges one calendar day's sanitized trips into a single
// continuous trail with distance-proportional virtual timestamps. The date
// is interpreted in UTC.
func (s *Session) DayReplayPath(date string) (models.SmoothedPath, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.SmoothedPath{}, err
	}
	dayStart := day.Unix()
	dayEnd := day.Add(24 * time.Hour).Unix()

	trips := trajectory.Sanitize(s.dataset.Trips, dayStart, dayEnd)
	return trajectory.MergeAndSmooth(trips), nil
}

// filterVisits keeps visits inside the absolute window that carry usable
// geometry, sorted chronologically. Storage order is not guaranteed.
func filterVisits(visits []models.Visit, startTS, endTS int64) []models.Visit {
	out := make([]models.Visit, 0, len(visits))
	for _, v := range visits {
		if !v.HasCoordinates() {
			continue
		}
		if v.Timestamp < startTS || v.Timestamp > endTS {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}

func filterArcs(arcs []models.Arc, startTS, endTS int64) []models.Arc {
	out := make([]models.Arc, 0, len(arcs))
	for _, a := range arcs {
		if a.EndTime < startTS || a.StartTime > endTS {
			continue
		}
		out = append(out, a)
	}
	return out
}

// encodePaths smooths each sanitized trip and assigns wall-clock virtual
// timestamps within the filtered span
func encodePaths(trips []models.Trip, startTS, endTS int64) []models.SmoothedPath {
	paths := make([]models.SmoothedPath, 0, len(trips))
	for _, t := range trips {
		points := trajectory.Smooth(t.Coordinates())
		paths = append(paths, models.SmoothedPath{
			Points:            points,
			VirtualTimestamps: trajectory.EncodeWallClock(points, t.StartTime(), t.EndTime(), startTS, endTS),
			ActivityType:      t.ActivityType,
		})
	}
	return paths
}

func visitObservations(visits []models.Visit) []aggregate.PointObservation {
	obs := make([]aggregate.PointObservation, len(visits))
	for i, v := range visits {
		obs[i] = aggregate.PointObservation{
			Coordinates: v.Coordinates,
			Label:       v.Label(),
		}
	}
	return obs
}
