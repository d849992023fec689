package models

// TripPoint represents a single timestamped waypoint within a trip
type TripPoint struct {
	Coordinates [2]float64 `json:"coordinates"` // [lon, lat]
	Timestamp   int64      `json:"timestamp"`   // Unix timestamp in seconds
}

// Trip represents one continuous movement segment between visits
type Trip struct {
	Path         []TripPoint `json:"path"`
	ActivityType string      `json:"activityType,omitempty"` // WALK, BIKE, CAR, TRAIN, FLIGHT
}

// StartTime returns the timestamp of the first waypoint, or 0 for an empty trip
func (t Trip) StartTime() int64 {
	if len(t.Path) == 0 {
		return 0
	}
	return t.Path[0].Timestamp
}

// EndTime returns the timestamp of the last waypoint, or 0 for an empty trip
func (t Trip) EndTime() int64 {
	if len(t.Path) == 0 {
		return 0
	}
	return t.Path[len(t.Path)-1].Timestamp
}

// DurationSeconds returns the wall-clock span of the trip
func (t Trip) DurationSeconds() int64 {
	return t.EndTime() - t.StartTime()
}

// Coordinates returns the trip's waypoint coordinates without timestamps
func (t Trip) Coordinates() [][2]float64 {
	coords := make([][2]float64, len(t.Path))
	for i, p := range t.Path {
		coords[i] = p.Coordinates
	}
	return coords
}

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []Trip `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
