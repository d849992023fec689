package models

// Visit represents a discrete dwell event at a location
type Visit struct {
	Coordinates     [2]float64 `json:"coordinates"` // [lon, lat]
	Timestamp       int64      `json:"timestamp"`   // Unix timestamp in seconds
	DurationMinutes float64    `json:"durationMinutes"`
	City            string     `json:"city,omitempty"`
	Country         string     `json:"country,omitempty"`
	Address         string     `json:"address,omitempty"`
	PlaceName       string     `json:"placeName,omitempty"`
	SemanticType    string     `json:"semanticType,omitempty"` // HOME, WORK, TRANSIT, VISIT, UNKNOWN
}

// HasCoordinates reports whether the visit carries usable geometry.
// A (0,0) pair is treated as missing; real records never sit on Null Island.
func (v Visit) HasCoordinates() bool {
	return v.Coordinates[0] != 0 || v.Coordinates[1] != 0
}

// Label returns the best available place label for aggregation
func (v Visit) Label() string {
	if v.PlaceName != "" {
		return v.PlaceName
	}
	if v.City != "" {
		return v.City
	}
	return ""
}

// VisitsResponse represents a paginated response of visits
type VisitsResponse struct {
	Data       []Visit `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}
