package models

// WindowStats represents derived statistics for the active time window
type WindowStats struct {
	Places     int     `json:"places"`     // Distinct place names
	Cities     int     `json:"cities"`     // Distinct cities
	Kilometers float64 `json:"kilometers"` // Total travel distance between consecutive visits
	Hours      float64 `json:"hours"`      // Total dwell time
}

// Chapter represents a detected life chapter: a run of months sharing the
// same dominant city
type Chapter struct {
	City           string `json:"city"`
	StartTimestamp int64  `json:"startTimestamp"`
	EndTimestamp   int64  `json:"endTimestamp"`
	Months         int    `json:"months"`
	VisitCount     int    `json:"visitCount"`
}
