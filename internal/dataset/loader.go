package dataset

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
)

// Load reads the four collections (visits, trips, arcs, metadata) from a
// sqlite dataset file produced by the export pipeline. The file is opened
// read-only; this process never writes user data.
func Load(path string) (*models.Dataset, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	ds := &models.Dataset{}

	if ds.Visits, err = loadVisits(db); err != nil {
		return nil, err
	}
	if ds.Trips, err = loadTrips(db); err != nil {
		return nil, err
	}
	if ds.Arcs, err = loadArcs(db); err != nil {
		return nil, err
	}
	if ds.Meta, err = loadMetadata(db); err != nil {
		return nil, err
	}

	// Fall back to the observed bounds when the export carries no metadata
	if ds.Meta.MinTimestamp == 0 && ds.Meta.MaxTimestamp == 0 {
		ds.Meta = observedBounds(ds)
	}

	log.Printf("[Dataset] Loaded %s: %d visits, %d trips, %d arcs, span [%d, %d]",
		path, len(ds.Visits), len(ds.Trips), len(ds.Arcs), ds.Meta.MinTimestamp, ds.Meta.MaxTimestamp)
	return ds, nil
}

func loadVisits(db *sql.DB) ([]models.Visit, error) {
	query := `
		SELECT lon, lat, timestamp, duration_minutes,
			city, country, address, place_name, semantic_type
		FROM visits
		ORDER BY timestamp
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	var visits []models.Visit
	for rows.Next() {
		var v models.Visit
		var duration sql.NullFloat64
		var city, country, address, placeName, semanticType sql.NullString

		if err := rows.Scan(&v.Coordinates[0], &v.Coordinates[1], &v.Timestamp,
			&duration, &city, &country, &address, &placeName, &semanticType); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}

		v.DurationMinutes = duration.Float64
		v.City = city.String
		v.Country = country.String
		v.Address = address.String
		v.PlaceName = placeName.String
		v.SemanticType = semanticType.String
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visits: %w", err)
	}
	return visits, nil
}

func loadTrips(db *sql.DB) ([]models.Trip, error) {
	query := `
		SELECT trip_id, lon, lat, timestamp, activity_type
		FROM trip_points
		ORDER BY trip_id, timestamp
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip points: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	var current models.Trip
	currentID := int64(-1)

	for rows.Next() {
		var tripID int64
		var p models.TripPoint
		var activity sql.NullString

		if err := rows.Scan(&tripID, &p.Coordinates[0], &p.Coordinates[1], &p.Timestamp, &activity); err != nil {
			return nil, fmt.Errorf("failed to scan trip point: %w", err)
		}

		if tripID != currentID {
			if currentID >= 0 {
				trips = append(trips, current)
			}
			currentID = tripID
			current = models.Trip{ActivityType: activity.String}
		}
		current.Path = append(current.Path, p)
	}
	if currentID >= 0 {
		trips = append(trips, current)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip points: %w", err)
	}
	return trips, nil
}

func loadArcs(db *sql.DB) ([]models.Arc, error) {
	query := `
		SELECT origin_lon, origin_lat, dest_lon, dest_lat,
			start_time, end_time, mode
		FROM arcs
		ORDER BY start_time
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query arcs: %w", err)
	}
	defer rows.Close()

	var arcs []models.Arc
	for rows.Next() {
		var a models.Arc
		var mode sql.NullString

		if err := rows.Scan(&a.Origin[0], &a.Origin[1], &a.Dest[0], &a.Dest[1],
			&a.StartTime, &a.EndTime, &mode); err != nil {
			return nil, fmt.Errorf("failed to scan arc: %w", err)
		}

		a.Mode = mode.String
		arcs = append(arcs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating arcs: %w", err)
	}
	return arcs, nil
}

func loadMetadata(db *sql.DB) (models.Metadata, error) {
	var meta models.Metadata
	err := db.QueryRow("SELECT min_timestamp, max_timestamp FROM metadata LIMIT 1").
		Scan(&meta.MinTimestamp, &meta.MaxTimestamp)
	if err == sql.ErrNoRows {
		return models.Metadata{}, nil
	}
	if err != nil {
		return models.Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	return meta, nil
}

// observedBounds derives the time bounds from the loaded collections
func observedBounds(ds *models.Dataset) models.Metadata {
	var meta models.Metadata
	update := func(ts int64) {
		if ts == 0 {
			return
		}
		if meta.MinTimestamp == 0 || ts < meta.MinTimestamp {
			meta.MinTimestamp = ts
		}
		if ts > meta.MaxTimestamp {
			meta.MaxTimestamp = ts
		}
	}

	for _, v := range ds.Visits {
		update(v.Timestamp)
	}
	for _, t := range ds.Trips {
		update(t.StartTime())
		update(t.EndTime())
	}
	return meta
}
