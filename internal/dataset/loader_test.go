package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
	CREATE TABLE visits (
		lon REAL, lat REAL, timestamp INTEGER, duration_minutes REAL,
		city TEXT, country TEXT, address TEXT, place_name TEXT, semantic_type TEXT
	);
	CREATE TABLE trip_points (
		trip_id INTEGER, lon REAL, lat REAL, timestamp INTEGER, activity_type TEXT
	);
	CREATE TABLE arcs (
		origin_lon REAL, origin_lat REAL, dest_lon REAL, dest_lat REAL,
		start_time INTEGER, end_time INTEGER, mode TEXT
	);
	CREATE TABLE metadata (min_timestamp INTEGER, max_timestamp INTEGER);
`

func createTestDB(t *testing.T, statements ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	for _, stmt := range statements {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := createTestDB(t,
		`INSERT INTO visits VALUES
			(13.4, 52.5, 1000, 90, 'Berlin', 'Germany', 'Unter den Linden 1', 'Home', 'HOME'),
			(2.35, 48.85, 2000, NULL, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO trip_points VALUES
			(1, 13.4, 52.5, 1000, 'WALK'),
			(1, 13.41, 52.51, 1100, 'WALK'),
			(2, 2.35, 48.85, 2000, NULL),
			(2, 2.36, 48.86, 2100, NULL)`,
		`INSERT INTO arcs VALUES (13.4, 52.5, 2.35, 48.85, 1100, 2000, 'TRAIN')`,
		`INSERT INTO metadata VALUES (500, 3000)`,
	)

	ds, err := Load(path)
	require.NoError(t, err)

	require.Len(t, ds.Visits, 2)
	assert.Equal(t, [2]float64{13.4, 52.5}, ds.Visits[0].Coordinates)
	assert.Equal(t, "Berlin", ds.Visits[0].City)
	assert.Equal(t, "Home", ds.Visits[0].PlaceName)
	assert.Equal(t, 90.0, ds.Visits[0].DurationMinutes)

	// NULL columns load as zero values
	assert.Empty(t, ds.Visits[1].City)
	assert.Zero(t, ds.Visits[1].DurationMinutes)

	require.Len(t, ds.Trips, 2)
	assert.Len(t, ds.Trips[0].Path, 2)
	assert.Equal(t, "WALK", ds.Trips[0].ActivityType)
	assert.Empty(t, ds.Trips[1].ActivityType)
	assert.Equal(t, int64(2000), ds.Trips[1].StartTime())

	require.Len(t, ds.Arcs, 1)
	assert.Equal(t, "TRAIN", ds.Arcs[0].Mode)
	assert.Equal(t, int64(1100), ds.Arcs[0].StartTime)

	assert.Equal(t, int64(500), ds.Meta.MinTimestamp)
	assert.Equal(t, int64(3000), ds.Meta.MaxTimestamp)
}

func TestLoadFallsBackToObservedBounds(t *testing.T) {
	path := createTestDB(t,
		`INSERT INTO visits VALUES (13.4, 52.5, 1500, 10, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO trip_points VALUES
			(1, 13.4, 52.5, 900, NULL),
			(1, 13.41, 52.51, 4000, NULL)`,
	)

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(900), ds.Meta.MinTimestamp)
	assert.Equal(t, int64(4000), ds.Meta.MaxTimestamp)
}

func TestLoadEmptyDataset(t *testing.T) {
	ds, err := Load(createTestDB(t))
	require.NoError(t, err)
	assert.Empty(t, ds.Visits)
	assert.Empty(t, ds.Trips)
	assert.Empty(t, ds.Arcs)
	assert.Zero(t, ds.Meta)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
