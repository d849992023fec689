package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramamani14-hue/sharat-lifemap/internal/models"
	"github.com/ramamani14-hue/sharat-lifemap/internal/session"
)

func testSession() *session.Session {
	visits := make([]models.Visit, 0, 250)
	for i := 0; i < 250; i++ {
		visits = append(visits, models.Visit{
			Coordinates: [2]float64{0.01 + float64(i)*0.001, 0.01},
			Timestamp:   int64(i) * 1000,
			City:        "Berlin",
		})
	}
	ds := &models.Dataset{
		Visits: visits,
		Trips: []models.Trip{
			{Path: []models.TripPoint{
				{Coordinates: [2]float64{0.01, 0.01}, Timestamp: 100},
				{Coordinates: [2]float64{0.02, 0.02}, Timestamp: 200},
			}},
		},
		Meta: models.Metadata{MinTimestamp: 0, MaxTimestamp: 249000},
	}
	return session.New(ds, session.DefaultOptions())
}

func TestGetVisitsPagination(t *testing.T) {
	svc := NewTripService(testSession())

	resp := svc.GetVisits(models.WindowFilter{}, models.PageFilter{})
	assert.Equal(t, int64(250), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 100, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Data, 100)
	assert.Equal(t, int64(0), resp.Data[0].Timestamp)

	last := svc.GetVisits(models.WindowFilter{}, models.PageFilter{Page: 3, PageSize: 100})
	require.Len(t, last.Data, 50)
	assert.Equal(t, int64(200000), last.Data[0].Timestamp)

	beyond := svc.GetVisits(models.WindowFilter{}, models.PageFilter{Page: 99})
	assert.Empty(t, beyond.Data)
	assert.Equal(t, int64(250), beyond.Total)
}

func TestGetTrips(t *testing.T) {
	svc := NewTripService(testSession())

	resp := svc.GetTrips(models.WindowFilter{}, models.PageFilter{})
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Data, 1)
	assert.Len(t, resp.Data[0].Path, 2)
}

func TestGetVisitsWindowed(t *testing.T) {
	svc := NewTripService(testSession())

	start, end := 0.0, 0.1
	resp := svc.GetVisits(models.WindowFilter{Start: &start, End: &end}, models.PageFilter{})
	assert.Less(t, resp.Total, int64(250))
	assert.NotZero(t, resp.Total)
}
