package repositories

import (
	"testing"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateTripDefaults(t *testing.T) {
	repo := NewInMemoryTripRepository()

	trip := repo.Create(models.CreateTripRequest{
		UserID:    "user1",
		Title:     "Greek Islands",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-10",
		Budget:    2500,
	})

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, models.TripStatusPlanning, trip.Status)
	assert.NotNil(t, trip.Itinerary)
	assert.Empty(t, trip.Itinerary)
	assert.NotNil(t, trip.Destinations, "omitted destinations become an empty slice")

	stored, err := repo.GetByID(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.Title, stored.Title)
}

func TestTripEmptyListsSurviveClone(t *testing.T) {
	repo := NewInMemoryTripRepository()
	repo.Seed(models.Trip{ID: "t1", UserID: "user1", Title: "Bare"})

	got, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.NotNil(t, got.Destinations)
	assert.NotNil(t, got.Itinerary)
}

func TestListTripsFilters(t *testing.T) {
	repo := NewInMemoryTripRepository()
	repo.Seed(
		models.Trip{ID: "t1", UserID: "user1", Status: models.TripStatusPlanning},
		models.Trip{ID: "t2", UserID: "user1", Status: models.TripStatusCompleted},
		models.Trip{ID: "t3", UserID: "user2", Status: models.TripStatusPlanning},
	)

	assert.Len(t, repo.List("", ""), 3)
	assert.Len(t, repo.List("user1", ""), 2)

	planned := repo.List("user1", models.TripStatusPlanning)
	require.Len(t, planned, 1)
	assert.Equal(t, "t1", planned[0].ID)
}

func TestUpdateTripMergePatch(t *testing.T) {
	repo := NewInMemoryTripRepository()
	trip := repo.Create(models.CreateTripRequest{
		UserID: "user1", Title: "Draft", StartDate: "2026-09-01", EndDate: "2026-09-10", Budget: 1000,
	})

	updated, err := repo.Update(trip.ID, models.UpdateTripRequest{
		Title:  strPtr("Final"),
		Budget: f64Ptr(1500),
		Status: strPtr(models.TripStatusBooked),
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, 1500.0, updated.Budget)
	assert.Equal(t, models.TripStatusBooked, updated.Status)
	assert.Equal(t, "2026-09-01", updated.StartDate, "omitted fields are left alone")
	assert.Equal(t, trip.ID, updated.ID)

	_, err = repo.Update("missing", models.UpdateTripRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTrip(t *testing.T) {
	repo := NewInMemoryTripRepository()
	trip := repo.Create(models.CreateTripRequest{
		UserID: "user1", Title: "Gone", StartDate: "2026-09-01", EndDate: "2026-09-10",
	})

	require.NoError(t, repo.Delete(trip.ID))
	_, err := repo.GetByID(trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, repo.List("user1", ""))

	assert.ErrorIs(t, repo.Delete(trip.ID), ErrNotFound)
}

func TestAddItinerary(t *testing.T) {
	repo := NewInMemoryTripRepository()
	trip := repo.Create(models.CreateTripRequest{
		UserID: "user1", Title: "Greek Islands", StartDate: "2026-09-01", EndDate: "2026-09-10",
	})

	item, err := repo.AddItinerary(trip.ID, models.AddItineraryRequest{
		Day:  1,
		Date: "2026-09-01",
		Activities: []models.Activity{
			{Title: "Ferry to Santorini", Category: "transport"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 1, item.Day)

	empty, err := repo.AddItinerary(trip.ID, models.AddItineraryRequest{Day: 2, Date: "2026-09-02"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Activities, "omitted activities become an empty slice")

	stored, err := repo.GetByID(trip.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Itinerary, 2)

	_, err = repo.AddItinerary("missing", models.AddItineraryRequest{Day: 1, Date: "2026-09-01"})
	assert.ErrorIs(t, err, ErrNotFound)
}
