package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/google/uuid"
)

// TripRepository defines the interface for personal trip plans
type TripRepository interface {
	List(userID, status string) []models.Trip
	GetByID(id string) (models.Trip, error)
	Create(req models.CreateTripRequest) models.Trip
	Update(id string, req models.UpdateTripRequest) (models.Trip, error)
	Delete(id string) error
	AddItinerary(tripID string, req models.AddItineraryRequest) (models.ItineraryItem, error)
}

// InMemoryTripRepository implements TripRepository over an id-indexed map
type InMemoryTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*models.Trip
	order []string
}

// NewInMemoryTripRepository creates an empty trip store
func NewInMemoryTripRepository() *InMemoryTripRepository {
	return &InMemoryTripRepository{trips: make(map[string]*models.Trip)}
}

// Seed inserts fully-formed trips
func (r *InMemoryTripRepository) Seed(trips ...models.Trip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range trips {
		cp := t
		r.trips[t.ID] = &cp
		r.order = append(r.order, t.ID)
	}
}

// List returns trips, optionally filtered by owner and status
func (r *InMemoryTripRepository) List(userID, status string) []models.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Trip, 0)
	for _, id := range r.order {
		t := r.trips[id]
		if userID != "" && t.UserID != userID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		result = append(result, cloneTrip(t))
	}
	return result
}

// GetByID returns a trip by id
func (r *InMemoryTripRepository) GetByID(id string) (models.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return models.Trip{}, fmt.Errorf("trip %s: %w", id, ErrNotFound)
	}
	return cloneTrip(t), nil
}

// Create stores a new trip in planning status with an empty itinerary
func (r *InMemoryTripRepository) Create(req models.CreateTripRequest) models.Trip {
	now := time.Now()
	t := &models.Trip{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		Destinations: orEmpty(req.Destinations),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Budget:       req.Budget,
		Status:       models.TripStatusPlanning,
		Itinerary:    []models.ItineraryItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	r.trips[t.ID] = t
	r.order = append(r.order, t.ID)
	r.mu.Unlock()

	return cloneTrip(t)
}

// Update merge-patches a trip and bumps its updatedAt
func (r *InMemoryTripRepository) Update(id string, req models.UpdateTripRequest) (models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[id]
	if !ok {
		return models.Trip{}, fmt.Errorf("trip %s: %w", id, ErrNotFound)
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Destinations != nil {
		t.Destinations = *req.Destinations
	}
	if req.StartDate != nil {
		t.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		t.EndDate = *req.EndDate
	}
	if req.Budget != nil {
		t.Budget = *req.Budget
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	t.UpdatedAt = time.Now()

	return cloneTrip(t), nil
}

// Delete removes a trip by id
func (r *InMemoryTripRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return fmt.Errorf("trip %s: %w", id, ErrNotFound)
	}
	delete(r.trips, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddItinerary appends an itinerary day to a trip
func (r *InMemoryTripRepository) AddItinerary(tripID string, req models.AddItineraryRequest) (models.ItineraryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[tripID]
	if !ok {
		return models.ItineraryItem{}, fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
	}

	item := models.ItineraryItem{
		ID:         uuid.NewString(),
		Day:        req.Day,
		Date:       req.Date,
		Activities: req.Activities,
	}
	if item.Activities == nil {
		item.Activities = []models.Activity{}
	}
	t.Itinerary = append(t.Itinerary, item)
	t.UpdatedAt = time.Now()

	return item, nil
}

// cloneTrip copies with non-nil slice bases so empty lists stay [] in JSON
func cloneTrip(t *models.Trip) models.Trip {
	cp := *t
	cp.Destinations = append([]string{}, t.Destinations...)
	cp.Itinerary = append([]models.ItineraryItem{}, t.Itinerary...)
	return cp
}
