package repositories

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
)

// DestinationFilter narrows a destination listing. Zero values mean
// "no filter".
type DestinationFilter struct {
	Category  string
	Country   string
	MinRating float64
}

// DestinationRepository defines the interface for the destination catalog
type DestinationRepository interface {
	List(filter DestinationFilter) []models.Destination
	GetByID(id string) (models.Destination, error)
	Search(query string) []models.Destination
}

// InMemoryDestinationRepository implements DestinationRepository over an
// id-indexed map with an insertion-order index for stable listings
type InMemoryDestinationRepository struct {
	mu           sync.RWMutex
	destinations map[string]*models.Destination
	order        []string
}

// NewInMemoryDestinationRepository creates an empty destination catalog
func NewInMemoryDestinationRepository() *InMemoryDestinationRepository {
	return &InMemoryDestinationRepository{
		destinations: make(map[string]*models.Destination),
	}
}

// Seed inserts fully-formed destinations
func (r *InMemoryDestinationRepository) Seed(destinations ...models.Destination) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range destinations {
		cp := d
		r.destinations[d.ID] = &cp
		r.order = append(r.order, d.ID)
	}
}

// List returns destinations matching the filter, in catalog order
func (r *InMemoryDestinationRepository) List(filter DestinationFilter) []models.Destination {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Destination, 0)
	for _, id := range r.order {
		d := r.destinations[id]
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if filter.Country != "" && !strings.Contains(strings.ToLower(d.Country), strings.ToLower(filter.Country)) {
			continue
		}
		if filter.MinRating > 0 && d.Rating < filter.MinRating {
			continue
		}
		result = append(result, *d)
	}
	return result
}

// GetByID returns a destination by id
func (r *InMemoryDestinationRepository) GetByID(id string) (models.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.destinations[id]
	if !ok {
		return models.Destination{}, fmt.Errorf("destination %s: %w", id, ErrNotFound)
	}
	return *d, nil
}

// Search matches the query as a case-insensitive substring of name,
// country, description or any activity
func (r *InMemoryDestinationRepository) Search(query string) []models.Destination {
	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Destination, 0)
	for _, id := range r.order {
		d := r.destinations[id]
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Country), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			anyActivityMatches(d.Activities, q) {
			result = append(result, *d)
		}
	}
	return result
}

func anyActivityMatches(activities []string, q string) bool {
	for _, a := range activities {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}
