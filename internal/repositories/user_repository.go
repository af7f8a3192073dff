package repositories

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user profiles
type UserRepository interface {
	GetByID(id string) (models.User, error)
	Create(req models.CreateUserRequest) (models.User, error)
	Update(id string, req models.UpdateUserRequest) (models.User, error)
	UpdatePreferences(id string, req models.UpdatePreferencesRequest) (models.User, error)
}

// InMemoryUserRepository implements UserRepository over an id-indexed map
// with a secondary email index for the uniqueness check
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byEmail map[string]string // lowercased email -> user id
}

// NewInMemoryUserRepository creates an empty user store
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

// Seed inserts fully-formed users
func (r *InMemoryUserRepository) Seed(users ...models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		cp := u
		r.users[u.ID] = &cp
		r.byEmail[strings.ToLower(u.Email)] = u.ID
	}
}

// GetByID returns a user by id
func (r *InMemoryUserRepository) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return cloneUser(u), nil
}

// Create stores a new user. A duplicate email is a conflict.
func (r *InMemoryUserRepository) Create(req models.CreateUserRequest) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emailKey := strings.ToLower(req.Email)
	if _, exists := r.byEmail[emailKey]; exists {
		return models.User{}, fmt.Errorf("user with email %s already exists: %w", req.Email, ErrConflict)
	}

	prefs := models.UserPreferences{
		TravelStyle:      "mid-range",
		Interests:        []string{},
		PreferredClimate: "temperate",
	}
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	u := &models.User{
		ID:          uuid.NewString(),
		Email:       req.Email,
		Name:        req.Name,
		Avatar:      req.Avatar,
		Preferences: prefs,
		CreatedAt:   time.Now(),
	}
	r.users[u.ID] = u
	r.byEmail[emailKey] = u.ID

	return cloneUser(u), nil
}

// Update merge-patches a user profile. The id never changes.
func (r *InMemoryUserRepository) Update(id string, req models.UpdateUserRequest) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	if req.Email != nil && !strings.EqualFold(*req.Email, u.Email) {
		emailKey := strings.ToLower(*req.Email)
		if other, exists := r.byEmail[emailKey]; exists && other != id {
			return models.User{}, fmt.Errorf("user with email %s already exists: %w", *req.Email, ErrConflict)
		}
		delete(r.byEmail, strings.ToLower(u.Email))
		u.Email = *req.Email
		r.byEmail[emailKey] = id
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}
	if req.Preferences != nil {
		u.Preferences = *req.Preferences
	}

	return cloneUser(u), nil
}

// UpdatePreferences merge-patches the user's preferences alone
func (r *InMemoryUserRepository) UpdatePreferences(id string, req models.UpdatePreferencesRequest) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	if req.TravelStyle != nil {
		u.Preferences.TravelStyle = *req.TravelStyle
	}
	if req.Interests != nil {
		u.Preferences.Interests = *req.Interests
	}
	if req.PreferredClimate != nil {
		u.Preferences.PreferredClimate = *req.PreferredClimate
	}

	return cloneUser(u), nil
}

// cloneUser copies with a non-nil interests base so the empty list stays []
// in JSON
func cloneUser(u *models.User) models.User {
	cp := *u
	cp.Preferences.Interests = append([]string{}, u.Preferences.Interests...)
	return cp
}
