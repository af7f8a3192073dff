package models

import "time"

// UserPreferences captures a traveler's planning preferences
type UserPreferences struct {
	TravelStyle      string   `json:"travelStyle"` // budget, mid-range, luxury
	Interests        []string `json:"interests"`
	PreferredClimate string   `json:"preferredClimate"` // cold, temperate, warm, hot
}

// User represents an application user
type User struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Avatar      string          `json:"avatar,omitempty"`
	Preferences UserPreferences `json:"preferences"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateUserRequest defines the body for creating a user
type CreateUserRequest struct {
	Email       string           `json:"email" validate:"required,email"`
	Name        string           `json:"name" validate:"required"`
	Avatar      string           `json:"avatar,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// UpdateUserRequest defines the merge-patch body for updating a user.
// The id is never updatable.
type UpdateUserRequest struct {
	Email       *string          `json:"email,omitempty" validate:"omitempty,email"`
	Name        *string          `json:"name,omitempty"`
	Avatar      *string          `json:"avatar,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// UpdatePreferencesRequest defines the merge-patch body for preferences alone
type UpdatePreferencesRequest struct {
	TravelStyle      *string   `json:"travelStyle,omitempty" validate:"omitempty,oneof=budget mid-range luxury"`
	Interests        *[]string `json:"interests,omitempty"`
	PreferredClimate *string   `json:"preferredClimate,omitempty" validate:"omitempty,oneof=cold temperate warm hot"`
}
