package models

import "time"

// Trip status values
const (
	TripStatusPlanning  = "planning"
	TripStatusBooked    = "booked"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
)

// Activity is a single scheduled activity within an itinerary day
type Activity struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Category    string  `json:"category"` // transport, accommodation, food, activity, sightseeing
}

// ItineraryItem groups the activities planned for one day of a trip
type ItineraryItem struct {
	ID         string     `json:"id"`
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Trip represents a user's personal travel plan
type Trip struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Destinations []string        `json:"destinations"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Budget       float64         `json:"budget"`
	Status       string          `json:"status"`
	Itinerary    []ItineraryItem `json:"itinerary"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateTripRequest defines the body for creating a trip
type CreateTripRequest struct {
	UserID       string   `json:"userId" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Destinations []string `json:"destinations"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate" validate:"required"`
	Budget       float64  `json:"budget"`
}

// UpdateTripRequest defines the merge-patch body for updating a trip
type UpdateTripRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Destinations *[]string `json:"destinations,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
	Budget       *float64  `json:"budget,omitempty"`
	Status       *string   `json:"status,omitempty" validate:"omitempty,oneof=planning booked ongoing completed"`
}

// AddItineraryRequest defines the body for appending an itinerary day
type AddItineraryRequest struct {
	Day        int        `json:"day" validate:"required,min=1"`
	Date       string     `json:"date" validate:"required"`
	Activities []Activity `json:"activities"`
}
