package models

import "time"

// Booking types
const (
	BookingTypeHotel      = "hotel"
	BookingTypeFlight     = "flight"
	BookingTypeActivity   = "activity"
	BookingTypeRestaurant = "restaurant"
	BookingTypeTransport  = "transport"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a reservation for a hotel, flight, activity,
// restaurant or transport
type Booking struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`
	Type             string         `json:"type"`
	Status           string         `json:"status"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Destination      string         `json:"destination"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate,omitempty"`
	Price            float64        `json:"price"`
	Currency         string         `json:"currency"`
	Provider         string         `json:"provider"`
	ConfirmationCode string         `json:"confirmationCode,omitempty"`
	Details          map[string]any `json:"details,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// CreateBookingRequest defines the body for creating a booking
type CreateBookingRequest struct {
	UserID      string         `json:"userId" validate:"required"`
	Type        string         `json:"type" validate:"required,oneof=hotel flight activity restaurant transport"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Destination string         `json:"destination" validate:"required"`
	StartDate   string         `json:"startDate" validate:"required"`
	EndDate     string         `json:"endDate,omitempty"`
	Price       float64        `json:"price" validate:"min=0"`
	Currency    string         `json:"currency"`
	Provider    string         `json:"provider"`
	Details     map[string]any `json:"details,omitempty"`
}

// CancelBookingRequest carries the optional cancellation reason
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// BookingStats aggregates a user's bookings
type BookingStats struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	ByType           map[string]int `json:"byType"`
	TotalSpent       float64        `json:"totalSpent"`
	UpcomingBookings int            `json:"upcomingBookings"`
	Currency         string         `json:"currency"`
}

// HotelOffer is a searchable hotel listing
type HotelOffer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	PricePerNight  float64  `json:"pricePerNight"`
	Currency       string   `json:"currency"`
	HalalCertified bool     `json:"halalCertified"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
	Description    string   `json:"description"`
}

// PricedHotelOffer is a HotelOffer with stay pricing applied
type PricedHotelOffer struct {
	HotelOffer
	TotalPrice   float64 `json:"totalPrice"`
	Nights       int     `json:"nights"`
	Availability string  `json:"availability"`
}

// ActivityOffer is a searchable bookable activity listing
type ActivityOffer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Price         float64 `json:"price"`
	Duration      string  `json:"duration"`
	Category      string  `json:"category"`
	HalalFriendly bool    `json:"halalFriendly"`
	Description   string  `json:"description"`
}
