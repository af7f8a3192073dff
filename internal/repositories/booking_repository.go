package repositories

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/google/uuid"
)

// BookingFilter narrows a booking listing. Zero values mean "no filter".
type BookingFilter struct {
	Status string
	Type   string
}

// BookingRepository defines the interface for bookings and the bookable
// hotel/activity catalogs
type BookingRepository interface {
	ListByUser(userID string, filter BookingFilter) []models.Booking
	Create(req models.CreateBookingRequest) models.Booking
	Cancel(id, reason string) (models.Booking, error)
	Stats(userID string) models.BookingStats
	SearchHotels(destination string, halalOnly bool, nights int) []models.PricedHotelOffer
	SearchActivities(destination, category string, halalFriendly bool) []models.ActivityOffer
}

// InMemoryBookingRepository implements BookingRepository over an id-indexed
// map. New bookings start pending and auto-confirm shortly after creation,
// mirroring a provider callback.
type InMemoryBookingRepository struct {
	mu           sync.RWMutex
	bookings     map[string]*models.Booking
	hotels       []models.HotelOffer
	activities   []models.ActivityOffer
	confirmAfter time.Duration
}

// NewInMemoryBookingRepository creates an empty booking store
func NewInMemoryBookingRepository() *InMemoryBookingRepository {
	return &InMemoryBookingRepository{
		bookings:     make(map[string]*models.Booking),
		confirmAfter: 2 * time.Second,
	}
}

// Seed inserts fully-formed bookings
func (r *InMemoryBookingRepository) Seed(bookings ...models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range bookings {
		cp := b
		r.bookings[b.ID] = &cp
	}
}

// SeedCatalog installs the searchable hotel and activity listings
func (r *InMemoryBookingRepository) SeedCatalog(hotels []models.HotelOffer, activities []models.ActivityOffer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hotels = hotels
	r.activities = activities
}

// ListByUser returns a user's bookings sorted by start date ascending,
// optionally filtered by status and type
func (r *InMemoryBookingRepository) ListByUser(userID string, filter BookingFilter) []models.Booking {
	r.mu.RLock()
	result := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		result = append(result, cloneBooking(b))
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate < result[j].StartDate
	})
	return result
}

// Create stores a pending booking with a generated confirmation code and
// schedules its auto-confirmation
func (r *InMemoryBookingRepository) Create(req models.CreateBookingRequest) models.Booking {
	now := time.Now()
	currency := req.Currency
	if currency == "" {
		currency = "GBP"
	}
	b := &models.Booking{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		Type:             req.Type,
		Status:           models.BookingStatusPending,
		Title:            req.Title,
		Description:      req.Description,
		Destination:      req.Destination,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Price:            req.Price,
		Currency:         currency,
		Provider:         req.Provider,
		ConfirmationCode: fmt.Sprintf("BK-%d-%s", now.UnixMilli(), randomCode(6)),
		Details:          req.Details,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	r.mu.Lock()
	r.bookings[b.ID] = b
	r.mu.Unlock()

	if r.confirmAfter > 0 {
		time.AfterFunc(r.confirmAfter, func() { r.confirm(b.ID) })
	}
	return cloneBooking(b)
}

// confirm flips a booking to confirmed if it is still pending
func (r *InMemoryBookingRepository) confirm(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok && b.Status == models.BookingStatusPending {
		b.Status = models.BookingStatusConfirmed
		b.UpdatedAt = time.Now()
	}
}

// Cancel marks a booking cancelled, recording the reason in its details.
// Cancelling twice is rejected.
func (r *InMemoryBookingRepository) Cancel(id, reason string) (models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if b.Status == models.BookingStatusCancelled {
		return models.Booking{}, fmt.Errorf("booking %s is already cancelled: %w", id, ErrInvalidArgument)
	}

	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()
	if b.Details == nil {
		b.Details = make(map[string]any)
	}
	b.Details["cancellationReason"] = reason

	return cloneBooking(b), nil
}

// Stats aggregates a user's bookings
func (r *InMemoryBookingRepository) Stats(userID string) models.BookingStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.BookingStats{
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
		Currency: "GBP",
	}
	today := time.Now().Format("2006-01-02")

	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		stats.Total++
		stats.ByStatus[b.Status]++
		stats.ByType[b.Type]++
		if b.Status == models.BookingStatusConfirmed || b.Status == models.BookingStatusCompleted {
			stats.TotalSpent += b.Price
		}
		if b.StartDate > today && b.Status == models.BookingStatusConfirmed {
			stats.UpcomingBookings++
		}
	}
	return stats
}

// SearchHotels filters the hotel catalog by destination substring and the
// halal-certified flag, pricing each result for the stay length
func (r *InMemoryBookingRepository) SearchHotels(destination string, halalOnly bool, nights int) []models.PricedHotelOffer {
	if nights < 1 {
		nights = 1
	}
	dest := strings.ToLower(destination)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.PricedHotelOffer, 0)
	for _, h := range r.hotels {
		if destination != "" && !strings.Contains(strings.ToLower(h.Location), dest) {
			continue
		}
		if halalOnly && !h.HalalCertified {
			continue
		}
		result = append(result, models.PricedHotelOffer{
			HotelOffer:   h,
			TotalPrice:   h.PricePerNight * float64(nights),
			Nights:       nights,
			Availability: "Available",
		})
	}
	return result
}

// SearchActivities filters the activity catalog by destination substring,
// exact category (case-insensitive) and the halal-friendly flag
func (r *InMemoryBookingRepository) SearchActivities(destination, category string, halalFriendly bool) []models.ActivityOffer {
	dest := strings.ToLower(destination)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.ActivityOffer, 0)
	for _, a := range r.activities {
		if destination != "" && !strings.Contains(strings.ToLower(a.Location), dest) {
			continue
		}
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		if halalFriendly && !a.HalalFriendly {
			continue
		}
		result = append(result, a)
	}
	return result
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func cloneBooking(b *models.Booking) models.Booking {
	cp := *b
	if b.Details != nil {
		cp.Details = make(map[string]any, len(b.Details))
		for k, v := range b.Details {
			cp.Details[k] = v
		}
	}
	return cp
}
