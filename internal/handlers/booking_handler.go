package handlers

import (
	"net/http"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingRepository repositories.BookingRepository
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingRepo repositories.BookingRepository) *BookingHandler {
	return &BookingHandler{bookingRepository: bookingRepo}
}

// RegisterBookingRoutes registers booking routes
func (h *BookingHandler) RegisterBookingRoutes(g *echo.Group) {
	g.GET("/user/:userId", h.ListBookings)
	g.POST("", h.CreateBooking)
	g.GET("/hotels/search", h.SearchHotels)
	g.GET("/activities/search", h.SearchActivities)
	g.PATCH("/:id/cancel", h.CancelBooking)
	g.GET("/user/:userId/stats", h.GetStats)
}

// ListBookings returns a user's bookings with their total value
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings := h.bookingRepository.ListByUser(c.Param("userId"), repositories.BookingFilter{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
	})

	totalValue := 0.0
	for _, b := range bookings {
		totalValue += b.Price
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"bookings":   bookings,
		"count":      len(bookings),
		"totalValue": totalValue,
		"currency":   "GBP",
	})
}

// CreateBooking creates a pending booking; confirmation follows shortly
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	booking := h.bookingRepository.Create(req)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"booking": booking,
		"message": "Booking created successfully. Confirmation pending.",
	})
}

// SearchHotels searches the hotel catalog, pricing results for the stay
func (h *BookingHandler) SearchHotels(c echo.Context) error {
	destination := c.QueryParam("destination")
	halalOnly := c.QueryParam("halalOnly") == "true"

	nights := 1
	checkIn := c.QueryParam("checkIn")
	checkOut := c.QueryParam("checkOut")
	if checkIn != "" && checkOut != "" {
		start, errIn := time.Parse("2006-01-02", checkIn)
		end, errOut := time.Parse("2006-01-02", checkOut)
		if errIn == nil && errOut == nil {
			if n := int(end.Sub(start).Hours() / 24); n > 1 {
				nights = n
			}
		}
	}

	hotels := h.bookingRepository.SearchHotels(destination, halalOnly, nights)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"hotels":  hotels,
		"searchCriteria": echo.Map{
			"destination": destination,
			"checkIn":     checkIn,
			"checkOut":    checkOut,
			"halalOnly":   halalOnly,
			"nights":      nights,
		},
		"count": len(hotels),
	})
}

// SearchActivities searches the bookable activity catalog
func (h *BookingHandler) SearchActivities(c echo.Context) error {
	destination := c.QueryParam("destination")
	category := c.QueryParam("category")
	halalFriendly := c.QueryParam("halalFriendly") == "true"

	activities := h.bookingRepository.SearchActivities(destination, category, halalFriendly)
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"activities": activities,
		"searchCriteria": echo.Map{
			"destination":   destination,
			"category":      category,
			"halalFriendly": halalFriendly,
		},
		"count": len(activities),
	})
}

// CancelBooking cancels a booking, recording the supplied reason
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	var req models.CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return failWith(c, http.StatusBadRequest, "Invalid request body")
	}

	booking, err := h.bookingRepository.Cancel(c.Param("id"), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"booking": booking,
		"message": "Booking cancelled successfully",
	})
}

// GetStats returns aggregate booking statistics for a user
func (h *BookingHandler) GetStats(c echo.Context) error {
	stats := h.bookingRepository.Stats(c.Param("userId"))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "stats": stats})
}
