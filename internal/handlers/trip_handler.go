package handlers

import (
	"net/http"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// TripHandler handles personal trip HTTP requests
type TripHandler struct {
	tripRepository repositories.TripRepository
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(tripRepo repositories.TripRepository) *TripHandler {
	return &TripHandler{tripRepository: tripRepo}
}

// RegisterTripRoutes registers trip routes
func (h *TripHandler) RegisterTripRoutes(g *echo.Group) {
	g.GET("", h.ListTrips)
	g.GET("/:id", h.GetTrip)
	g.POST("", h.CreateTrip)
	g.PUT("/:id", h.UpdateTrip)
	g.DELETE("/:id", h.DeleteTrip)
	g.POST("/:id/itinerary", h.AddItinerary)
}

// ListTrips returns trips, optionally filtered by userId and status
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips := h.tripRepository.List(c.QueryParam("userId"), c.QueryParam("status"))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    trips,
		"total":   len(trips),
	})
}

// GetTrip returns a trip by id
func (h *TripHandler) GetTrip(c echo.Context) error {
	trip, err := h.tripRepository.GetByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": trip})
}

// CreateTrip creates a new trip in planning status
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	trip := h.tripRepository.Create(req)
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": trip})
}

// UpdateTrip merge-patches a trip
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	var req models.UpdateTripRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	trip, err := h.tripRepository.Update(c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": trip})
}

// DeleteTrip removes a trip
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	if err := h.tripRepository.Delete(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Trip deleted successfully",
	})
}

// AddItinerary appends an itinerary day to a trip
func (h *TripHandler) AddItinerary(c echo.Context) error {
	var req models.AddItineraryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.tripRepository.AddItinerary(c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": item})
}
