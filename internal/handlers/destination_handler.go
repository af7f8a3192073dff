package handlers

import (
	"net/http"
	"strconv"

	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// DestinationHandler handles destination catalog HTTP requests
type DestinationHandler struct {
	destinationRepository repositories.DestinationRepository
}

// NewDestinationHandler creates a new DestinationHandler
func NewDestinationHandler(destRepo repositories.DestinationRepository) *DestinationHandler {
	return &DestinationHandler{destinationRepository: destRepo}
}

// RegisterDestinationRoutes registers destination routes
func (h *DestinationHandler) RegisterDestinationRoutes(g *echo.Group) {
	g.GET("", h.ListDestinations)
	g.GET("/:id", h.GetDestination)
	g.GET("/search/:query", h.SearchDestinations)
}

// ListDestinations returns destinations, optionally filtered by category,
// country substring and minimum rating
func (h *DestinationHandler) ListDestinations(c echo.Context) error {
	filter := repositories.DestinationFilter{
		Category: c.QueryParam("category"),
		Country:  c.QueryParam("country"),
	}
	if raw := c.QueryParam("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return failWith(c, http.StatusBadRequest, "Invalid minRating")
		}
		filter.MinRating = minRating
	}

	destinations := h.destinationRepository.List(filter)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    destinations,
		"total":   len(destinations),
	})
}

// GetDestination returns a single destination by id
func (h *DestinationHandler) GetDestination(c echo.Context) error {
	destination, err := h.destinationRepository.GetByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": destination})
}

// SearchDestinations matches the query across name, country, description
// and activities
func (h *DestinationHandler) SearchDestinations(c echo.Context) error {
	results := h.destinationRepository.Search(c.Param("query"))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    results,
		"total":   len(results),
	})
}
