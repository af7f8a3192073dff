package handlers

import (
	"net/http"
	"strconv"

	"github.com/BillyBobz/travel-planner/backend/pkg/weather"
	"github.com/labstack/echo/v4"
)

// WeatherHandler handles weather HTTP requests
type WeatherHandler struct {
	provider weather.Provider
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(provider weather.Provider) *WeatherHandler {
	return &WeatherHandler{provider: provider}
}

// RegisterWeatherRoutes registers weather routes
func (h *WeatherHandler) RegisterWeatherRoutes(g *echo.Group) {
	g.GET("/coordinates/:lat/:lng", h.GetWeatherByCoordinates)
	g.GET("/:location", h.GetWeather)
}

// GetWeather returns the report for a named location
func (h *WeatherHandler) GetWeather(c echo.Context) error {
	location := c.Param("location")
	if location == "" {
		return failWith(c, http.StatusBadRequest, "Location parameter is required")
	}

	data, err := h.provider.Forecast(c.Request().Context(), location)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}

// GetWeatherByCoordinates returns the report for a lat/lng pair
func (h *WeatherHandler) GetWeatherByCoordinates(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.Param("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Param("lng"), 64)
	if errLat != nil || errLng != nil {
		return failWith(c, http.StatusBadRequest, "Latitude and longitude parameters are required")
	}

	data, err := h.provider.ForecastByCoordinates(c.Request().Context(), lat, lng)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": data})
}
