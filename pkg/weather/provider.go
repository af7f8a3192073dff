// Package weather supplies weather reports behind a pluggable data source.
// The default source generates mock data; an Open-Meteo backed source is
// used when an API URL is configured.
package weather

import (
	"context"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
)

// Provider produces a weather report for a free-form location
type Provider interface {
	Forecast(ctx context.Context, location string) (models.WeatherData, error)
	ForecastByCoordinates(ctx context.Context, lat, lng float64) (models.WeatherData, error)
}
