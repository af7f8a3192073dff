package weather

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
)

var (
	conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Thunderstorms"}
	icons      = []string{"☀️", "⛅", "☁️", "🌧️", "⛈️"}
)

// MockProvider generates random demo weather for any location
type MockProvider struct{}

// NewMockProvider creates the demo weather source
func NewMockProvider() *MockProvider { return &MockProvider{} }

// Forecast returns randomized current conditions and a 7-day forecast
func (p *MockProvider) Forecast(_ context.Context, location string) (models.WeatherData, error) {
	forecast := make([]models.ForecastDay, 0, 7)
	for i := 0; i < 7; i++ {
		forecast = append(forecast, models.ForecastDay{
			Date:          time.Now().AddDate(0, 0, i).Format("2006-01-02"),
			High:          rand.Intn(15) + 20,
			Low:           rand.Intn(10) + 10,
			Condition:     conditions[rand.Intn(len(conditions))],
			Icon:          icons[rand.Intn(len(icons))],
			Precipitation: rand.Intn(50),
		})
	}

	return models.WeatherData{
		Location: location,
		Current: models.CurrentConditions{
			Temperature: rand.Intn(20) + 15,
			Condition:   conditions[rand.Intn(len(conditions))],
			Humidity:    rand.Intn(40) + 40,
			WindSpeed:   rand.Intn(20) + 5,
			Icon:        icons[rand.Intn(len(icons))],
		},
		Forecast: forecast,
	}, nil
}

// ForecastByCoordinates returns the same demo data keyed by coordinates
func (p *MockProvider) ForecastByCoordinates(ctx context.Context, lat, lng float64) (models.WeatherData, error) {
	return p.Forecast(ctx, fmt.Sprintf("%g, %g", lat, lng))
}
