package weather

import (
	"context"
	"fmt"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/go-resty/resty/v2"
)

// DefaultGeocodeURL is the Open-Meteo geocoding endpoint used when no
// override is configured.
const DefaultGeocodeURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoProvider fetches real forecasts from the Open-Meteo API.
// Named locations are resolved through the Open-Meteo geocoding service.
type OpenMeteoProvider struct {
	client     *resty.Client
	baseURL    string
	geocodeURL string
}

// NewOpenMeteoProvider creates an Open-Meteo backed weather source.
// baseURL is the forecast endpoint, e.g. https://api.open-meteo.com/v1/forecast;
// geocodeURL resolves location names and falls back to DefaultGeocodeURL
// when empty.
func NewOpenMeteoProvider(baseURL, geocodeURL string) *OpenMeteoProvider {
	if geocodeURL == "" {
		geocodeURL = DefaultGeocodeURL
	}
	return &OpenMeteoProvider{
		client:     resty.New(),
		baseURL:    baseURL,
		geocodeURL: geocodeURL,
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationMax []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// Forecast resolves the location name and fetches its forecast
func (p *OpenMeteoProvider) Forecast(ctx context.Context, location string) (models.WeatherData, error) {
	var geo geocodeResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"name": location, "count": "1"}).
		SetResult(&geo).
		Get(p.geocodeURL)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("geocode %q: %w", location, err)
	}
	if resp.IsError() || len(geo.Results) == 0 {
		return models.WeatherData{}, fmt.Errorf("geocode %q: no results", location)
	}

	data, err := p.fetch(ctx, geo.Results[0].Latitude, geo.Results[0].Longitude)
	if err != nil {
		return models.WeatherData{}, err
	}
	data.Location = location
	return data, nil
}

// ForecastByCoordinates fetches the forecast for a lat/lng pair
func (p *OpenMeteoProvider) ForecastByCoordinates(ctx context.Context, lat, lng float64) (models.WeatherData, error) {
	data, err := p.fetch(ctx, lat, lng)
	if err != nil {
		return models.WeatherData{}, err
	}
	data.Location = fmt.Sprintf("%g, %g", lat, lng)
	return data, nil
}

func (p *OpenMeteoProvider) fetch(ctx context.Context, lat, lng float64) (models.WeatherData, error) {
	var out forecastResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":      fmt.Sprintf("%g", lat),
			"longitude":     fmt.Sprintf("%g", lng),
			"current":       "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code",
			"daily":         "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max",
			"forecast_days": "7",
			"timezone":      "auto",
		}).
		SetResult(&out).
		Get(p.baseURL)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("fetch forecast: %w", err)
	}
	if resp.IsError() {
		return models.WeatherData{}, fmt.Errorf("fetch forecast: status %d", resp.StatusCode())
	}

	condition, icon := describeWeatherCode(out.Current.WeatherCode)
	data := models.WeatherData{
		Current: models.CurrentConditions{
			Temperature: int(out.Current.Temperature),
			Condition:   condition,
			Humidity:    out.Current.Humidity,
			WindSpeed:   int(out.Current.WindSpeed),
			Icon:        icon,
		},
	}

	for i, date := range out.Daily.Time {
		dayCondition, dayIcon := describeWeatherCode(at(out.Daily.WeatherCode, i))
		data.Forecast = append(data.Forecast, models.ForecastDay{
			Date:          date,
			High:          int(atF(out.Daily.TemperatureMax, i)),
			Low:           int(atF(out.Daily.TemperatureMin, i)),
			Condition:     dayCondition,
			Icon:          dayIcon,
			Precipitation: at(out.Daily.PrecipitationMax, i),
		})
	}
	return data, nil
}

// describeWeatherCode maps WMO weather codes to the app's condition set
func describeWeatherCode(code int) (string, string) {
	switch {
	case code == 0:
		return "Sunny", "☀️"
	case code <= 2:
		return "Partly Cloudy", "⛅"
	case code == 3 || code == 45 || code == 48:
		return "Cloudy", "☁️"
	case code >= 95:
		return "Thunderstorms", "⛈️"
	default:
		return "Rainy", "🌧️"
	}
}

func at(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func atF(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}
