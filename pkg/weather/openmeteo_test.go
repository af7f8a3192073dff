package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenMeteoStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Paris", r.URL.Query().Get("name"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"Paris","latitude":48.85,"longitude":2.35}]}`))
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("forecast_days"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current":{"temperature_2m":21.4,"relative_humidity_2m":55,"wind_speed_10m":12.3,"weather_code":0},
			"daily":{
				"time":["2026-08-29","2026-08-30"],
				"weather_code":[0,95],
				"temperature_2m_max":[25.1,22.8],
				"temperature_2m_min":[14.9,13.2],
				"precipitation_probability_max":[5,80]
			}
		}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestOpenMeteoForecastResolvesAndMaps(t *testing.T) {
	server := newOpenMeteoStub(t)
	p := NewOpenMeteoProvider(server.URL+"/v1/forecast", server.URL+"/v1/search")

	data, err := p.Forecast(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", data.Location)
	assert.Equal(t, 21, data.Current.Temperature)
	assert.Equal(t, 55, data.Current.Humidity)
	assert.Equal(t, "Sunny", data.Current.Condition)

	require.Len(t, data.Forecast, 2)
	assert.Equal(t, "2026-08-29", data.Forecast[0].Date)
	assert.Equal(t, 25, data.Forecast[0].High)
	assert.Equal(t, "Thunderstorms", data.Forecast[1].Condition)
	assert.Equal(t, 80, data.Forecast[1].Precipitation)
}

func TestOpenMeteoForecastByCoordinatesSkipsGeocoding(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temperature_2m":18,"relative_humidity_2m":60,"wind_speed_10m":8,"weather_code":3},"daily":{"time":[],"weather_code":[],"temperature_2m_max":[],"temperature_2m_min":[],"precipitation_probability_max":[]}}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		t.Error("geocoding must not be called for coordinate lookups")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewOpenMeteoProvider(server.URL+"/v1/forecast", server.URL+"/v1/search")
	data, err := p.ForecastByCoordinates(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, "48.85, 2.35", data.Location)
	assert.Equal(t, "Cloudy", data.Current.Condition)
}

func TestOpenMeteoGeocodeMiss(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewOpenMeteoProvider(server.URL+"/v1/forecast", server.URL+"/v1/search")
	_, err := p.Forecast(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestNewOpenMeteoProviderDefaultsGeocodeURL(t *testing.T) {
	p := NewOpenMeteoProvider("https://api.open-meteo.com/v1/forecast", "")
	assert.Equal(t, DefaultGeocodeURL, p.geocodeURL)
}
