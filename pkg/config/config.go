package config

import "os"

// Config holds the server's environment-driven settings
type Config struct {
	Port              string
	Env               string
	OpenAIKey         string
	WeatherAPIURL     string
	WeatherGeocodeURL string
}

// Load reads configuration from the environment with sensible defaults
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "5000"),
		Env:               getEnv("ENV", "development"),
		OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
		WeatherAPIURL:     getEnv("WEATHER_API_URL", ""),
		WeatherGeocodeURL: getEnv("WEATHER_GEOCODE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
