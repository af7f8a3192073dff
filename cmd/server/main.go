package main

import (
	"log"

	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/BillyBobz/travel-planner/backend/internal/router"
	"github.com/BillyBobz/travel-planner/backend/pkg/assistant"
	"github.com/BillyBobz/travel-planner/backend/pkg/config"
	"github.com/BillyBobz/travel-planner/backend/pkg/weather"
	"github.com/BillyBobz/travel-planner/backend/validators"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	destinations := repositories.NewInMemoryDestinationRepository()
	trips := repositories.NewInMemoryTripRepository()
	users := repositories.NewInMemoryUserRepository()
	bookings := repositories.NewInMemoryBookingRepository()
	notifications := repositories.NewInMemoryNotificationRepository()
	socialTrips := repositories.NewInMemorySocialTripRepository()
	follows := repositories.NewInMemoryFollowRepository()

	repositories.SeedDemoData(destinations, trips, users, bookings, notifications, socialTrips)
	logger.Info("demo data seeded")

	var weatherProvider weather.Provider
	if cfg.WeatherAPIURL != "" {
		weatherProvider = weather.NewOpenMeteoProvider(cfg.WeatherAPIURL, cfg.WeatherGeocodeURL)
		logger.Info("using Open-Meteo weather provider", zap.String("baseURL", cfg.WeatherAPIURL))
	} else {
		weatherProvider = weather.NewMockProvider()
		logger.Info("using mock weather provider")
	}

	travelAssistant := assistant.New(cfg.OpenAIKey)
	logger.Info("assistant ready", zap.String("model", travelAssistant.Model()))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e, logger)
	router.SetupRoutes(e, router.Dependencies{
		Destinations:  destinations,
		Trips:         trips,
		Users:         users,
		Bookings:      bookings,
		Notifications: notifications,
		SocialTrips:   socialTrips,
		Follows:       follows,
		Weather:       weatherProvider,
		Assistant:     travelAssistant,
		Logger:        logger,
	})

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
