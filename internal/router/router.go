package router

import (
	"github.com/BillyBobz/travel-planner/backend/internal/handlers"
	appmiddleware "github.com/BillyBobz/travel-planner/backend/internal/middleware"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/BillyBobz/travel-planner/backend/pkg/assistant"
	"github.com/BillyBobz/travel-planner/backend/pkg/weather"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Dependencies holds everything the route tree needs
type Dependencies struct {
	Destinations  repositories.DestinationRepository
	Trips         repositories.TripRepository
	Users         repositories.UserRepository
	Bookings      repositories.BookingRepository
	Notifications repositories.NotificationRepository
	SocialTrips   repositories.SocialTripRepository
	Follows       repositories.FollowRepository
	Weather       weather.Provider
	Assistant     *assistant.Assistant
	Logger        *zap.Logger
}

// SetupMiddleware configures global middleware for the Echo instance
func SetupMiddleware(e *echo.Echo, logger *zap.Logger) {
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
}

// SetupRoutes registers all API routes on the Echo instance
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	logger := deps.Logger

	destinationHandler := handlers.NewDestinationHandler(deps.Destinations)
	tripHandler := handlers.NewTripHandler(deps.Trips)
	userHandler := handlers.NewUserHandler(deps.Users)
	bookingHandler := handlers.NewBookingHandler(deps.Bookings)
	weatherHandler := handlers.NewWeatherHandler(deps.Weather)
	assistantHandler := handlers.NewAssistantHandler(deps.Assistant, logger)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifications)
	socialHandler := handlers.NewSocialHandler(deps.SocialTrips, deps.Follows)

	api := e.Group("/api")

	api.GET("/health", handlers.HealthCheck)
	destinationHandler.RegisterDestinationRoutes(api.Group("/destinations"))
	tripHandler.RegisterTripRoutes(api.Group("/trips"))
	userHandler.RegisterUserRoutes(api.Group("/users"))
	bookingHandler.RegisterBookingRoutes(api.Group("/bookings"))
	weatherHandler.RegisterWeatherRoutes(api.Group("/weather"))
	assistantHandler.RegisterAssistantRoutes(api.Group("/ai-assistant"))
	notificationHandler.RegisterNotificationRoutes(api.Group("/notifications"))
	socialHandler.RegisterSocialRoutes(api.Group("/social"))

	logger.Info("routes registered",
		zap.Strings("groups", []string{
			"/api/health", "/api/destinations", "/api/trips", "/api/users",
			"/api/bookings", "/api/weather", "/api/ai-assistant",
			"/api/notifications", "/api/social",
		}))
}
