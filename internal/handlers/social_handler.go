package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SocialHandler handles trip sharing, likes, comments and the follow graph
type SocialHandler struct {
	socialTripRepository repositories.SocialTripRepository
	followRepository     repositories.FollowRepository
}

// NewSocialHandler creates a new SocialHandler
func NewSocialHandler(socialRepo repositories.SocialTripRepository, followRepo repositories.FollowRepository) *SocialHandler {
	return &SocialHandler{
		socialTripRepository: socialRepo,
		followRepository:     followRepo,
	}
}

// RegisterSocialRoutes registers social routes
func (h *SocialHandler) RegisterSocialRoutes(g *echo.Group) {
	g.GET("/feed/:userId", h.GetFeed)
	g.POST("/trips/share", h.ShareTrip)
	g.POST("/trips/:tripId/like", h.ToggleLike)
	g.POST("/trips/:tripId/comments", h.AddComment)
	g.POST("/users/:targetUserId/follow", h.ToggleFollow)
	g.GET("/users/:userId/connections", h.GetConnections)
	g.GET("/trips/search", h.SearchTrips)
	g.GET("/trending", h.GetTrending)
}

// GetFeed returns the user's paginated feed: public trips by themselves or
// anyone they follow, most recently updated first
func (h *SocialHandler) GetFeed(c echo.Context) error {
	userID := c.Param("userId")

	// missing or invalid paging params parse to zero; the store applies
	// the page/limit defaults
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	following := h.followRepository.FollowingIDs(userID)
	trips, pagination := h.socialTripRepository.Feed(userID, following, page, limit)

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"trips":      trips,
		"pagination": pagination,
	})
}

// ShareTrip publishes a trip to the public feed
func (h *SocialHandler) ShareTrip(c echo.Context) error {
	var req models.ShareTripRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	trip := h.socialTripRepository.Share(req)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"trip":    trip,
		"message": "Trip shared successfully!",
	})
}

// ToggleLike likes or unlikes a trip for the acting user
func (h *SocialHandler) ToggleLike(c echo.Context) error {
	var req models.LikeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	trip, action, err := h.socialTripRepository.ToggleLike(c.Param("tripId"), req.UserID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"trip":    trip,
		"action":  action,
	})
}

// AddComment appends a comment to a shared trip
func (h *SocialHandler) AddComment(c echo.Context) error {
	var req models.AddCommentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	comment, trip, err := h.socialTripRepository.AddComment(c.Param("tripId"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"comment": comment,
		"trip":    trip,
	})
}

// ToggleFollow follows or unfollows the target user for the acting user
func (h *SocialHandler) ToggleFollow(c echo.Context) error {
	var req models.FollowRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	action, err := h.followRepository.ToggleFollow(req.UserID, c.Param("targetUserId"))
	if err != nil {
		return fail(c, err)
	}

	message := "User followed successfully"
	if action == repositories.ActionUnfollowed {
		message = "User unfollowed successfully"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"action":  action,
		"message": message,
	})
}

// GetConnections returns follower/following counts and lists for a user
func (h *SocialHandler) GetConnections(c echo.Context) error {
	connections := h.followRepository.Connections(c.Param("userId"))
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"connections": connections,
	})
}

// SearchTrips filters public trips by query, tags and destinations
func (h *SocialHandler) SearchTrips(c echo.Context) error {
	trips := h.socialTripRepository.Search(
		c.QueryParam("query"),
		splitList(c.QueryParam("tags")),
		splitList(c.QueryParam("destinations")),
	)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"trips":   trips,
		"count":   len(trips),
	})
}

// GetTrending returns the top destinations and tags from the last 30 days
func (h *SocialHandler) GetTrending(c echo.Context) error {
	destinations, tags, total := h.socialTripRepository.Trending(30 * 24 * time.Hour)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"trending": echo.Map{
			"destinations": destinations,
			"tags":         tags,
			"totalTrips":   total,
		},
	})
}

// splitList parses a comma-separated query value into trimmed items
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
