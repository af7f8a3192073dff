package handlers

import (
	"net/http"
	"testing"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSocialServer(t *testing.T) (*echo.Echo, *repositories.InMemorySocialTripRepository, *repositories.InMemoryFollowRepository) {
	t.Helper()
	e := newTestServer()
	socialRepo := repositories.NewInMemorySocialTripRepository()
	followRepo := repositories.NewInMemoryFollowRepository()
	NewSocialHandler(socialRepo, followRepo).RegisterSocialRoutes(e.Group("/api/social"))
	return e, socialRepo, followRepo
}

func TestShareTripEndpoint(t *testing.T) {
	e, _, _ := setupSocialServer(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/social/trips/share",
		`{"userId":"user1","userName":"John Doe","title":"Island Hopping","destinations":["Santorini","Mykonos"],"tags":["greece"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Trip shared successfully!", payload["message"])

	trip := payload["trip"].(map[string]any)
	assert.Equal(t, true, trip["isPublic"])
	assert.Equal(t, float64(0), trip["likes"])
	assert.NotNil(t, trip["likedBy"])
	assert.NotNil(t, trip["comments"])

	// destinations are required
	rec, payload = doJSON(t, e, http.MethodPost, "/api/social/trips/share",
		`{"userId":"user1","userName":"John Doe","title":"No destinations"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestToggleLikeEndpoint(t *testing.T) {
	e, socialRepo, _ := setupSocialServer(t)
	trip := socialRepo.Share(models.ShareTripRequest{
		UserID: "user1", UserName: "John", Title: "Alps", Destinations: []string{"Zermatt"},
	})

	rec, payload := doJSON(t, e, http.MethodPost, "/api/social/trips/"+trip.ID+"/like", `{"userId":"user2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "liked", payload["action"])
	assert.Equal(t, float64(1), payload["trip"].(map[string]any)["likes"])

	rec, payload = doJSON(t, e, http.MethodPost, "/api/social/trips/"+trip.ID+"/like", `{"userId":"user2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unliked", payload["action"])
	assert.Equal(t, float64(0), payload["trip"].(map[string]any)["likes"])

	rec, _ = doJSON(t, e, http.MethodPost, "/api/social/trips/missing/like", `{"userId":"user2"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddCommentEndpoint(t *testing.T) {
	e, socialRepo, _ := setupSocialServer(t)
	trip := socialRepo.Share(models.ShareTripRequest{
		UserID: "user1", UserName: "John", Title: "Alps", Destinations: []string{"Zermatt"},
	})

	rec, payload := doJSON(t, e, http.MethodPost, "/api/social/trips/"+trip.ID+"/comments",
		`{"userId":"user2","userName":"Jane","content":"Looks amazing!"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Looks amazing!", payload["comment"].(map[string]any)["content"])
	assert.Len(t, payload["trip"].(map[string]any)["comments"], 1)

	// empty content fails validation
	rec, payload = doJSON(t, e, http.MethodPost, "/api/social/trips/"+trip.ID+"/comments",
		`{"userId":"user2","userName":"Jane","content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestToggleFollowEndpoint(t *testing.T) {
	e, _, followRepo := setupSocialServer(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/social/users/user2/follow", `{"userId":"user1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "followed", payload["action"])
	assert.Equal(t, "User followed successfully", payload["message"])
	assert.Equal(t, []string{"user2"}, followRepo.FollowingIDs("user1"))

	rec, payload = doJSON(t, e, http.MethodPost, "/api/social/users/user2/follow", `{"userId":"user1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "unfollowed", payload["action"])
	assert.Equal(t, "User unfollowed successfully", payload["message"])

	rec, payload = doJSON(t, e, http.MethodPost, "/api/social/users/user1/follow", `{"userId":"user1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestGetConnectionsEndpoint(t *testing.T) {
	e, _, followRepo := setupSocialServer(t)
	_, err := followRepo.ToggleFollow("user1", "user2")
	require.NoError(t, err)
	_, err = followRepo.ToggleFollow("user3", "user1")
	require.NoError(t, err)

	rec, payload := doJSON(t, e, http.MethodGet, "/api/social/users/user1/connections", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	connections := payload["connections"].(map[string]any)
	assert.Equal(t, float64(1), connections["followers"])
	assert.Equal(t, float64(1), connections["following"])
	assert.Equal(t, []any{"user3"}, connections["followersList"])
	assert.Equal(t, []any{"user2"}, connections["followingList"])
}

func TestFeedEndpoint(t *testing.T) {
	e, socialRepo, followRepo := setupSocialServer(t)
	socialRepo.Share(models.ShareTripRequest{UserID: "user2", UserName: "Jane", Title: "Asia Tour", Destinations: []string{"Tokyo"}})
	socialRepo.Share(models.ShareTripRequest{UserID: "user3", UserName: "Sam", Title: "Hidden", Destinations: []string{"Oslo"}})
	_, err := followRepo.ToggleFollow("user1", "user2")
	require.NoError(t, err)

	rec, payload := doJSON(t, e, http.MethodGet, "/api/social/feed/user1?page=1&limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["trips"], 1, "only followed users' trips appear")

	pagination := payload["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, false, pagination["hasMore"])

	// omitted paging params fall back to the store defaults
	rec, payload = doJSON(t, e, http.MethodGet, "/api/social/feed/user1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	pagination = payload["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(10), pagination["limit"])
}

func TestSearchTripsEndpoint(t *testing.T) {
	e, socialRepo, _ := setupSocialServer(t)
	socialRepo.Share(models.ShareTripRequest{UserID: "user1", UserName: "John", Title: "European Adventure", Destinations: []string{"Paris"}, Tags: []string{"europe", "culture"}})
	socialRepo.Share(models.ShareTripRequest{UserID: "user2", UserName: "Jane", Title: "Asia Tour", Destinations: []string{"Tokyo"}, Tags: []string{"asia"}})

	rec, payload := doJSON(t, e, http.MethodGet, "/api/social/trips/search?query=european&tags=europe,culture", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), payload["count"])
	assert.Len(t, payload["trips"], 1)
}

func TestTrendingEndpoint(t *testing.T) {
	e, socialRepo, _ := setupSocialServer(t)
	socialRepo.Share(models.ShareTripRequest{UserID: "user1", UserName: "John", Title: "a", Destinations: []string{"Paris"}, Tags: []string{"europe"}})
	socialRepo.Share(models.ShareTripRequest{UserID: "user2", UserName: "Jane", Title: "b", Destinations: []string{"Paris", "Rome"}, Tags: []string{"europe", "food"}})

	rec, payload := doJSON(t, e, http.MethodGet, "/api/social/trending", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	trending := payload["trending"].(map[string]any)
	assert.Equal(t, float64(2), trending["totalTrips"])

	destinations := trending["destinations"].([]any)
	require.NotEmpty(t, destinations)
	top := destinations[0].(map[string]any)
	assert.Equal(t, "Paris", top["destination"])
	assert.Equal(t, float64(2), top["count"])

	tags := trending["tags"].([]any)
	require.NotEmpty(t, tags)
	assert.Equal(t, "europe", tags[0].(map[string]any)["tag"])
}
