package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/BillyBobz/travel-planner/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func setupNotificationServer(t *testing.T) (*echo.Echo, *repositories.InMemoryNotificationRepository) {
	t.Helper()
	e := newTestServer()
	repo := repositories.NewInMemoryNotificationRepository()
	NewNotificationHandler(repo).RegisterNotificationRoutes(e.Group("/api/notifications"))
	return e, repo
}

func TestGetNotificationsEnvelope(t *testing.T) {
	e, repo := setupNotificationServer(t)
	repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeWeather, Title: "a", Message: "a"})
	created := repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeBooking, Title: "b", Message: "b"})
	_, err := repo.MarkRead(created.ID)
	require.NoError(t, err)

	rec, payload := doJSON(t, e, http.MethodGet, "/api/notifications/user/user1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Len(t, payload["notifications"], 2)
	assert.Equal(t, float64(1), payload["unreadCount"])
}

func TestCreateNotificationValidation(t *testing.T) {
	e, _ := setupNotificationServer(t)

	rec, payload := doJSON(t, e, http.MethodPost, "/api/notifications",
		`{"userId":"user1","type":"weather","title":"Alert","message":"Rain"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	notification := payload["notification"].(map[string]any)
	assert.Equal(t, "medium", notification["priority"])
	assert.Equal(t, false, notification["read"])

	// unknown type fails struct validation
	rec, payload = doJSON(t, e, http.MethodPost, "/api/notifications",
		`{"userId":"user1","type":"bogus","title":"Alert","message":"Rain"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])

	rec, payload = doJSON(t, e, http.MethodPost, "/api/notifications", `{"type":"weather"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, payload["success"])
}

func TestMarkAsReadStatusMapping(t *testing.T) {
	e, repo := setupNotificationServer(t)
	n := repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeAI, Title: "t", Message: "m"})

	rec, payload := doJSON(t, e, http.MethodPatch, "/api/notifications/"+n.ID+"/read", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["notification"].(map[string]any)["read"])

	rec, payload = doJSON(t, e, http.MethodPatch, "/api/notifications/missing/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, payload["success"])
	assert.NotEmpty(t, payload["error"])
}

func TestMarkAllAsReadEndpoint(t *testing.T) {
	e, repo := setupNotificationServer(t)
	repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeWeather, Title: "a", Message: "a"})
	repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeSocial, Title: "b", Message: "b"})

	rec, payload := doJSON(t, e, http.MethodPatch, "/api/notifications/user/user1/read-all", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), payload["updated"])

	_, payload = doJSON(t, e, http.MethodPatch, "/api/notifications/user/user1/read-all", "")
	assert.Equal(t, float64(0), payload["updated"])
}

func TestDeleteNotificationEndpoint(t *testing.T) {
	e, repo := setupNotificationServer(t)
	n := repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeSystem, Title: "t", Message: "m"})

	rec, payload := doJSON(t, e, http.MethodDelete, "/api/notifications/"+n.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])

	rec, _ = doJSON(t, e, http.MethodDelete, "/api/notifications/"+n.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationStatsEndpoint(t *testing.T) {
	e, repo := setupNotificationServer(t)
	repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeWeather, Title: "a", Message: "a", Priority: models.PriorityHigh})
	repo.Create(models.CreateNotificationRequest{UserID: "user1", Type: models.NotificationTypeWeather, Title: "b", Message: "b"})

	rec, payload := doJSON(t, e, http.MethodGet, "/api/notifications/user/user1/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	stats := payload["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["total"])
	assert.Equal(t, float64(2), stats["unread"])
	assert.Equal(t, float64(2), stats["byType"].(map[string]any)["weather"])
	assert.Equal(t, float64(1), stats["byPriority"].(map[string]any)["high"])
}
