package handlers

import (
	"net/http"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/user/:userId", h.GetNotifications)
	g.PATCH("/:id/read", h.MarkAsRead)
	g.POST("", h.CreateNotification)
	g.DELETE("/:id", h.DeleteNotification)
	g.PATCH("/user/:userId/read-all", h.MarkAllAsRead)
	g.GET("/user/:userId/stats", h.GetStats)
}

// GetNotifications returns a user's notifications, newest first, with the
// unread count
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	notifications := h.notificationRepository.ListByUser(c.Param("userId"))

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"notifications": notifications,
		"unreadCount":   unread,
	})
}

// MarkAsRead flags a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notification, err := h.notificationRepository.MarkRead(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"notification": notification,
	})
}

// CreateNotification creates a new notification for a user
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	notification := h.notificationRepository.Create(req)
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"notification": notification,
	})
}

// DeleteNotification removes a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	if err := h.notificationRepository.Delete(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Notification deleted successfully",
	})
}

// MarkAllAsRead flags every unread notification of a user as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	updated := h.notificationRepository.MarkAllRead(c.Param("userId"))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "All notifications marked as read",
		"updated": updated,
	})
}

// GetStats returns aggregate notification statistics for a user
func (h *NotificationHandler) GetStats(c echo.Context) error {
	stats := h.notificationRepository.Stats(c.Param("userId"))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "stats": stats})
}
