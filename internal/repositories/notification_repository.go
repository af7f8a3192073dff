package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/google/uuid"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	ListByUser(userID string) []models.Notification
	Create(req models.CreateNotificationRequest) models.Notification
	MarkRead(notificationID string) (models.Notification, error)
	MarkAllRead(userID string) int
	Delete(notificationID string) error
	Stats(userID string) models.NotificationStats
}

// InMemoryNotificationRepository implements NotificationRepository over an
// id-indexed map. All mutations take the write lock, so per-entity updates
// are serialized.
type InMemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*models.Notification
}

// NewInMemoryNotificationRepository creates an empty notification store
func NewInMemoryNotificationRepository() *InMemoryNotificationRepository {
	return &InMemoryNotificationRepository{
		notifications: make(map[string]*models.Notification),
	}
}

// Seed inserts fully-formed notifications, keeping their ids and timestamps
func (r *InMemoryNotificationRepository) Seed(notifications ...models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range notifications {
		cp := n
		r.notifications[n.ID] = &cp
	}
}

// ListByUser returns the user's notifications, newest first. An unknown
// user yields an empty slice, not an error.
func (r *InMemoryNotificationRepository) ListByUser(userID string) []models.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, cloneNotification(n))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Create stores a new unread notification with a server-assigned id and
// timestamp. Priority defaults to medium.
func (r *InMemoryNotificationRepository) Create(req models.CreateNotificationRequest) models.Notification {
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Priority:  priority,
		Read:      false,
		ActionURL: req.ActionURL,
		CreatedAt: time.Now(),
		Metadata:  req.Metadata,
	}

	r.mu.Lock()
	r.notifications[n.ID] = n
	r.mu.Unlock()

	return cloneNotification(n)
}

// MarkRead flags a notification as read. Marking an already-read
// notification succeeds without further effect.
func (r *InMemoryNotificationRepository) MarkRead(notificationID string) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[notificationID]
	if !ok {
		return models.Notification{}, fmt.Errorf("notification %s: %w", notificationID, ErrNotFound)
	}
	n.Read = true
	return cloneNotification(n), nil
}

// MarkAllRead flags every unread notification of the user as read and
// returns how many were updated. Zero notifications is a no-op.
func (r *InMemoryNotificationRepository) MarkAllRead(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := 0
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			updated++
		}
	}
	return updated
}

// Delete removes a notification by id
func (r *InMemoryNotificationRepository) Delete(notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notifications[notificationID]; !ok {
		return fmt.Errorf("notification %s: %w", notificationID, ErrNotFound)
	}
	delete(r.notifications, notificationID)
	return nil
}

// Stats aggregates the user's notifications without mutating anything
func (r *InMemoryNotificationRepository) Stats(userID string) models.NotificationStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.NotificationStats{
		ByType:     make(map[string]int),
		ByPriority: make(map[string]int),
	}
	dayAgo := time.Now().Add(-24 * time.Hour)

	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		stats.Total++
		if !n.Read {
			stats.Unread++
		}
		stats.ByType[n.Type]++
		stats.ByPriority[n.Priority]++
		if n.CreatedAt.After(dayAgo) {
			stats.RecentActivity++
		}
	}
	return stats
}

func cloneNotification(n *models.Notification) models.Notification {
	cp := *n
	if n.Metadata != nil {
		cp.Metadata = make(map[string]any, len(n.Metadata))
		for k, v := range n.Metadata {
			cp.Metadata[k] = v
		}
	}
	return cp
}
