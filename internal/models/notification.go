package models

import "time"

// Notification types
const (
	NotificationTypeWeather  = "weather"
	NotificationTypeBooking  = "booking"
	NotificationTypeReminder = "reminder"
	NotificationTypeSocial   = "social"
	NotificationTypeAI       = "ai"
	NotificationTypeSystem   = "system"
)

// Notification priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Notification represents a per-user notification record.
// UserID, Type and CreatedAt are immutable after creation; only the read
// flag and metadata may change.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Priority  string         `json:"priority"`
	Read      bool           `json:"read"`
	ActionURL string         `json:"actionUrl,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"` // present in the shape, never evaluated
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// CreateNotificationRequest defines the body for creating a notification
type CreateNotificationRequest struct {
	UserID    string         `json:"userId" validate:"required"`
	Type      string         `json:"type" validate:"required,oneof=weather booking reminder social ai system"`
	Title     string         `json:"title" validate:"required"`
	Message   string         `json:"message" validate:"required"`
	Priority  string         `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ActionURL string         `json:"actionUrl,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NotificationStats aggregates a user's notifications
type NotificationStats struct {
	Total          int            `json:"total"`
	Unread         int            `json:"unread"`
	ByType         map[string]int `json:"byType"`
	ByPriority     map[string]int `json:"byPriority"`
	RecentActivity int            `json:"recentActivity"` // created within the last 24h
}
