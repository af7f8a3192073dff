package models

import "time"

// ChatMessage is one turn of an assistant conversation
type ChatMessage struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"` // user, ai, system
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ChatRequest defines the body for the assistant chat endpoint
type ChatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

// OptimizeItineraryRequest defines the body for itinerary optimization
type OptimizeItineraryRequest struct {
	Itinerary   []ItineraryItem `json:"itinerary" validate:"required"`
	Preferences map[string]any  `json:"preferences,omitempty"`
	Budget      float64         `json:"budget,omitempty"`
}

// SuggestionsRequest defines the body for personalized suggestions
type SuggestionsRequest struct {
	Destination string         `json:"destination,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
	Budget      float64        `json:"budget,omitempty"`
	TravelStyle string         `json:"travelStyle,omitempty"`
}

// AnalyzeTripRequest defines the body for trip analysis
type AnalyzeTripRequest struct {
	TripData map[string]any `json:"tripData" validate:"required"`
}
