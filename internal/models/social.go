package models

import "time"

// Comment represents a comment on a shared trip. It is owned by its parent
// SocialTrip and has no independent lifecycle.
type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SocialTrip represents a publicly shareable trip post. The author's
// name/avatar are snapshots taken at share time, not live user references.
// Likes must always equal len(LikedBy).
type SocialTrip struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	UserAvatar   string    `json:"userAvatar,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Destinations []string  `json:"destinations"`
	Images       []string  `json:"images"`
	IsPublic     bool      `json:"isPublic"`
	Likes        int       `json:"likes"`
	LikedBy      []string  `json:"likedBy"`
	Comments     []Comment `json:"comments"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FollowEdge is a directed follower -> following relation
type FollowEdge struct {
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Connections summarizes a user's follow relationships in both directions
type Connections struct {
	Followers     int      `json:"followers"`
	Following     int      `json:"following"`
	FollowersList []string `json:"followersList"`
	FollowingList []string `json:"followingList"`
}

// TrendingDestination is a destination name with its occurrence count
type TrendingDestination struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// TrendingTag is a tag with its occurrence count
type TrendingTag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Pagination describes offset-based paging of a feed response
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// ShareTripRequest defines the body for sharing a trip publicly
type ShareTripRequest struct {
	UserID       string   `json:"userId" validate:"required"`
	UserName     string   `json:"userName" validate:"required"`
	UserAvatar   string   `json:"userAvatar,omitempty"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Destinations []string `json:"destinations" validate:"required,min=1"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
}

// LikeRequest identifies the acting user for a like toggle
type LikeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// AddCommentRequest defines the body for commenting on a shared trip
type AddCommentRequest struct {
	UserID     string `json:"userId" validate:"required"`
	UserName   string `json:"userName" validate:"required"`
	UserAvatar string `json:"userAvatar,omitempty"`
	Content    string `json:"content" validate:"required"`
}

// FollowRequest identifies the acting user for a follow toggle
type FollowRequest struct {
	UserID string `json:"userId" validate:"required"`
}
