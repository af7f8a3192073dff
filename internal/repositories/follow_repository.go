package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
)

// Follow toggle actions
const (
	ActionFollowed   = "followed"
	ActionUnfollowed = "unfollowed"
)

// FollowRepository defines the interface for the follow graph
type FollowRepository interface {
	ToggleFollow(followerID, followingID string) (string, error)
	Connections(userID string) models.Connections
	FollowingIDs(userID string) []string
}

// InMemoryFollowRepository implements FollowRepository as a directed edge
// set indexed in both directions, so connection queries avoid full scans.
type InMemoryFollowRepository struct {
	mu        sync.RWMutex
	following map[string]map[string]models.FollowEdge // follower -> following -> edge
	followers map[string]map[string]bool              // following -> follower set
}

// NewInMemoryFollowRepository creates an empty follow graph
func NewInMemoryFollowRepository() *InMemoryFollowRepository {
	return &InMemoryFollowRepository{
		following: make(map[string]map[string]models.FollowEdge),
		followers: make(map[string]map[string]bool),
	}
}

// ToggleFollow inserts or removes the (follower, following) edge depending
// on whether it currently exists. Self-follows are rejected and never
// mutate state.
func (r *InMemoryFollowRepository) ToggleFollow(followerID, followingID string) (string, error) {
	if followerID == followingID {
		return "", fmt.Errorf("cannot follow yourself: %w", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.following[followerID][followingID]; exists {
		delete(r.following[followerID], followingID)
		delete(r.followers[followingID], followerID)
		return ActionUnfollowed, nil
	}

	if r.following[followerID] == nil {
		r.following[followerID] = make(map[string]models.FollowEdge)
	}
	if r.followers[followingID] == nil {
		r.followers[followingID] = make(map[string]bool)
	}
	r.following[followerID][followingID] = models.FollowEdge{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	r.followers[followingID][followerID] = true
	return ActionFollowed, nil
}

// Connections returns follower/following counts and id lists for a user
func (r *InMemoryFollowRepository) Connections(userID string) models.Connections {
	r.mu.RLock()
	defer r.mu.RUnlock()

	followers := make([]string, 0, len(r.followers[userID]))
	for id := range r.followers[userID] {
		followers = append(followers, id)
	}
	following := make([]string, 0, len(r.following[userID]))
	for id := range r.following[userID] {
		following = append(following, id)
	}
	sort.Strings(followers)
	sort.Strings(following)

	return models.Connections{
		Followers:     len(followers),
		Following:     len(following),
		FollowersList: followers,
		FollowingList: following,
	}
}

// FollowingIDs lists the users someone follows, for feed composition
func (r *InMemoryFollowRepository) FollowingIDs(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.following[userID]))
	for id := range r.following[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
