package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/google/uuid"
)

// Like toggle actions
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// SocialTripRepository defines the interface for shared-trip operations
type SocialTripRepository interface {
	Feed(userID string, followingIDs []string, page, limit int) ([]models.SocialTrip, models.Pagination)
	Share(req models.ShareTripRequest) models.SocialTrip
	ToggleLike(tripID, userID string) (models.SocialTrip, string, error)
	AddComment(tripID string, req models.AddCommentRequest) (models.Comment, models.SocialTrip, error)
	Search(query string, tags, destinations []string) []models.SocialTrip
	Trending(window time.Duration) ([]models.TrendingDestination, []models.TrendingTag, int)
}

// InMemorySocialTripRepository implements SocialTripRepository over an
// id-indexed map. The insertion-order index keeps trending ties and
// equal-updatedAt orderings stable.
type InMemorySocialTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*models.SocialTrip
	order []string
}

// NewInMemorySocialTripRepository creates an empty shared-trip store
func NewInMemorySocialTripRepository() *InMemorySocialTripRepository {
	return &InMemorySocialTripRepository{
		trips: make(map[string]*models.SocialTrip),
	}
}

// Seed inserts fully-formed trips, keeping their ids and timestamps
func (r *InMemorySocialTripRepository) Seed(trips ...models.SocialTrip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range trips {
		cp := t
		r.trips[t.ID] = &cp
		r.order = append(r.order, t.ID)
	}
}

// Feed returns public trips authored by the user or by anyone they follow,
// most recently updated first, paginated by offset. A page past the end
// yields an empty slice with hasMore=false.
func (r *InMemorySocialTripRepository) Feed(userID string, followingIDs []string, page, limit int) ([]models.SocialTrip, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	authors := make(map[string]bool, len(followingIDs)+1)
	authors[userID] = true
	for _, id := range followingIDs {
		authors[id] = true
	}

	r.mu.RLock()
	feed := make([]models.SocialTrip, 0)
	for _, id := range r.order {
		t := r.trips[id]
		if t.IsPublic && authors[t.UserID] {
			feed = append(feed, cloneSocialTrip(t))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].UpdatedAt.After(feed[j].UpdatedAt)
	})

	total := len(feed)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return feed[start:end], models.Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: end < total,
	}
}

// Share publishes a trip. Shared trips are always public and start with an
// empty like state; the author's name and avatar are snapshotted.
func (r *InMemorySocialTripRepository) Share(req models.ShareTripRequest) models.SocialTrip {
	now := time.Now()
	t := &models.SocialTrip{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		UserName:     req.UserName,
		UserAvatar:   req.UserAvatar,
		Title:        req.Title,
		Description:  req.Description,
		Destinations: req.Destinations,
		Images:       orEmpty(req.Images),
		IsPublic:     true,
		Likes:        0,
		LikedBy:      []string{},
		Comments:     []models.Comment{},
		Tags:         orEmpty(req.Tags),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	r.trips[t.ID] = t
	r.order = append(r.order, t.ID)
	r.mu.Unlock()

	return cloneSocialTrip(t)
}

// ToggleLike flips the user's like on a trip. The current membership of the
// user in likedBy decides the action; the set and the counter change
// together under the same lock so likes == len(likedBy) always holds.
func (r *InMemorySocialTripRepository) ToggleLike(tripID, userID string) (models.SocialTrip, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[tripID]
	if !ok {
		return models.SocialTrip{}, "", fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
	}

	action := ActionLiked
	liked := false
	for _, id := range t.LikedBy {
		if id == userID {
			liked = true
			break
		}
	}

	if liked {
		kept := t.LikedBy[:0]
		for _, id := range t.LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		t.LikedBy = kept
		t.Likes = len(t.LikedBy)
		action = ActionUnliked
	} else {
		t.LikedBy = append(t.LikedBy, userID)
		t.Likes = len(t.LikedBy)
	}
	t.UpdatedAt = time.Now()

	return cloneSocialTrip(t), action, nil
}

// AddComment appends a comment to a trip and bumps its updatedAt
func (r *InMemorySocialTripRepository) AddComment(tripID string, req models.AddCommentRequest) (models.Comment, models.SocialTrip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[tripID]
	if !ok {
		return models.Comment{}, models.SocialTrip{}, fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
	}

	comment := models.Comment{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserAvatar: req.UserAvatar,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}
	t.Comments = append(t.Comments, comment)
	t.UpdatedAt = time.Now()

	return comment, cloneSocialTrip(t), nil
}

// Search filters public trips. Every filter is optional; provided filters
// combine with AND. The query matches as a case-insensitive substring of
// title, description or author name; tags and destinations match
// case-insensitively against the trip's lists.
func (r *InMemorySocialTripRepository) Search(query string, tags, destinations []string) []models.SocialTrip {
	r.mu.RLock()
	matched := make([]models.SocialTrip, 0)
	for _, id := range r.order {
		t := r.trips[id]
		if !t.IsPublic {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		if len(tags) > 0 && !anyInList(t.Tags, tags) {
			continue
		}
		if len(destinations) > 0 && !anyInList(t.Destinations, destinations) {
			continue
		}
		matched = append(matched, cloneSocialTrip(t))
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})
	return matched
}

// Trending counts destinations and tags across public trips created within
// the window and returns the top 10 of each, plus the number of trips
// considered. Ties keep first-seen order.
func (r *InMemorySocialTripRepository) Trending(window time.Duration) ([]models.TrendingDestination, []models.TrendingTag, int) {
	cutoff := time.Now().Add(-window)

	r.mu.RLock()
	destCounts := make(map[string]int)
	tagCounts := make(map[string]int)
	var destOrder, tagOrder []string
	total := 0
	for _, id := range r.order {
		t := r.trips[id]
		if !t.IsPublic || !t.CreatedAt.After(cutoff) {
			continue
		}
		total++
		for _, d := range t.Destinations {
			if destCounts[d] == 0 {
				destOrder = append(destOrder, d)
			}
			destCounts[d]++
		}
		for _, tag := range t.Tags {
			if tagCounts[tag] == 0 {
				tagOrder = append(tagOrder, tag)
			}
			tagCounts[tag]++
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(destOrder, func(i, j int) bool {
		return destCounts[destOrder[i]] > destCounts[destOrder[j]]
	})
	sort.SliceStable(tagOrder, func(i, j int) bool {
		return tagCounts[tagOrder[i]] > tagCounts[tagOrder[j]]
	})

	dests := make([]models.TrendingDestination, 0, 10)
	for _, d := range destOrder {
		if len(dests) == 10 {
			break
		}
		dests = append(dests, models.TrendingDestination{Destination: d, Count: destCounts[d]})
	}
	tagsOut := make([]models.TrendingTag, 0, 10)
	for _, tag := range tagOrder {
		if len(tagsOut) == 10 {
			break
		}
		tagsOut = append(tagsOut, models.TrendingTag{Tag: tag, Count: tagCounts[tag]})
	}
	return dests, tagsOut, total
}

func matchesQuery(t *models.SocialTrip, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.UserName), q)
}

// anyInList reports whether any wanted value appears in the trip's list,
// comparing case-insensitively
func anyInList(list, wanted []string) bool {
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		for _, item := range list {
			if strings.ToLower(item) == w {
				return true
			}
		}
	}
	return false
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// cloneSocialTrip copies with non-nil slice bases so empty lists stay []
// in JSON rather than null
func cloneSocialTrip(t *models.SocialTrip) models.SocialTrip {
	cp := *t
	cp.Destinations = append([]string{}, t.Destinations...)
	cp.Images = append([]string{}, t.Images...)
	cp.LikedBy = append([]string{}, t.LikedBy...)
	cp.Comments = append([]models.Comment{}, t.Comments...)
	cp.Tags = append([]string{}, t.Tags...)
	return cp
}
