package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFollowFlipsEdge(t *testing.T) {
	repo := NewInMemoryFollowRepository()

	action, err := repo.ToggleFollow("user1", "user2")
	require.NoError(t, err)
	assert.Equal(t, ActionFollowed, action)
	assert.Equal(t, []string{"user2"}, repo.FollowingIDs("user1"))

	action, err = repo.ToggleFollow("user1", "user2")
	require.NoError(t, err)
	assert.Equal(t, ActionUnfollowed, action)
	assert.Empty(t, repo.FollowingIDs("user1"))

	// a third toggle recreates the edge
	action, err = repo.ToggleFollow("user1", "user2")
	require.NoError(t, err)
	assert.Equal(t, ActionFollowed, action)
}

func TestToggleFollowRejectsSelfFollow(t *testing.T) {
	repo := NewInMemoryFollowRepository()

	_, err := repo.ToggleFollow("user1", "user1")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	conns := repo.Connections("user1")
	assert.Zero(t, conns.Followers)
	assert.Zero(t, conns.Following)
}

func TestConnectionsCountsBothDirections(t *testing.T) {
	repo := NewInMemoryFollowRepository()

	mustFollow := func(follower, following string) {
		t.Helper()
		action, err := repo.ToggleFollow(follower, following)
		require.NoError(t, err)
		require.Equal(t, ActionFollowed, action)
	}

	mustFollow("user1", "user2")
	mustFollow("user1", "user3")
	mustFollow("user3", "user1")
	mustFollow("user2", "user1")

	conns := repo.Connections("user1")
	assert.Equal(t, 2, conns.Followers)
	assert.Equal(t, 2, conns.Following)
	assert.Equal(t, []string{"user2", "user3"}, conns.FollowersList)
	assert.Equal(t, []string{"user2", "user3"}, conns.FollowingList)

	// following is directional: user1 -> user2 does not imply the reverse
	conns = repo.Connections("user3")
	assert.Equal(t, 1, conns.Followers)
	assert.Equal(t, []string{"user1"}, conns.FollowersList)

	// unfollow prunes both indexes
	_, err := repo.ToggleFollow("user2", "user1")
	require.NoError(t, err)
	conns = repo.Connections("user1")
	assert.Equal(t, 1, conns.Followers)
	assert.Equal(t, []string{"user3"}, conns.FollowersList)
}

func TestConnectionsUnknownUserIsEmpty(t *testing.T) {
	repo := NewInMemoryFollowRepository()

	conns := repo.Connections("nobody")
	assert.Zero(t, conns.Followers)
	assert.Zero(t, conns.Following)
	assert.NotNil(t, conns.FollowersList)
	assert.NotNil(t, conns.FollowingList)
}
