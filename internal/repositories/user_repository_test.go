package repositories

import (
	"testing"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDefaultsAndEmailUniqueness(t *testing.T) {
	repo := NewInMemoryUserRepository()

	user, err := repo.Create(models.CreateUserRequest{
		Email: "john@example.com",
		Name:  "John Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "mid-range", user.Preferences.TravelStyle)
	assert.Equal(t, "temperate", user.Preferences.PreferredClimate)
	assert.NotNil(t, user.Preferences.Interests)

	_, err = repo.Create(models.CreateUserRequest{Email: "JOHN@example.com", Name: "Duplicate"})
	assert.ErrorIs(t, err, ErrConflict, "email uniqueness is case-insensitive")

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserEmptyInterestsSurviveClone(t *testing.T) {
	repo := NewInMemoryUserRepository()
	repo.Seed(models.User{ID: "u1", Email: "bare@example.com", Name: "Bare"})

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.NotNil(t, got.Preferences.Interests)
}

func TestUpdateUserMergePatchAndEmailReindex(t *testing.T) {
	repo := NewInMemoryUserRepository()
	user, err := repo.Create(models.CreateUserRequest{Email: "john@example.com", Name: "John Doe"})
	require.NoError(t, err)
	_, err = repo.Create(models.CreateUserRequest{Email: "jane@example.com", Name: "Jane Doe"})
	require.NoError(t, err)

	_, err = repo.Update(user.ID, models.UpdateUserRequest{Email: strPtr("jane@example.com")})
	assert.ErrorIs(t, err, ErrConflict, "cannot take another user's email")

	updated, err := repo.Update(user.ID, models.UpdateUserRequest{
		Email: strPtr("johnny@example.com"),
		Name:  strPtr("Johnny"),
	})
	require.NoError(t, err)
	assert.Equal(t, "johnny@example.com", updated.Email)
	assert.Equal(t, "Johnny", updated.Name)
	assert.Equal(t, user.ID, updated.ID)

	// the old address is free again after the reindex
	_, err = repo.Create(models.CreateUserRequest{Email: "john@example.com", Name: "New John"})
	assert.NoError(t, err)
}

func TestUpdatePreferences(t *testing.T) {
	repo := NewInMemoryUserRepository()
	user, err := repo.Create(models.CreateUserRequest{Email: "john@example.com", Name: "John Doe"})
	require.NoError(t, err)

	interests := []string{"hiking", "food"}
	updated, err := repo.UpdatePreferences(user.ID, models.UpdatePreferencesRequest{
		TravelStyle: strPtr("luxury"),
		Interests:   &interests,
	})
	require.NoError(t, err)
	assert.Equal(t, "luxury", updated.Preferences.TravelStyle)
	assert.Equal(t, interests, updated.Preferences.Interests)
	assert.Equal(t, "temperate", updated.Preferences.PreferredClimate, "omitted fields are left alone")

	_, err = repo.UpdatePreferences("missing", models.UpdatePreferencesRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
