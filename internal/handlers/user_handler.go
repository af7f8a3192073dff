package handlers

import (
	"net/http"

	"github.com/BillyBobz/travel-planner/backend/internal/models"
	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/:id", h.GetUser)
	g.POST("", h.CreateUser)
	g.PUT("/:id", h.UpdateUser)
	g.PUT("/:id/preferences", h.UpdatePreferences)
}

// GetUser returns a user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}

// CreateUser creates a new user; duplicate emails conflict
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userRepository.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": user})
}

// UpdateUser merge-patches a user profile; the id never changes
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req models.UpdateUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userRepository.Update(c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}

// UpdatePreferences merge-patches the user's travel preferences
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	var req models.UpdatePreferencesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userRepository.UpdatePreferences(c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}
