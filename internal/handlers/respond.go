package handlers

import (
	"errors"
	"net/http"

	"github.com/BillyBobz/travel-planner/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// fail writes the error envelope, mapping repository sentinels to statuses
func fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repositories.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, repositories.ErrConflict):
		status = http.StatusConflict
	}
	return c.JSON(status, echo.Map{"success": false, "error": err.Error()})
}

// failWith writes the error envelope with an explicit status and message
func failWith(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "error": message})
}

// bindAndValidate decodes the body and runs struct validation, responding
// with a 400 envelope on either failure
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, failWith(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		msg := "Validation failed"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		return false, failWith(c, http.StatusBadRequest, msg)
	}
	return true, nil
}
