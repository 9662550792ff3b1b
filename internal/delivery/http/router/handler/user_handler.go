package handler

import (
	"log/slog"
	"net/http"

	"depot/internal/delivery/http/middleware"
	"depot/internal/delivery/http/response"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-directory handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// UpdateProfile applies a partial update to the authenticated user. Absent
// fields are left untouched.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var patch *usecase.ProfilePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user := middleware.CurrentUser(c)

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), user, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewProfileResponse(updated), "Profile updated successfully")
}

// Deactivate soft-deletes the authenticated user's account.
func (h *UserHandler) Deactivate(c echo.Context) error {
	user := middleware.CurrentUser(c)

	updated, err := h.userUC.Deactivate(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, NewProfileResponse(updated), "Account deactivated")
}

// ListUsers returns every user, including inactive ones. Administrators
// only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	user := middleware.CurrentUser(c)

	users, err := h.userUC.ListAll(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	profiles := make([]*ProfileResponse, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, NewProfileResponse(u))
	}

	return response.Success(c, http.StatusOK, profiles, "")
}
