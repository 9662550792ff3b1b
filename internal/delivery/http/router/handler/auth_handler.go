// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"depot/internal/delivery/http/middleware"
	"depot/internal/delivery/http/response"
	"depot/internal/domain/entity"
	"depot/internal/domain/service"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is the HTTP-only cookie carrying the refresh token.
const refreshCookieName = "refresh_token"

// TokenResponse is the body returned by sign-in and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileResponse is the user representation returned to clients. It never
// carries the password hash or the creation timestamp.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfileResponse maps a user entity to its public representation.
func NewProfileResponse(user *entity.User) *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID,
		Fullname:  user.Fullname,
		Phone:     user.Phone,
		Email:     user.Email,
		IsActive:  user.IsActive,
		UpdatedAt: user.UpdatedAt,
	}
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC   usecase.AuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:   authUC,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// SignUp handles the user registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, NewProfileResponse(user), "User registered successfully")
}

// SignIn handles the password login. Credentials arrive as form fields
// username and password. The access token is returned in the body and
// mirrored in the Authorization header; the refresh token only travels in
// an HTTP-only cookie.
func (h *AuthHandler) SignIn(c echo.Context) error {
	input := &usecase.SignInInput{
		Email:    c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if input.Email == "" || input.Password == "" {
		return response.BindingError(c, "INVALID_INPUT", "Username and password are required")
	}

	output, err := h.authUC.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)
	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+output.AccessToken)

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
	}, "Login successful")
}

// Refresh issues a new access token from the refresh cookie. The refresh
// token itself is not rotated.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return response.Unauthorized(c, "TOKEN_MISSING", "Refresh token cookie is missing")
	}

	accessToken, err := h.authUC.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+accessToken)

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, "Token refreshed successfully")
}

// Logout clears the refresh cookie. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "Logout successful")
}

// Profile returns the authenticated user's profile.
func (h *AuthHandler) Profile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	return response.Success(c, http.StatusOK, NewProfileResponse(user), "")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.RefreshTTL().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
