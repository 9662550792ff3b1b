package middleware

import (
	"strings"

	"depot/internal/delivery/http/response"
	"depot/internal/domain/entity"
	"depot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CurrentUserKey is the echo.Context key under which the authenticated user
// is stored.
const CurrentUserKey = "currentUser"

// AuthMiddleware guards routes that require a valid access token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer access token and stores the resolved
// user on the context. Refresh tokens are rejected here; they are only
// accepted by the refresh endpoint.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUC.ResolveAccess(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(CurrentUserKey, user)

		return next(c)
	}
}

// CurrentUser extracts the authenticated user stored by Authenticate.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(CurrentUserKey).(*entity.User)

	return user
}
