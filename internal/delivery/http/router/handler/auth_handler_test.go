package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"depot/config"
	"depot/internal/domain/entity"
	"depot/internal/infra/auth"
	mockrepo "depot/internal/mocks/repository"
	mocksvc "depot/internal/mocks/service"
	"depot/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:     "handler-test-secret",
		Algorithm:  "HS256",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}

	return cfg
}

func newAuthHandler(t *testing.T, userRepo *mockrepo.MockUserRepository, hasher *mocksvc.MockPasswordHasher) *AuthHandler {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})

	return NewAuthHandler(authUC, tokenSvc, logger)
}

func signInRequest(email, password string) *http.Request {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func TestAuthHandler_SignIn_SetsRefreshCookie(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)

	user := &entity.User{ID: 7, Email: "kim@example.com", PasswordHash: "stored-hash", IsActive: true}
	userRepo.On("FindByEmail", mock.Anything, "kim@example.com").Return(user, nil)
	hasher.On("Check", "secret", "stored-hash").Return(true)

	h := newAuthHandler(t, userRepo, hasher)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(signInRequest("kim@example.com", "secret"), rec)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Access token in the body and mirrored in the Authorization header.
	body := rec.Body.String()
	assert.Contains(t, body, "access_token")
	assert.Contains(t, body, `"token_type":"Bearer"`)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderAuthorization), "Bearer "))

	// Refresh token only ever travels in the HTTP-only cookie.
	assert.NotContains(t, body, "refresh_token")

	var refreshCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			refreshCookie = cookie
		}
	}
	require.NotNil(t, refreshCookie)
	assert.NotEmpty(t, refreshCookie.Value)
	assert.True(t, refreshCookie.HttpOnly)
	assert.True(t, refreshCookie.Secure)
}

func TestAuthHandler_SignIn_MissingCredentials(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)

	h := newAuthHandler(t, userRepo, hasher)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(signInRequest("", ""), rec)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Refresh_RoundTrip(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)

	user := &entity.User{ID: 7, Email: "kim@example.com", PasswordHash: "stored-hash", IsActive: true}
	userRepo.On("FindByEmail", mock.Anything, "kim@example.com").Return(user, nil)
	hasher.On("Check", "secret", "stored-hash").Return(true)

	h := newAuthHandler(t, userRepo, hasher)
	e := echo.New()

	// Sign in first to obtain a real refresh cookie.
	signInRec := httptest.NewRecorder()
	require.NoError(t, h.SignIn(e.NewContext(signInRequest("kim@example.com", "secret"), signInRec)))

	var refreshCookie *http.Cookie
	for _, cookie := range signInRec.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			refreshCookie = cookie
		}
	}
	require.NotNil(t, refreshCookie)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(refreshCookie)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Refresh(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)

	h := newAuthHandler(t, userRepo, hasher)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Refresh(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mocksvc.NewMockPasswordHasher(t)

	h := newAuthHandler(t, userRepo, hasher)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var refreshCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "refresh_token" {
			refreshCookie = cookie
		}
	}
	require.NotNil(t, refreshCookie)
	assert.Empty(t, refreshCookie.Value)
	assert.Negative(t, refreshCookie.MaxAge)
}
