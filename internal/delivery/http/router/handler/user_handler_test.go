package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	depotmiddleware "depot/internal/delivery/http/middleware"
	"depot/internal/domain/entity"
	mockrepo "depot/internal/mocks/repository"
	"depot/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T, userRepo *mockrepo.MockUserRepository) *UserHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return NewUserHandler(userUC, logger)
}

func patchProfileContext(e *echo.Echo, rec *httptest.ResponseRecorder, body io.Reader, user *entity.User) echo.Context {
	req := httptest.NewRequest(http.MethodPatch, "/auth/me", body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	c := e.NewContext(req, rec)
	c.Set(depotmiddleware.CurrentUserKey, user)

	return c
}

func TestUserHandler_UpdateProfile_EmptyBody(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	user := &entity.User{ID: 3, Email: "user@example.com", Fullname: "Old Name", Phone: "111", IsActive: true}
	userRepo.On("Update", mock.Anything, user).Return(nil)

	h := newUserHandler(t, userRepo)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := patchProfileContext(e, rec, nil, user)

	// A bodyless PATCH is a valid "change nothing" request.
	var err error
	require.NotPanics(t, func() {
		err = h.UpdateProfile(c)
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fullname":"Old Name"`)
}

func TestUserHandler_UpdateProfile_AppliesFields(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	user := &entity.User{ID: 3, Email: "user@example.com", Fullname: "Old Name", Phone: "111", IsActive: true}
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Fullname == "New Name" && u.Phone == "111"
	})).Return(nil)

	h := newUserHandler(t, userRepo)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := patchProfileContext(e, rec, strings.NewReader(`{"fullname":"New Name"}`), user)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fullname":"New Name"`)
}
