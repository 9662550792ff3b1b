package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	mockRepo "depot/internal/mocks/repository"
	"depot/internal/usecase"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile_AppliesOnlyPresentFields(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:       3,
		Email:    "user@example.com",
		Fullname: "Old Name",
		Phone:    "111",
		IsActive: true,
	}

	userRepo.On("Update", ctx, user).Return(nil)

	updated, err := svc.UpdateProfile(ctx, user, &usecase.ProfilePatch{
		Fullname: strPtr("New Name"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Fullname)
	// Absent fields stay untouched
	assert.Equal(t, "111", updated.Phone)
}

func TestUserService_UpdateProfile_NilPatch(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:       3,
		Email:    "user@example.com",
		Fullname: "Old Name",
		Phone:    "111",
		IsActive: true,
	}

	userRepo.On("Update", ctx, user).Return(nil)

	// An empty request body decodes to a nil patch; treat it as a no-op.
	var updated *entity.User
	var err error
	require.NotPanics(t, func() {
		updated, err = svc.UpdateProfile(ctx, user, nil)
	})

	require.NoError(t, err)
	assert.Equal(t, "Old Name", updated.Fullname)
	assert.Equal(t, "111", updated.Phone)
}

func TestUserService_Deactivate(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 3, Email: "user@example.com", IsActive: true}

	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return !u.IsActive
	})).Return(nil)

	deactivated, err := svc.Deactivate(ctx, user)

	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
}

func TestUserService_ListAll_NonAdminForbidden(t *testing.T) {
	svc, _ := createTestUserService(t)

	users, err := svc.ListAll(context.Background(), &entity.User{ID: 3, IsAdmin: false})

	assert.Nil(t, users)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ListAll_AdminSeesEveryone(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()

	all := []*entity.User{
		{ID: 1, Email: "admin@example.com", IsAdmin: true, IsActive: true},
		{ID: 2, Email: "inactive@example.com", IsActive: false},
	}
	userRepo.On("FindAll", ctx).Return(all, nil)

	users, err := svc.ListAll(ctx, all[0])

	require.NoError(t, err)
	// Inactive users are included
	assert.Equal(t, all, users)
}
