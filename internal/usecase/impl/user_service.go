package impl

import (
	"context"
	"log/slog"

	deliverycontext "depot/internal/delivery/context"
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns the request-scoped logger placed on the context by the
// delivery layer, falling back to the service logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile applies only the fields present in the patch and persists
// the result.
func (srv *userService) UpdateProfile(ctx context.Context, user *entity.User, patch *usecase.ProfilePatch) (*entity.User, error) {
	// An empty request body arrives as a nil patch; treat it as "no fields".
	if patch == nil {
		patch = &usecase.ProfilePatch{}
	}

	if patch.Fullname != nil {
		user.Fullname = *patch.Fullname
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Profile updated", slog.Int64("userID", user.ID))

	return user, nil
}

// Deactivate clears the active flag. The record stays in place; deactivated
// users simply fail the active check on token resolution.
func (srv *userService) Deactivate(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.IsActive = false

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to deactivate user", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("User deactivated", slog.Int64("userID", user.ID))

	return user, nil
}

// ListAll returns every user, including inactive ones. Administrators only.
func (srv *userService) ListAll(ctx context.Context, requesting *entity.User) ([]*entity.User, error) {
	if !requesting.IsAdmin {
		srv.log(ctx).Warn("Non-admin attempted to list users", slog.Int64("userID", requesting.ID))

		return nil, domainerrors.ErrForbidden
	}

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}
