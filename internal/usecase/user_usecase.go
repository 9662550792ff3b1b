package usecase

import (
	"context"

	"depot/internal/domain/entity"
)

// ProfilePatch carries the optional fields of a profile update. Only fields
// that are present are applied.
type ProfilePatch struct {
	Fullname *string `json:"fullname"`
	Phone    *string `json:"phone"`
}

// UserUsecase defines user-directory operations beyond authentication.
type UserUsecase interface {
	// UpdateProfile applies the patch to the user and persists the result.
	UpdateProfile(ctx context.Context, user *entity.User, patch *ProfilePatch) (*entity.User, error)

	// Deactivate soft-deletes the user by clearing the active flag. The row
	// is never physically removed.
	Deactivate(ctx context.Context, user *entity.User) (*entity.User, error)

	// ListAll returns every user, including inactive ones. Only permitted
	// for administrators.
	ListAll(ctx context.Context, requesting *entity.User) ([]*entity.User, error)
}
