// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"depot/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation, so tests can substitute an in-memory fake.
type UserRepository interface {
	// Create persists a new user and fills in the assigned ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Update modifies an existing user record.
	Update(ctx context.Context, user *entity.User) error

	// FindAll returns every user, including deactivated ones.
	FindAll(ctx context.Context) ([]*entity.User, error)
}
