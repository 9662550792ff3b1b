// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"depot/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user. The two
// password fields must match exactly.
type SignUpInput struct {
	Fullname  string `json:"fullname"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"required,email"`
	Password1 string `json:"password1" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

// SignInInput defines the credentials for a password login.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignInOutput returns the generated tokens after a successful login. The
// refresh token is only ever transported via an HTTP-only cookie; the access
// token goes in the response body.
type SignInOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the authentication operations the delivery layer
// depends on. Every call is independent; no session state is kept.
type AuthUsecase interface {
	// SignUp validates the password confirmation, hashes the password and
	// persists a new user.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)

	// SignIn validates credentials and issues an access/refresh token pair.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Refresh validates a refresh token and issues a fresh access token.
	// The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// ResolveAccess validates a bearer access token and resolves the current
	// user, rejecting tokens of the wrong kind and inactive accounts.
	ResolveAccess(ctx context.Context, accessToken string) (*entity.User, error)
}
