package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"depot/internal/domain/entity"
)

// TokenKind is the closed set of token types the service issues. The kind is
// embedded in the signed claims so an access token can never stand in for a
// refresh token or vice versa.
type TokenKind string

const (
	// KindAccess marks short-lived tokens presented as bearer credentials.
	KindAccess TokenKind = "access"
	// KindRefresh marks long-lived tokens transported only via cookie.
	KindRefresh TokenKind = "refresh"
)

// Sentinel errors for token validation. Expiry is reported separately from
// every other failure so callers can distinguish "come back with a fresh
// token" from "this token was never valid".
var (
	// ErrTokenExpired is returned when the signature verifies but the token
	// is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for a bad signature, malformed token,
	// unsupported algorithm, or a token-kind mismatch.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID int64     `json:"uid,omitempty"`
	Kind   TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// RequireKind rejects claims whose kind does not exactly match what the
// calling endpoint expects. The mismatch surfaces as ErrTokenInvalid so the
// response does not leak which check failed.
func (c *Claims) RequireKind(expected TokenKind) error {
	if c.Kind != expected {
		return ErrTokenInvalid
	}

	return nil
}

// TokenService defines the interface for issuing and decoding signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccess creates a short-lived access token for the user. The
	// subject is the user's email and the numeric user ID rides along.
	IssueAccess(user *entity.User) (string, error)

	// IssueRefresh creates a long-lived refresh token for the user.
	IssueRefresh(user *entity.User) (string, error)

	// Decode verifies signature and expiry and returns the embedded claims.
	// Fails with ErrTokenExpired or ErrTokenInvalid.
	Decode(tokenString string) (*Claims, error)

	// RefreshTTL returns the configured refresh token lifetime, used to set
	// the refresh cookie's max age.
	RefreshTTL() time.Duration
}
