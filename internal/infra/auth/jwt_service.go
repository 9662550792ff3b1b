package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"depot/config"
	"depot/internal/domain/entity"
	"depot/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte                 // Shared signing secret for both token kinds.
	method     *jwt.SigningMethodHMAC // Configured HMAC signing method.
	accessTTL  time.Duration          // Time-to-live for access tokens.
	refreshTTL time.Duration          // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := cfg.JWT.Algorithm
	if algorithm == "" {
		algorithm = "HS256"
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, errors.Errorf("unsupported signing algorithm: %s", algorithm)
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		method:     method,
		accessTTL:  cfg.JWT.AccessTTL,
		refreshTTL: cfg.JWT.RefreshTTL,
	}, nil
}

// IssueAccess creates a short-lived access token carrying the user's email
// as subject and the numeric user ID.
func (s *jwtService) IssueAccess(user *entity.User) (string, error) {
	return s.issue(user, service.KindAccess, s.accessTTL)
}

// IssueRefresh creates a long-lived refresh token. Only the subject rides
// along; the user is re-resolved on every refresh.
func (s *jwtService) IssueRefresh(user *entity.User) (string, error) {
	return s.issue(user, service.KindRefresh, s.refreshTTL)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Expiry with a valid signature maps to ErrTokenExpired; every other failure
// (bad signature, malformed structure, unexpected algorithm) maps to
// ErrTokenInvalid.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is the one we issue with.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}
		return nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}

// RefreshTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// issue is a private helper to create a signed token of the given kind.
func (s *jwtService) issue(user *entity.User, kind service.TokenKind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	// Only the access token carries the user ID for stateless resolution.
	if kind == service.KindAccess {
		claims.UserID = user.ID
	}

	token := jwt.NewWithClaims(s.method, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
