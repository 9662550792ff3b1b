// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "depot/internal/delivery/context"
	"depot/internal/domain/entity"
	domainerrors "depot/internal/domain/errors"
	"depot/internal/domain/repository"
	"depot/internal/domain/service"
	"depot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns the request-scoped logger placed on the context by the
// delivery layer, falling back to the service logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new user after verifying the password confirmation.
// The stored record only ever contains the hash, never the plaintext.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	if input.Password1 != input.Password2 {
		srv.log(ctx).Warn("Password confirmation mismatch during sign-up", slog.String("email", input.Email))

		return nil, domainerrors.ErrPasswordMismatch
	}

	hash, err := srv.hasher.Hash(input.Password1)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during sign-up")
	}

	user := &entity.User{
		Email:        input.Email,
		Fullname:     input.Fullname,
		Phone:        input.Phone,
		PasswordHash: hash,
		IsActive:     true,
	}

	// A concurrent sign-up with the same email races at the unique
	// constraint; the loser gets the persistence-layer conflict as-is.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user during sign-up", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("email", user.Email))

	return user, nil
}

// SignIn validates credentials and issues an access/refresh token pair.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up user during sign-in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during sign-in", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenService.IssueAccess(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefresh(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Info("User signed in", slog.Int64("userID", user.ID))

	return &usecase.SignInOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh validates a refresh token and mints a new access token. The
// refresh token is not rotated; the caller keeps using the same cookie until
// it expires.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	user, err := srv.resolveToken(ctx, refreshToken, service.KindRefresh)
	if err != nil {
		return "", err
	}

	accessToken, err := srv.tokenService.IssueAccess(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue access token on refresh")
	}

	return accessToken, nil
}

// ResolveAccess validates a bearer access token and resolves the current user.
func (srv *authService) ResolveAccess(ctx context.Context, accessToken string) (*entity.User, error) {
	return srv.resolveToken(ctx, accessToken, service.KindAccess)
}

// resolveToken decodes a token, enforces its kind and resolves the subject
// to an active user. A wrong-kind token gets the same error class as a bad
// signature so the response does not leak which check failed.
func (srv *authService) resolveToken(ctx context.Context, tokenString string, kind service.TokenKind) (*entity.User, error) {
	claims, err := srv.tokenService.Decode(tokenString)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	if err := claims.RequireKind(kind); err != nil {
		srv.log(ctx).Warn("Token kind mismatch", slog.String("expected", string(kind)), slog.String("got", string(claims.Kind)))

		return nil, domainerrors.ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrInactiveUser
	}

	return user, nil
}
