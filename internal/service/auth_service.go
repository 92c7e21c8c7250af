package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/config"
	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/repository"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// AuthService coordinates login and credential rotation.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLHours),
		bcryptCost: cfg.BcryptCost,
	}
}

// Login authenticates a user by email and password. Unknown email and
// wrong password fail with the same error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, util.NewInternalError(err)
	}
	if !auth.PasswordMatches(user.PasswordHash, password) {
		return nil, "", time.Time{}, util.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return nil, "", time.Time{}, util.NewInternalError(err)
	}
	return user, token, expiresAt, nil
}

// ChangePassword verifies the current password for the token's
// subject, then replaces the stored hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		return util.NewInternalError(err)
	}

	if !auth.PasswordMatches(user.PasswordHash, currentPassword) {
		return util.NewValidationError("current password is incorrect", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return util.NewInternalError(err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		return util.NewInternalError(err)
	}
	return nil
}

// Resolver returns an auth resolver backed by this service's token
// manager, for handler wiring.
func (s *AuthService) Resolver() *auth.Resolver {
	return auth.NewResolver(s.tokenMgr)
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
