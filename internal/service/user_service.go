package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/repository"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// UserCreateInput carries fields for a new account.
type UserCreateInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role
}

// UserUpdateInput carries partial updates; nil fields are unchanged.
type UserUpdateInput struct {
	Email *string
	Name  *string
	Role  *domain.Role
}

// UserService manages user accounts. Every operation is ADMIN-only;
// unlike the other resource families there is no restricted view.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// List returns all user accounts without password hashes.
func (s *UserService) List(ctx context.Context, status domain.AuthStatus) ([]domain.User, error) {
	if !auth.CanManageUsers(status.Role) {
		return nil, util.NewForbidden("admin access only")
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, util.NewInternalError(err)
	}
	return users, nil
}

// Create adds an account, hashing the supplied password. Duplicate
// emails surface as a conflict.
func (s *UserService) Create(ctx context.Context, status domain.AuthStatus, input UserCreateInput) (*domain.User, error) {
	if !auth.CanManageUsers(status.Role) {
		return nil, util.NewForbidden("admin access only")
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, util.NewValidationError("invalid role", map[string]any{"role": input.Role})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if util.IsUniqueViolation(err) {
			return nil, util.NewConflict("email already in use")
		}
		return nil, util.NewInternalError(err)
	}
	return user, nil
}

// Update modifies account fields other than the password.
func (s *UserService) Update(ctx context.Context, status domain.AuthStatus, id int64, input UserUpdateInput) (*domain.User, error) {
	if !auth.CanManageUsers(status.Role) {
		return nil, util.NewForbidden("admin access only")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user")
		}
		return nil, util.NewInternalError(err)
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, util.NewValidationError("invalid role", map[string]any{"role": *input.Role})
		}
		user.Role = *input.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		if util.IsUniqueViolation(err) {
			return nil, util.NewConflict("email already in use")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user")
		}
		return nil, util.NewInternalError(err)
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, status domain.AuthStatus, id int64) error {
	if !auth.CanManageUsers(status.Role) {
		return util.NewForbidden("admin access only")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		return util.NewInternalError(err)
	}
	return nil
}
