package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// UserService implements identity-store operations beyond authentication.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, caller domain.Caller) ([]*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.users.FindAll(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, caller domain.Caller, role string) ([]*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidRole(role) {
		return nil, domain.NewValidationError("role")
	}
	return s.users.FindByRole(ctx, role)
}

func (s *UserService) Get(ctx context.Context, caller domain.Caller, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies a partial update to the target user. Nil input fields are
// left untouched. Role changes are applied only for admin callers; a
// non-admin supplying a role on their own record is denied rather than
// silently ignored.
func (s *UserService) Update(ctx context.Context, caller domain.Caller, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanUpdateUser(caller, user) {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, domain.NewValidationError("email")
		}
		if existing, err := s.users.FindByEmail(ctx, *input.Email); err == nil && existing.ID != user.ID {
			return nil, domain.ErrUserExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, domain.NewValidationError("password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		if !domain.CanChangeRole(caller) {
			return nil, domain.ErrForbidden
		}
		if !domain.ValidRole(*input.Role) {
			return nil, domain.NewValidationError("role")
		}
		user.Role = *input.Role
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("updated_by", caller.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("deleted_by", caller.ID).Msg("user deleted")
	return nil
}
