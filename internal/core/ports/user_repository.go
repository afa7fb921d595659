package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs resolves a batch of user ids in one query; ids that do not
	// resolve are silently absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	// FindOneByRole returns a single user holding the given role. Which one
	// is unspecified when several exist; callers must not rely on ordering.
	FindOneByRole(ctx context.Context, role string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
