package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update. Nil fields are left
// untouched; a non-nil field replaces the stored value, so zero values are
// expressible.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	// Role is applied only when the caller is an admin.
	Role *string
}

// UserService defines identity-store operations beyond authentication.
type UserService interface {
	// List returns all users. Admin only.
	List(ctx context.Context, caller domain.Caller) ([]*domain.User, error)
	// ListByRole returns users holding the given role. Admin only.
	ListByRole(ctx context.Context, caller domain.Caller, role string) ([]*domain.User, error)
	Get(ctx context.Context, caller domain.Caller, id string) (*domain.User, error)
	// Update applies a partial update to the target user. Users may update
	// themselves; only admins may update others or change roles.
	Update(ctx context.Context, caller domain.Caller, id string, input UpdateUserInput) (*domain.User, error)
	// Delete hard-deletes the user. Admin only.
	Delete(ctx context.Context, caller domain.Caller, id string) error
}
