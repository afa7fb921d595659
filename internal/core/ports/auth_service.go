package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create a user account.
// Role defaults to client when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
