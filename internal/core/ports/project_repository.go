package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]*domain.Project, error)
	FindByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	// FindByEmployee returns projects whose assigned employee set contains
	// the given user id.
	FindByEmployee(ctx context.Context, employeeID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	// Delete removes the project document only. Messages referencing the
	// project are left in place with a dangling reference.
	Delete(ctx context.Context, id string) error
}
