package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// CreateServiceInput carries the fields for a new catalog offering.
type CreateServiceInput struct {
	Title       string
	Description string
	Price       float64
}

// UpdateServiceInput carries a partial offering update. Nil fields are left
// untouched.
type UpdateServiceInput struct {
	Title       *string
	Description *string
	Price       *float64
}

// CatalogService manages the service offerings clients can request.
// Reads are open to any authenticated caller; writes are admin only.
type CatalogService interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, caller domain.Caller, input CreateServiceInput) (*domain.Service, error)
	Update(ctx context.Context, caller domain.Caller, id string, input UpdateServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
}
