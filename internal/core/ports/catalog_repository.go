package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// CatalogRepository defines persistence operations for catalog services.
type CatalogRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
	FindAll(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
}
