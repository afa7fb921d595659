package ports

import (
	"context"

	"github.com/priyatech/agency-api/internal/core/domain"
)

// RequestRepository defines persistence operations for service requests.
// Listing methods return newest first.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	FindAll(ctx context.Context) ([]*domain.ServiceRequest, error)
	FindByClient(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error)
	Update(ctx context.Context, req *domain.ServiceRequest) error
}
