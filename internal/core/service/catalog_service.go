package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// CatalogService manages the catalog of service offerings.
type CatalogService struct {
	catalog ports.CatalogRepository
	logger  zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.catalog.FindAll(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.catalog.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, caller domain.Caller, input ports.CreateServiceInput) (*domain.Service, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	var missing []string
	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.Description == "" {
		missing = append(missing, "description")
	}
	if input.Price < 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	now := time.Now().UTC()
	created, err := s.catalog.Create(ctx, &domain.Service{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("service_id", created.ID).Str("title", created.Title).Msg("catalog service created")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, caller domain.Caller, id string, input ports.UpdateServiceInput) (*domain.Service, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	svc, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.NewValidationError("title")
		}
		svc.Title = *input.Title
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domain.NewValidationError("price")
		}
		svc.Price = *input.Price
	}

	svc.UpdatedAt = time.Now().UTC()
	if err := s.catalog.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.catalog.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.catalog.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("catalog service deleted")
	return nil
}
