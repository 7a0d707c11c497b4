package usecase

import (
	"context"
	"fmt"

	"chicago-hub/internal/core/audience"
	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/port"
)

// CatalogService implements port.CatalogUseCase over the catalog repository.
type CatalogService struct {
	catalog port.CatalogRepository
}

// NewCatalogService creates a catalog usecase.
func NewCatalogService(catalog port.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Hubs lists every hub.
func (s *CatalogService) Hubs(ctx context.Context) ([]domain.Hub, error) {
	return s.catalog.ListHubs(ctx)
}

// Hub returns a hub by id or port.ErrNotFound.
func (s *CatalogService) Hub(ctx context.Context, id int64) (*domain.Hub, error) {
	hub, err := s.catalog.GetHub(ctx, id)
	if err != nil {
		return nil, err
	}
	if hub == nil {
		return nil, port.ErrNotFound
	}
	return hub, nil
}

// Publications lists a hub's publications.
func (s *CatalogService) Publications(ctx context.Context, hubID int64) ([]domain.Publication, error) {
	return s.catalog.ListPublications(ctx, hubID)
}

// Publication returns a publication by id or port.ErrNotFound.
func (s *CatalogService) Publication(ctx context.Context, id int64) (*domain.Publication, error) {
	pub, err := s.catalog.GetPublication(ctx, id)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, port.ErrNotFound
	}
	return pub, nil
}

// AdjustAudience moves one bucket of one demographic group and persists the
// redistributed profile. The group must exist and already satisfy the 100%
// invariant for the redistribution to be meaningful.
func (s *CatalogService) AdjustAudience(ctx context.Context, pubID int64, group string, bucket int, value float64) (domain.AudienceProfile, error) {
	pub, err := s.Publication(ctx, pubID)
	if err != nil {
		return nil, err
	}

	dist, ok := pub.Audience[group]
	if !ok {
		return nil, fmt.Errorf("%w: unknown group %q", port.ErrInvalidDistribution, group)
	}
	if bucket < 0 || bucket >= len(dist) {
		return nil, fmt.Errorf("%w: bucket %d out of range", port.ErrInvalidDistribution, bucket)
	}

	adjusted := audience.Adjust(dist, bucket, value)
	if !audience.Valid(adjusted) {
		return nil, fmt.Errorf("%w: sum %.2f after adjustment", port.ErrInvalidDistribution, adjusted.Sum())
	}

	pub.Audience[group] = adjusted
	if err := s.catalog.UpdatePublicationAudience(ctx, pubID, pub.Audience); err != nil {
		return nil, fmt.Errorf("update audience: %w", err)
	}
	return pub.Audience, nil
}
