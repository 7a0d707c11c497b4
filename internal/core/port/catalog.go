package port

import (
	"context"
	"errors"

	"chicago-hub/internal/core/domain"
)

// ErrNotFound is returned by usecases when a requested entity does not
// exist. Repositories signal absence with a nil result instead.
var ErrNotFound = errors.New("not found")

// ErrInvalidDistribution is returned when an audience adjustment would break
// the 100% invariant or targets an unknown group or bucket.
var ErrInvalidDistribution = errors.New("invalid demographic distribution")

// CatalogRepository is the outbound port for hub and publication data.
// Implementations return (nil, nil) when a single entity is missing.
type CatalogRepository interface {
	ListHubs(ctx context.Context) ([]domain.Hub, error)
	GetHub(ctx context.Context, id int64) (*domain.Hub, error)
	ListPublications(ctx context.Context, hubID int64) ([]domain.Publication, error)
	GetPublication(ctx context.Context, id int64) (*domain.Publication, error)
	UpdatePublicationAudience(ctx context.Context, id int64, audience domain.AudienceProfile) error
}

// CatalogUseCase is the inbound port for browsing hubs and publications and
// editing publication audience profiles.
type CatalogUseCase interface {
	Hubs(ctx context.Context) ([]domain.Hub, error)
	Hub(ctx context.Context, id int64) (*domain.Hub, error)
	Publications(ctx context.Context, hubID int64) ([]domain.Publication, error)
	Publication(ctx context.Context, id int64) (*domain.Publication, error)

	// AdjustAudience moves one bucket of one demographic group to a new
	// value, redistributes the delta so the group still sums to 100, and
	// persists the resulting profile.
	AdjustAudience(ctx context.Context, pubID int64, group string, bucket int, value float64) (domain.AudienceProfile, error)
}
