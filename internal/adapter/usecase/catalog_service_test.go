package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/mock"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/port"
	"chicago-hub/internal/core/port/mocks"
)

func dispatchPublication() *domain.Publication {
	return &domain.Publication{
		ID:    1,
		HubID: 1,
		Name:  "The Daily Dispatch",
		Audience: domain.AudienceProfile{
			"ageGroups": {
				{Name: "18-24", Value: 20},
				{Name: "25-34", Value: 30},
				{Name: "35-44", Value: 50},
			},
		},
	}
}

// TestAdjustAudiencePersists moves one bucket and stores the redistributed
// profile, which must still sum to 100.
func TestAdjustAudiencePersists(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().GetPublication(mock.Anything, int64(1)).Return(dispatchPublication(), nil)

	var saved domain.AudienceProfile
	repo.EXPECT().
		UpdatePublicationAudience(mock.Anything, int64(1), mock.Anything).
		Run(func(_ context.Context, _ int64, profile domain.AudienceProfile) { saved = profile }).
		Return(nil)

	svc := NewCatalogService(repo)
	profile, err := svc.AdjustAudience(context.Background(), 1, "ageGroups", 1, 45)
	if err != nil {
		t.Fatalf("AdjustAudience error: %v", err)
	}

	dist := profile["ageGroups"]
	if dist[1].Value != 45 {
		t.Fatalf("expected bucket set to 45, got %v", dist[1].Value)
	}
	if math.Abs(dist.Sum()-100) > 0.01 {
		t.Fatalf("distribution sums to %v", dist.Sum())
	}
	if saved == nil {
		t.Fatal("repository never saw the profile")
	}
}

func TestAdjustAudienceUnknownGroup(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().GetPublication(mock.Anything, int64(1)).Return(dispatchPublication(), nil)

	svc := NewCatalogService(repo)
	_, err := svc.AdjustAudience(context.Background(), 1, "income", 0, 50)
	if !errors.Is(err, port.ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}
}

func TestAdjustAudienceBucketOutOfRange(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().GetPublication(mock.Anything, int64(1)).Return(dispatchPublication(), nil)

	svc := NewCatalogService(repo)
	_, err := svc.AdjustAudience(context.Background(), 1, "ageGroups", 9, 50)
	if !errors.Is(err, port.ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}
}

func TestPublicationNotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().GetPublication(mock.Anything, int64(404)).Return(nil, nil)

	svc := NewCatalogService(repo)
	if _, err := svc.Publication(context.Background(), 404); err != port.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
