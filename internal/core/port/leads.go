package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"chicago-hub/internal/core/domain"
)

// ErrInvalidLeadStatus is returned when a status update names an unknown
// funnel state.
var ErrInvalidLeadStatus = errors.New("invalid lead status")

// LeadRepository is the outbound port for storefront lead persistence.
type LeadRepository interface {
	CreateLead(ctx context.Context, lead *domain.Lead) error
	GetLead(ctx context.Context, id uuid.UUID) (*domain.Lead, error)
	ListLeads(ctx context.Context, hubID int64) ([]domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) error
}

// LeadUseCase is the inbound port for submitting and managing leads.
// Submit is reachable without authentication (the public storefront form);
// the management operations are admin-only.
type LeadUseCase interface {
	Submit(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	List(ctx context.Context, hubID int64) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) error
}
