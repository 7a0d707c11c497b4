package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/port"
)

// LeadService implements port.LeadUseCase.
type LeadService struct {
	leads port.LeadRepository
}

// NewLeadService creates a lead usecase.
func NewLeadService(leads port.LeadRepository) *LeadService {
	return &LeadService{leads: leads}
}

// Submit stores a storefront enquiry. New leads always enter the funnel in
// the "new" state regardless of what the payload claims.
func (s *LeadService) Submit(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	lead.ID = uuid.New()
	lead.Status = domain.LeadNew
	if err := s.leads.CreateLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("submit lead: %w", err)
	}
	return lead, nil
}

// List returns leads, optionally filtered by hub.
func (s *LeadService) List(ctx context.Context, hubID int64) ([]domain.Lead, error) {
	return s.leads.ListLeads(ctx, hubID)
}

// UpdateStatus moves a lead to another funnel state.
func (s *LeadService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) error {
	if !domain.ValidLeadStatus(status) {
		return port.ErrInvalidLeadStatus
	}
	lead, err := s.leads.GetLead(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return port.ErrNotFound
	}
	return s.leads.UpdateLeadStatus(ctx, id, status)
}
