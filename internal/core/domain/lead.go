package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks where a storefront enquiry sits in the sales funnel.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadClosed    LeadStatus = "closed"
)

// ValidLeadStatus reports whether s is a known funnel state.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadClosed:
		return true
	default:
		return false
	}
}

// Lead is an advertiser enquiry submitted through a hub storefront,
// optionally referencing the package that prompted it.
type Lead struct {
	ID        uuid.UUID  `json:"id"`
	HubID     int64      `json:"hubId"`
	PackageID *uuid.UUID `json:"packageId,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Company   string     `json:"company,omitempty"`
	Message   string     `json:"message,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
