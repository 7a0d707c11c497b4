package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageStatus is the lifecycle state of an assembled package.
type PackageStatus string

const (
	PackageDraft     PackageStatus = "draft"
	PackagePublished PackageStatus = "published"
	PackageArchived  PackageStatus = "archived"
)

// PackagePricing is the computed price breakdown for a package.
// MonthlyTotal sums the line item monthly costs, DurationTotal multiplies
// that by the package duration, and FinalPrice is the amount quoted to the
// client (equal to DurationTotal unless overridden).
type PackagePricing struct {
	MonthlyTotal  decimal.Decimal `json:"monthlyTotal"`
	DurationTotal decimal.Decimal `json:"durationTotal"`
	FinalPrice    decimal.Decimal `json:"finalPrice"`
}

// PackagePublication groups the line items a package buys from one
// publication, in the order the builder arranged them.
type PackagePublication struct {
	PublicationID   int64      `json:"publicationId"`
	PublicationName string     `json:"publicationName"`
	Items           []LineItem `json:"items"`
}

// Package is a multi-publication advertising bundle assembled by a hub
// administrator. It is edited by one session at a time and persisted with a
// plain overwrite; the last writer wins.
type Package struct {
	ID             uuid.UUID            `json:"id"`
	HubID          int64                `json:"hubId"`
	Name           string               `json:"name"`
	ClientName     string               `json:"clientName,omitempty"`
	DurationMonths float64              `json:"durationMonths"`
	Status         PackageStatus        `json:"status"`
	Publications   []PackagePublication `json:"publications"`
	Pricing        PackagePricing       `json:"pricing"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// Items returns every line item in the package in publication order.
func (p *Package) Items() []LineItem {
	var items []LineItem
	for _, pub := range p.Publications {
		items = append(items, pub.Items...)
	}
	return items
}

// PackageSummary is the listing projection of a package.
type PackageSummary struct {
	ID         uuid.UUID       `json:"id"`
	HubID      int64           `json:"hubId"`
	Name       string          `json:"name"`
	Status     PackageStatus   `json:"status"`
	FinalPrice decimal.Decimal `json:"finalPrice"`
	ItemCount  int             `json:"itemCount"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
