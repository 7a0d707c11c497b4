package domain

import "github.com/shopspring/decimal"

// TieredRates holds the print rate card used by the frequency_based pricing
// model. Rates are per-insertion and keyed by the contracted insertion count
// over a year. Absent tiers are nil.
type TieredRates struct {
	OneTime       *decimal.Decimal `json:"oneTime,omitempty"`
	FourTimes     *decimal.Decimal `json:"fourTimes,omitempty"`
	TwelveTimes   *decimal.Decimal `json:"twelveTimes,omitempty"`
	ThirteenTimes *decimal.Decimal `json:"thirteenTimes,omitempty"`
}

// LineItem is one purchasable inventory unit inside a package, owned by a
// single publication.
//
// Frequency is a count of insertions per month, except for impression-based
// pricing models where it is a percentage (0-100) of the publication's
// available monthly impressions. The value is expected to lie inside the
// legal range for (PricingModel, PublicationFrequency, package duration);
// callers can transiently violate that and the frequency resolver clamps it
// on the next recompute.
type LineItem struct {
	ID                   int64           `json:"id,omitempty"`
	PublicationID        int64           `json:"publicationId"`
	ItemName             string          `json:"itemName"`
	Channel              Channel         `json:"channel"`
	PricingModel         PricingModel    `json:"pricingModel"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	Frequency            int             `json:"frequency"`
	MonthlyImpressions   int64           `json:"monthlyImpressions,omitempty"`
	PublicationFrequency FrequencyType   `json:"publicationFrequencyType"`
	Tiered               *TieredRates    `json:"tieredRates,omitempty"`
}
