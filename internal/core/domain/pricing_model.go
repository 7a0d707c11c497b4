package domain

import "strings"

// PricingModel is the unit basis for a line item's price. The model decides
// how the item's frequency value is interpreted: a count of units per month
// for most models, or a percentage of available monthly impressions for the
// impression-based ones (cpm, cpv, cpc).
type PricingModel string

const (
	PricingFlat           PricingModel = "flat"
	PricingMonthly        PricingModel = "monthly"
	PricingPerWeek        PricingModel = "per_week"
	PricingPerDay         PricingModel = "per_day"
	PricingPerSend        PricingModel = "per_send"
	PricingPerSpot        PricingModel = "per_spot"
	PricingPerPost        PricingModel = "per_post"
	PricingPerAd          PricingModel = "per_ad"
	PricingPerEpisode     PricingModel = "per_episode"
	PricingPerStory       PricingModel = "per_story"
	PricingCPM            PricingModel = "cpm"
	PricingCPV            PricingModel = "cpv"
	PricingCPC            PricingModel = "cpc"
	PricingCPD            PricingModel = "cpd"
	PricingFrequencyBased PricingModel = "frequency_based"
)

// ParsePricingModel lower-cases a model string. Unknown models are kept
// as-is; the cost calculator prices them with the generic fallback.
func ParsePricingModel(s string) PricingModel {
	return PricingModel(strings.ToLower(strings.TrimSpace(s)))
}

// ImpressionBased reports whether the model interprets frequency as a
// percentage of available monthly impressions rather than a unit count.
func (m PricingModel) ImpressionBased() bool {
	switch m {
	case PricingCPM, PricingCPV, PricingCPC:
		return true
	default:
		return false
	}
}
