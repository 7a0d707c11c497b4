package pricing

import (
	"github.com/shopspring/decimal"

	"chicago-hub/internal/core/domain"
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)

	// assumedCTR is the flat click-through rate used to estimate clicks
	// for CPC items when no performance data exists.
	assumedCTR = decimal.NewFromFloat(0.01)
)

// MonthlyCost computes a line item's monthly cost from its pricing model,
// unit price and frequency. It is a pure function and never errors: unknown
// models fall back to frequency x unit price, and impression-based models
// with no recorded impressions cost zero. Inputs are assumed non-negative;
// negative values propagate into a negative cost.
func MonthlyCost(item domain.LineItem) decimal.Decimal {
	freq := decimal.NewFromInt(int64(item.Frequency))

	switch item.PricingModel {
	case domain.PricingFlat, domain.PricingMonthly:
		// Fixed monthly charge; frequency is ignored.
		return item.UnitPrice

	case domain.PricingPerWeek, domain.PricingPerDay,
		domain.PricingPerSend, domain.PricingPerSpot,
		domain.PricingPerPost, domain.PricingPerAd,
		domain.PricingPerEpisode, domain.PricingPerStory:
		return item.UnitPrice.Mul(freq)

	case domain.PricingCPM:
		// Frequency is a percentage of available monthly impressions.
		return item.UnitPrice.Mul(boughtImpressions(item)).Div(thousand)

	case domain.PricingCPV:
		// Per-100-views denominator, distinct from CPM's per-1000.
		return item.UnitPrice.Mul(boughtImpressions(item)).Div(hundred)

	case domain.PricingCPC:
		clicks := boughtImpressions(item).Mul(assumedCTR)
		return item.UnitPrice.Mul(clicks)

	case domain.PricingFrequencyBased:
		return tieredRate(item)

	default:
		return item.UnitPrice.Mul(freq)
	}
}

// boughtImpressions returns the share of the item's available monthly
// impressions covered by its frequency percentage.
func boughtImpressions(item domain.LineItem) decimal.Decimal {
	return decimal.NewFromInt(item.MonthlyImpressions).
		Mul(decimal.NewFromInt(int64(item.Frequency))).
		Div(hundred)
}

// tieredRate selects the print rate by tier presence, preferring the deepest
// contracted tier. Selection is by presence, not by the actual insertion
// count.
func tieredRate(item domain.LineItem) decimal.Decimal {
	if t := item.Tiered; t != nil {
		switch {
		case t.ThirteenTimes != nil:
			return *t.ThirteenTimes
		case t.TwelveTimes != nil:
			return *t.TwelveTimes
		case t.FourTimes != nil:
			return *t.FourTimes
		case t.OneTime != nil:
			return *t.OneTime
		}
	}
	return item.UnitPrice
}

// TotalMonthlyCost sums the monthly cost of a set of line items.
func TotalMonthlyCost(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(MonthlyCost(item))
	}
	return total
}

// Breakdown recomputes a package's price breakdown from its line items.
// The duration total scales the monthly total by the package duration;
// the final price follows the duration total.
func Breakdown(pkg *domain.Package) domain.PackagePricing {
	monthly := TotalMonthlyCost(pkg.Items())
	duration := monthly.Mul(decimal.NewFromFloat(pkg.DurationMonths))
	return domain.PackagePricing{
		MonthlyTotal:  monthly,
		DurationTotal: duration,
		FinalPrice:    duration,
	}
}
