package pricing

import "chicago-hub/internal/core/domain"

// ClampFrequency snaps an item's frequency into the legal range for its
// cadence and the package duration. Impression-based items carry a coverage
// percentage instead of a count, so they are only bounded to [0, 100].
// Invalid counts snap to the nearest legal value, then cap at the
// duration-adjusted ceiling.
func ClampFrequency(item domain.LineItem, durationMonths float64) int {
	if item.PricingModel.ImpressionBased() {
		switch {
		case item.Frequency < 0:
			return 0
		case item.Frequency > 100:
			return 100
		default:
			return item.Frequency
		}
	}

	t := item.PublicationFrequency
	freq := item.Frequency
	if !ValidateFrequency(freq, t) {
		freq = ClosestValidFrequency(freq, t)
	}
	// The duration-adjusted ceiling need not be a member of the enumerated
	// set (daily at half a month caps at 14), so cap by snapping down to
	// the largest legal value that fits.
	if max := EffectiveMaxFrequency(t, durationMonths); freq > max {
		freq = LargestValidFrequencyAtMost(max, t)
	}
	return freq
}

// NormalizePackage clamps every line item frequency in the package and
// recomputes the pricing breakdown. Called before persisting edits so stored
// packages always satisfy the frequency invariant.
func NormalizePackage(pkg *domain.Package) {
	for pi := range pkg.Publications {
		for ii := range pkg.Publications[pi].Items {
			item := &pkg.Publications[pi].Items[ii]
			item.PricingModel = domain.ParsePricingModel(string(item.PricingModel))
			item.PublicationFrequency = domain.ParseFrequencyType(string(item.PublicationFrequency))
			item.Frequency = ClampFrequency(*item, pkg.DurationMonths)
		}
	}
	pkg.Pricing = Breakdown(pkg)
}
