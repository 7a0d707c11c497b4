package pricing

import (
	"github.com/shopspring/decimal"

	"chicago-hub/internal/core/domain"
)

// Strategy names a bulk frequency adjustment applied across a package.
type Strategy string

const (
	// StrategyStandard resets every item to its cadence's standard
	// frequency.
	StrategyStandard Strategy = "standard"
	// StrategyReduced halves every frequency (floor, minimum 1) and snaps
	// the result to the nearest legal value.
	StrategyReduced Strategy = "reduced"
	// StrategyMinimum forces every item to frequency 1.
	StrategyMinimum Strategy = "minimum"
	// StrategyCustom leaves valid frequencies untouched and replaces
	// invalid ones with the standard frequency.
	StrategyCustom Strategy = "custom"
)

// ValidStrategy reports whether s names a known adjustment strategy.
func ValidStrategy(s Strategy) bool {
	switch s {
	case StrategyStandard, StrategyReduced, StrategyMinimum, StrategyCustom:
		return true
	default:
		return false
	}
}

// AdjustedFrequency returns the frequency an item would have after applying
// the strategy. Unknown strategies behave like custom. Impression-based
// items carry a coverage percentage, not an insertion count, so their
// strategies act on [1, 100] instead of the cadence table.
func AdjustedFrequency(item domain.LineItem, s Strategy) int {
	if item.PricingModel.ImpressionBased() {
		return adjustedCoverage(item.Frequency, s)
	}

	t := item.PublicationFrequency
	switch s {
	case StrategyStandard:
		return StandardFrequency(t)
	case StrategyReduced:
		halved := item.Frequency / 2
		if halved < 1 {
			halved = 1
		}
		return ClosestValidFrequency(halved, t)
	case StrategyMinimum:
		return 1
	default:
		if ValidateFrequency(item.Frequency, t) {
			return item.Frequency
		}
		return StandardFrequency(t)
	}
}

// adjustedCoverage applies a strategy to an impression coverage percentage.
// Reduced halves it (floor, minimum 1), minimum drops to 1%, and the other
// strategies keep the current coverage clamped to [0, 100]: there is no
// standard coverage to reset to.
func adjustedCoverage(pct int, s Strategy) int {
	switch s {
	case StrategyReduced:
		half := pct / 2
		if half < 1 {
			half = 1
		}
		if half > 100 {
			half = 100
		}
		return half
	case StrategyMinimum:
		return 1
	default:
		switch {
		case pct < 0:
			return 0
		case pct > 100:
			return 100
		default:
			return pct
		}
	}
}

// Change records one line item whose frequency the strategy would alter.
type Change struct {
	ItemName     string          `json:"itemName"`
	Publication  string          `json:"publication,omitempty"`
	OldFrequency int             `json:"oldFrequency"`
	NewFrequency int             `json:"newFrequency"`
	OldCost      decimal.Decimal `json:"oldCost"`
	NewCost      decimal.Decimal `json:"newCost"`
}

// AdjustmentPreview reports the aggregate impact of a strategy before it is
// committed. Changes lists only items whose frequency actually differs; the
// UI shows its length as the "N items will change" count.
type AdjustmentPreview struct {
	Strategy   Strategy        `json:"strategy"`
	BeforeCost decimal.Decimal `json:"beforeCost"`
	AfterCost  decimal.Decimal `json:"afterCost"`
	Savings    decimal.Decimal `json:"savings"`
	Changes    []Change        `json:"changes"`
}

// PreviewAdjustment computes the before/after cost of applying a strategy to
// a set of line items without mutating them.
func PreviewAdjustment(items []domain.LineItem, s Strategy) AdjustmentPreview {
	preview := AdjustmentPreview{
		Strategy:   s,
		BeforeCost: decimal.Zero,
		AfterCost:  decimal.Zero,
		Changes:    []Change{},
	}
	for _, item := range items {
		oldCost := MonthlyCost(item)
		preview.BeforeCost = preview.BeforeCost.Add(oldCost)

		adjusted := item
		adjusted.Frequency = AdjustedFrequency(item, s)
		newCost := MonthlyCost(adjusted)
		preview.AfterCost = preview.AfterCost.Add(newCost)

		if adjusted.Frequency != item.Frequency {
			preview.Changes = append(preview.Changes, Change{
				ItemName:     item.ItemName,
				OldFrequency: item.Frequency,
				NewFrequency: adjusted.Frequency,
				OldCost:      oldCost,
				NewCost:      newCost,
			})
		}
	}
	preview.Savings = preview.BeforeCost.Sub(preview.AfterCost)
	return preview
}

// ApplyAdjustment mutates every line item in the package per the strategy,
// recomputes the pricing breakdown and returns the realised preview with
// publication names attached to each change.
func ApplyAdjustment(pkg *domain.Package, s Strategy) AdjustmentPreview {
	preview := AdjustmentPreview{
		Strategy:   s,
		BeforeCost: decimal.Zero,
		AfterCost:  decimal.Zero,
		Changes:    []Change{},
	}
	for pi := range pkg.Publications {
		pub := &pkg.Publications[pi]
		for ii := range pub.Items {
			item := &pub.Items[ii]
			oldCost := MonthlyCost(*item)
			preview.BeforeCost = preview.BeforeCost.Add(oldCost)

			newFreq := AdjustedFrequency(*item, s)
			if newFreq != item.Frequency {
				change := Change{
					ItemName:     item.ItemName,
					Publication:  pub.PublicationName,
					OldFrequency: item.Frequency,
					NewFrequency: newFreq,
					OldCost:      oldCost,
				}
				item.Frequency = newFreq
				change.NewCost = MonthlyCost(*item)
				preview.Changes = append(preview.Changes, change)
			}
			preview.AfterCost = preview.AfterCost.Add(MonthlyCost(*item))
		}
	}
	preview.Savings = preview.BeforeCost.Sub(preview.AfterCost)
	pkg.Pricing = Breakdown(pkg)
	return preview
}
