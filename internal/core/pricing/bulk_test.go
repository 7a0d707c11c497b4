package pricing

import (
	"testing"

	"chicago-hub/internal/core/domain"
)

func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{
			ItemName:             "Newsletter Banner",
			PricingModel:         domain.PricingPerSend,
			UnitPrice:            dec("100"),
			Frequency:            12,
			PublicationFrequency: domain.FrequencyDaily,
		},
		{
			ItemName:             "Quarter Page",
			PricingModel:         domain.PricingPerWeek,
			UnitPrice:            dec("175"),
			Frequency:            4,
			PublicationFrequency: domain.FrequencyWeekly,
		},
		{
			ItemName:             "Full Page",
			PricingModel:         domain.PricingMonthly,
			UnitPrice:            dec("950"),
			Frequency:            1,
			PublicationFrequency: domain.FrequencyMonthly,
		},
	}
}

// TestMinimumStrategy forces every item to frequency 1 and never raises the
// aggregate cost.
func TestMinimumStrategy(t *testing.T) {
	items := sampleItems()
	preview := PreviewAdjustment(items, StrategyMinimum)

	for _, item := range items {
		if got := AdjustedFrequency(item, StrategyMinimum); got != 1 {
			t.Fatalf("%s: minimum frequency = %d, want 1", item.ItemName, got)
		}
	}
	if preview.AfterCost.GreaterThan(preview.BeforeCost) {
		t.Fatalf("minimum strategy raised cost: %s -> %s", preview.BeforeCost, preview.AfterCost)
	}
	if !preview.Savings.Equal(preview.BeforeCost.Sub(preview.AfterCost)) {
		t.Fatalf("savings %s does not equal before-after", preview.Savings)
	}
}

// TestStandardStrategyNoChanges verifies a package already at standard
// frequencies previews zero changes; the UI shows the change count.
func TestStandardStrategyNoChanges(t *testing.T) {
	items := []domain.LineItem{
		{ItemName: "a", PricingModel: domain.PricingPerSend, UnitPrice: dec("10"), Frequency: StandardFrequency(domain.FrequencyDaily), PublicationFrequency: domain.FrequencyDaily},
		{ItemName: "b", PricingModel: domain.PricingPerWeek, UnitPrice: dec("10"), Frequency: StandardFrequency(domain.FrequencyWeekly), PublicationFrequency: domain.FrequencyWeekly},
	}
	preview := PreviewAdjustment(items, StrategyStandard)
	if len(preview.Changes) != 0 {
		t.Fatalf("expected no changes, got %d", len(preview.Changes))
	}
	if !preview.BeforeCost.Equal(preview.AfterCost) {
		t.Fatalf("costs should match: %s vs %s", preview.BeforeCost, preview.AfterCost)
	}
}

// TestReducedStrategy halves and snaps to the nearest legal value.
func TestReducedStrategy(t *testing.T) {
	item := domain.LineItem{
		PricingModel:         domain.PricingPerSend,
		UnitPrice:            dec("10"),
		Frequency:            30,
		PublicationFrequency: domain.FrequencyDaily,
	}
	// 30/2 = 15, already legal for daily
	if got := AdjustedFrequency(item, StrategyReduced); got != 15 {
		t.Fatalf("reduced(30, daily) = %d, want 15", got)
	}

	item.Frequency = 1
	if got := AdjustedFrequency(item, StrategyReduced); got != 1 {
		t.Fatalf("reduced(1, daily) = %d, want 1", got)
	}
}

// TestCustomStrategySelfHeals leaves valid frequencies alone and replaces
// invalid ones with the standard frequency.
func TestCustomStrategySelfHeals(t *testing.T) {
	valid := domain.LineItem{Frequency: 8, PublicationFrequency: domain.FrequencyDaily}
	if got := AdjustedFrequency(valid, StrategyCustom); got != 8 {
		t.Fatalf("custom should keep valid frequency 8, got %d", got)
	}

	invalid := domain.LineItem{Frequency: 7, PublicationFrequency: domain.FrequencyDaily}
	if got := AdjustedFrequency(invalid, StrategyCustom); got != StandardFrequency(domain.FrequencyDaily) {
		t.Fatalf("custom should heal invalid frequency to standard, got %d", got)
	}
}

// TestImpressionItemsSkipCadenceTable ensures strategies treat cpm/cpv/cpc
// frequencies as coverage percentages: custom keeps a valid 50% instead of
// rewriting it to the cadence standard, reduced halves within [1, 100] and
// minimum drops to 1%.
func TestImpressionItemsSkipCadenceTable(t *testing.T) {
	item := domain.LineItem{
		ItemName:             "Homepage Takeover",
		PricingModel:         domain.PricingCPM,
		UnitPrice:            dec("10"),
		Frequency:            50,
		MonthlyImpressions:   100_000,
		PublicationFrequency: domain.FrequencyDaily,
	}

	if got := AdjustedFrequency(item, StrategyCustom); got != 50 {
		t.Fatalf("custom rewrote valid 50%% coverage to %d", got)
	}
	if got := AdjustedFrequency(item, StrategyStandard); got != 50 {
		t.Fatalf("standard rewrote 50%% coverage to %d", got)
	}
	if got := AdjustedFrequency(item, StrategyReduced); got != 25 {
		t.Fatalf("reduced(50%%) = %d, want 25", got)
	}
	if got := AdjustedFrequency(item, StrategyMinimum); got != 1 {
		t.Fatalf("minimum(50%%) = %d, want 1", got)
	}

	// a custom bulk-adjust over a normalized package must not reprice it
	preview := PreviewAdjustment([]domain.LineItem{item}, StrategyCustom)
	if len(preview.Changes) != 0 {
		t.Fatalf("custom strategy changed a valid impression item: %+v", preview.Changes)
	}
	if !preview.AfterCost.Equal(preview.BeforeCost) {
		t.Fatalf("custom strategy repriced %s to %s", preview.BeforeCost, preview.AfterCost)
	}

	// out-of-range coverage self-heals by clamping, not table-snapping
	item.Frequency = 140
	if got := AdjustedFrequency(item, StrategyCustom); got != 100 {
		t.Fatalf("custom(140%%) = %d, want 100", got)
	}
}

// TestPreviewListsOnlyChangedItems checks unchanged items stay out of the
// changes list.
func TestPreviewListsOnlyChangedItems(t *testing.T) {
	items := sampleItems() // per_send sits at the daily standard already
	preview := PreviewAdjustment(items, StrategyStandard)
	for _, ch := range preview.Changes {
		if ch.OldFrequency == ch.NewFrequency {
			t.Fatalf("%s listed as change but frequency is unchanged", ch.ItemName)
		}
	}
	// daily standard is 12, weekly standard is 4, monthly standard is 1:
	// all items already match, so nothing changes.
	if len(preview.Changes) != 0 {
		t.Fatalf("expected 0 changes, got %d", len(preview.Changes))
	}
}

// TestApplyAdjustment mutates the package and refreshes the breakdown.
func TestApplyAdjustment(t *testing.T) {
	pkg := &domain.Package{
		DurationMonths: 1,
		Publications: []domain.PackagePublication{{
			PublicationID:   1,
			PublicationName: "The Daily Dispatch",
			Items:           sampleItems(),
		}},
	}
	preview := ApplyAdjustment(pkg, StrategyMinimum)

	for _, item := range pkg.Items() {
		if item.Frequency != 1 {
			t.Fatalf("%s: frequency = %d after apply, want 1", item.ItemName, item.Frequency)
		}
	}
	if !pkg.Pricing.MonthlyTotal.Equal(preview.AfterCost) {
		t.Fatalf("breakdown %s does not match after-cost %s", pkg.Pricing.MonthlyTotal, preview.AfterCost)
	}
	for _, ch := range preview.Changes {
		if ch.Publication != "The Daily Dispatch" {
			t.Fatalf("change missing publication name: %+v", ch)
		}
	}
}
