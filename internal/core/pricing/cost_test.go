package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"chicago-hub/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decP(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// TestFlatIgnoresFrequency checks flat and monthly items cost the unit price
// no matter what frequency the builder left on them.
func TestFlatIgnoresFrequency(t *testing.T) {
	for _, model := range []domain.PricingModel{domain.PricingFlat, domain.PricingMonthly} {
		low := domain.LineItem{PricingModel: model, UnitPrice: dec("500"), Frequency: 5}
		high := domain.LineItem{PricingModel: model, UnitPrice: dec("500"), Frequency: 100}
		if !MonthlyCost(low).Equal(MonthlyCost(high)) {
			t.Fatalf("%s: cost depends on frequency (%s vs %s)", model, MonthlyCost(low), MonthlyCost(high))
		}
		if !MonthlyCost(low).Equal(dec("500")) {
			t.Fatalf("%s: cost = %s, want 500", model, MonthlyCost(low))
		}
	}
}

func TestUnitCountModels(t *testing.T) {
	cases := []struct {
		model domain.PricingModel
		price string
		freq  int
		want  string
	}{
		{domain.PricingPerWeek, "175.00", 4, "700.00"},
		{domain.PricingPerDay, "25.00", 20, "500.00"},
		{domain.PricingPerSend, "100.00", 12, "1200.00"},
		{domain.PricingPerSpot, "100.00", 2, "200.00"},
		{domain.PricingPerPost, "40.00", 8, "320.00"},
		{domain.PricingPerAd, "55.00", 2, "110.00"},
		{domain.PricingPerEpisode, "250.00", 4, "1000.00"},
		{domain.PricingPerStory, "90.00", 3, "270.00"},
	}
	for _, tc := range cases {
		item := domain.LineItem{PricingModel: tc.model, UnitPrice: dec(tc.price), Frequency: tc.freq}
		if got := MonthlyCost(item); !got.Equal(dec(tc.want)) {
			t.Fatalf("%s: cost = %s, want %s", tc.model, got, tc.want)
		}
	}
}

// TestCPM checks the per-1000 formula against the reference case:
// $10 CPM at 50%% of 100k impressions is $500.
func TestCPM(t *testing.T) {
	item := domain.LineItem{
		PricingModel:       domain.PricingCPM,
		UnitPrice:          dec("10"),
		Frequency:          50,
		MonthlyImpressions: 100000,
	}
	if got := MonthlyCost(item); !got.Equal(dec("500")) {
		t.Fatalf("cpm cost = %s, want 500", got)
	}
}

// TestCPV uses the per-100-views denominator, distinct from CPM's per-1000.
func TestCPV(t *testing.T) {
	item := domain.LineItem{
		PricingModel:       domain.PricingCPV,
		UnitPrice:          dec("2"),
		Frequency:          25,
		MonthlyImpressions: 40000,
	}
	// 40000 * 25% = 10000 views -> 100 blocks of 100 -> $200
	if got := MonthlyCost(item); !got.Equal(dec("200")) {
		t.Fatalf("cpv cost = %s, want 200", got)
	}
}

// TestCPC estimates clicks with the flat 1%% CTR assumption.
func TestCPC(t *testing.T) {
	item := domain.LineItem{
		PricingModel:       domain.PricingCPC,
		UnitPrice:          dec("1.50"),
		Frequency:          100,
		MonthlyImpressions: 200000,
	}
	// 200000 impressions * 1% CTR = 2000 clicks -> $3000
	if got := MonthlyCost(item); !got.Equal(dec("3000")) {
		t.Fatalf("cpc cost = %s, want 3000", got)
	}
}

// TestImpressionModelsWithoutImpressions verifies missing impression data
// produces a zero cost rather than an error.
func TestImpressionModelsWithoutImpressions(t *testing.T) {
	for _, model := range []domain.PricingModel{domain.PricingCPM, domain.PricingCPV, domain.PricingCPC} {
		item := domain.LineItem{PricingModel: model, UnitPrice: dec("10"), Frequency: 50}
		if got := MonthlyCost(item); !got.IsZero() {
			t.Fatalf("%s without impressions: cost = %s, want 0", model, got)
		}
	}
}

// TestTieredRateSelection checks frequency_based picks the deepest present
// tier and falls back to the unit price when no tiers exist.
func TestTieredRateSelection(t *testing.T) {
	base := domain.LineItem{
		PricingModel: domain.PricingFrequencyBased,
		UnitPrice:    dec("1000"),
		Frequency:    1,
	}

	cases := []struct {
		name   string
		tiered *domain.TieredRates
		want   string
	}{
		{"thirteen wins", &domain.TieredRates{ThirteenTimes: decP("700"), FourTimes: decP("900")}, "700"},
		{"twelve next", &domain.TieredRates{TwelveTimes: decP("750"), OneTime: decP("950")}, "750"},
		{"four next", &domain.TieredRates{FourTimes: decP("900"), OneTime: decP("950")}, "900"},
		{"one time", &domain.TieredRates{OneTime: decP("950")}, "950"},
		{"no tiers", nil, "1000"},
		{"empty tiers", &domain.TieredRates{}, "1000"},
	}
	for _, tc := range cases {
		item := base
		item.Tiered = tc.tiered
		if got := MonthlyCost(item); !got.Equal(dec(tc.want)) {
			t.Fatalf("%s: cost = %s, want %s", tc.name, got, tc.want)
		}
	}
}

// TestUnknownModelFallback checks unrecognized models price as frequency x
// unit price; cpd has no dedicated formula and takes the same path.
func TestUnknownModelFallback(t *testing.T) {
	for _, model := range []domain.PricingModel{domain.PricingCPD, domain.PricingModel("sponsorship")} {
		item := domain.LineItem{PricingModel: model, UnitPrice: dec("30"), Frequency: 3}
		if got := MonthlyCost(item); !got.Equal(dec("90")) {
			t.Fatalf("%s: cost = %s, want 90", model, got)
		}
	}
}

func TestBreakdown(t *testing.T) {
	pkg := &domain.Package{
		DurationMonths: 3,
		Publications: []domain.PackagePublication{{
			PublicationID: 1,
			Items: []domain.LineItem{
				{PricingModel: domain.PricingPerSpot, UnitPrice: dec("100"), Frequency: 2},
				{PricingModel: domain.PricingFlat, UnitPrice: dec("300"), Frequency: 1},
			},
		}},
	}
	breakdown := Breakdown(pkg)
	if !breakdown.MonthlyTotal.Equal(dec("500")) {
		t.Fatalf("monthly total = %s, want 500", breakdown.MonthlyTotal)
	}
	if !breakdown.DurationTotal.Equal(dec("1500")) {
		t.Fatalf("duration total = %s, want 1500", breakdown.DurationTotal)
	}
	if !breakdown.FinalPrice.Equal(dec("1500")) {
		t.Fatalf("final price = %s, want 1500", breakdown.FinalPrice)
	}
}
