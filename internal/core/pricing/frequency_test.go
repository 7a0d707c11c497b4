package pricing

import (
	"testing"

	"chicago-hub/internal/core/domain"
)

var allTypes = []domain.FrequencyType{
	domain.FrequencyDaily,
	domain.FrequencyWeekly,
	domain.FrequencyBiWeekly,
	domain.FrequencyMonthly,
	domain.FrequencyCustom,
}

// TestStandardFrequencyIsLegal ensures every cadence's default frequency is a
// member of its valid set and never exceeds the ceiling.
func TestStandardFrequencyIsLegal(t *testing.T) {
	for _, ft := range allTypes {
		std := StandardFrequency(ft)
		if !ValidateFrequency(std, ft) {
			t.Fatalf("%s: standard frequency %d is not valid", ft, std)
		}
		if std > MaxFrequency(ft) {
			t.Fatalf("%s: standard frequency %d above max %d", ft, std, MaxFrequency(ft))
		}
	}
}

// TestValidateMatchesEnumeration checks validateFrequency is true exactly for
// members of the enumerated set.
func TestValidateMatchesEnumeration(t *testing.T) {
	for _, ft := range allTypes {
		valid := map[int]bool{}
		for _, v := range ValidFrequencies(ft) {
			valid[v] = true
		}
		for f := -1; f <= MaxFrequency(ft)+2; f++ {
			if got := ValidateFrequency(f, ft); got != valid[f] {
				t.Fatalf("%s: ValidateFrequency(%d) = %v, want %v", ft, f, got, valid[f])
			}
		}
	}
}

// TestClosestValidFrequencyIdempotent verifies snapping twice equals snapping
// once, and that ties break toward the lower value.
func TestClosestValidFrequencyIdempotent(t *testing.T) {
	for _, ft := range allTypes {
		for target := 0; target <= 35; target++ {
			once := ClosestValidFrequency(target, ft)
			twice := ClosestValidFrequency(once, ft)
			if once != twice {
				t.Fatalf("%s: snap(%d) = %d but snap(snap) = %d", ft, target, once, twice)
			}
			if !ValidateFrequency(once, ft) {
				t.Fatalf("%s: snap(%d) = %d is not a valid frequency", ft, target, once)
			}
		}
	}

	// daily set has 4 and 6; 5 is equidistant and must snap down
	if got := ClosestValidFrequency(5, domain.FrequencyDaily); got != 4 {
		t.Fatalf("tie at 5 should resolve to 4, got %d", got)
	}
}

func TestMaxFrequencyTable(t *testing.T) {
	cases := map[domain.FrequencyType]int{
		domain.FrequencyDaily:    30,
		domain.FrequencyWeekly:   4,
		domain.FrequencyBiWeekly: 2,
		domain.FrequencyMonthly:  1,
		domain.FrequencyCustom:   30,
	}
	for ft, want := range cases {
		if got := MaxFrequency(ft); got != want {
			t.Fatalf("MaxFrequency(%s) = %d, want %d", ft, got, want)
		}
	}
	// unknown cadence behaves like custom
	if got := MaxFrequency(domain.FrequencyType("fortnightly-ish")); got != 30 {
		t.Fatalf("unknown cadence max = %d, want 30", got)
	}
}

// TestEffectiveMaxFrequency covers the sub-month duration scaling: a
// half-month package supports 14 daily insertions (2 weeks x 7), a full
// month keeps the monthly ceiling.
func TestEffectiveMaxFrequency(t *testing.T) {
	cases := []struct {
		ft       domain.FrequencyType
		duration float64
		want     int
	}{
		{domain.FrequencyDaily, 1, 30},
		{domain.FrequencyDaily, 2, 30},
		{domain.FrequencyDaily, 0.5, 14},
		{domain.FrequencyDaily, 0.25, 7},
		{domain.FrequencyWeekly, 0.5, 2},
		{domain.FrequencyWeekly, 0.25, 1},
		{domain.FrequencyBiWeekly, 0.5, 1},
		{domain.FrequencyMonthly, 0.5, 1},
		{domain.FrequencyCustom, 0.5, 14},
		// zero/negative duration means "not bounded by duration"
		{domain.FrequencyDaily, 0, 30},
	}
	for _, tc := range cases {
		if got := EffectiveMaxFrequency(tc.ft, tc.duration); got != tc.want {
			t.Fatalf("EffectiveMaxFrequency(%s, %v) = %d, want %d", tc.ft, tc.duration, got, tc.want)
		}
	}
}

func TestIsAtMaxFrequency(t *testing.T) {
	if !IsAtMaxFrequency(30, domain.FrequencyDaily, 1) {
		t.Fatal("30 should be at max for a one-month daily item")
	}
	if IsAtMaxFrequency(12, domain.FrequencyDaily, 1) {
		t.Fatal("12 should not be at max for a one-month daily item")
	}
	if !IsAtMaxFrequency(14, domain.FrequencyDaily, 0.5) {
		t.Fatal("14 should be at max for a half-month daily item")
	}
}

func TestClampFrequency(t *testing.T) {
	item := domain.LineItem{
		PricingModel:         domain.PricingPerSpot,
		Frequency:            7,
		PublicationFrequency: domain.FrequencyWeekly,
	}
	if got := ClampFrequency(item, 1); got != 4 {
		t.Fatalf("weekly frequency 7 should clamp to 4, got %d", got)
	}

	pct := domain.LineItem{
		PricingModel: domain.PricingCPM,
		Frequency:    140,
	}
	if got := ClampFrequency(pct, 1); got != 100 {
		t.Fatalf("cpm coverage 140 should clamp to 100, got %d", got)
	}
}

// TestClampFrequencySubMonthStaysValid checks that capping at a
// duration-adjusted ceiling outside the enumerated set (daily at half a
// month caps at 14) still lands on a legal value.
func TestClampFrequencySubMonthStaysValid(t *testing.T) {
	item := domain.LineItem{
		PricingModel:         domain.PricingPerDay,
		Frequency:            20,
		PublicationFrequency: domain.FrequencyDaily,
	}
	got := ClampFrequency(item, 0.5)
	if got != 12 {
		t.Fatalf("daily 20 at half a month should clamp to 12, got %d", got)
	}
	if !ValidateFrequency(got, domain.FrequencyDaily) {
		t.Fatalf("clamped frequency %d is not in the enumerated set", got)
	}
}

func TestLargestValidFrequencyAtMost(t *testing.T) {
	if got := LargestValidFrequencyAtMost(14, domain.FrequencyDaily); got != 12 {
		t.Fatalf("largest daily frequency <= 14 = %d, want 12", got)
	}
	if got := LargestValidFrequencyAtMost(30, domain.FrequencyDaily); got != 30 {
		t.Fatalf("largest daily frequency <= 30 = %d, want 30", got)
	}
	// below the smallest entry falls back to it
	if got := LargestValidFrequencyAtMost(0, domain.FrequencyWeekly); got != 1 {
		t.Fatalf("largest weekly frequency <= 0 = %d, want 1", got)
	}
}
