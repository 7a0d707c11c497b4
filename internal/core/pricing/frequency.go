package pricing

import (
	"math"

	"chicago-hub/internal/core/domain"
)

// The frequency policy table. Each cadence maps to an explicit set of legal
// monthly insertion counts (the sets populate selection menus, so they are
// enumerated rather than expressed as ranges), a hard monthly ceiling and a
// default starting frequency. Custom shares daily's ceiling but is
// semantically unconstrained.
var frequencyPolicy = map[domain.FrequencyType]struct {
	valid    []int
	max      int
	standard int
}{
	domain.FrequencyDaily:    {valid: []int{1, 2, 3, 4, 6, 8, 10, 12, 15, 20, 24, 30}, max: 30, standard: 12},
	domain.FrequencyWeekly:   {valid: []int{1, 2, 3, 4}, max: 4, standard: 4},
	domain.FrequencyBiWeekly: {valid: []int{1, 2}, max: 2, standard: 2},
	domain.FrequencyMonthly:  {valid: []int{1}, max: 1, standard: 1},
	domain.FrequencyCustom:   {valid: []int{1, 2, 3, 4, 6, 8, 10, 12, 15, 20, 24, 30}, max: 30, standard: 12},
}

func policyFor(t domain.FrequencyType) struct {
	valid    []int
	max      int
	standard int
} {
	if p, ok := frequencyPolicy[t]; ok {
		return p
	}
	return frequencyPolicy[domain.FrequencyCustom]
}

// MaxFrequency returns the monthly insertion ceiling for a cadence.
func MaxFrequency(t domain.FrequencyType) int {
	return policyFor(t).max
}

// StandardFrequency returns the default starting frequency for a cadence.
func StandardFrequency(t domain.FrequencyType) int {
	return policyFor(t).standard
}

// ValidFrequencies returns the enumerated legal frequencies for a cadence in
// ascending order. Callers must not mutate the returned slice.
func ValidFrequencies(t domain.FrequencyType) []int {
	return policyFor(t).valid
}

// ValidateFrequency reports whether freq is a positive member of the
// cadence's legal set and does not exceed its ceiling.
func ValidateFrequency(freq int, t domain.FrequencyType) bool {
	if freq <= 0 || freq > MaxFrequency(t) {
		return false
	}
	for _, v := range ValidFrequencies(t) {
		if v == freq {
			return true
		}
	}
	return false
}

// ClosestValidFrequency returns the legal frequency nearest to target.
// Ties resolve to the lower value since the table is ascending and the scan
// keeps the first minimum it sees.
func ClosestValidFrequency(target int, t domain.FrequencyType) int {
	valid := ValidFrequencies(t)
	closest := valid[0]
	best := abs(target - closest)
	for _, v := range valid[1:] {
		if d := abs(target - v); d < best {
			best = d
			closest = v
		}
	}
	return closest
}

// LargestValidFrequencyAtMost returns the largest enumerated frequency for
// the cadence that does not exceed limit, falling back to the smallest entry
// when every legal value is above it.
func LargestValidFrequencyAtMost(limit int, t domain.FrequencyType) int {
	valid := ValidFrequencies(t)
	best := valid[0]
	for _, v := range valid {
		if v <= limit {
			best = v
		}
	}
	return best
}

// EffectiveMaxFrequency returns the insertion ceiling adjusted for the
// package duration. A sub-month package cannot support a full month of
// insertions: for durations under one month the ceiling is recomputed from
// the number of whole weeks the package spans (duration x 4, a 7-day-week
// approximation) scaled per cadence, then clamped to [1, monthly ceiling].
func EffectiveMaxFrequency(t domain.FrequencyType, durationMonths float64) int {
	monthlyMax := MaxFrequency(t)
	if durationMonths <= 0 || durationMonths >= 1 {
		return monthlyMax
	}

	weeks := durationMonths * 4
	var adjusted int
	switch t {
	case domain.FrequencyDaily, domain.FrequencyCustom:
		adjusted = int(math.Floor(weeks * 7))
	case domain.FrequencyWeekly:
		adjusted = int(math.Floor(weeks))
	case domain.FrequencyBiWeekly:
		adjusted = int(math.Floor(weeks * 0.5))
	case domain.FrequencyMonthly:
		adjusted = int(math.Max(1, math.Floor(weeks/4)))
	default:
		adjusted = int(math.Floor(weeks * 7))
	}

	if adjusted < 1 {
		adjusted = 1
	}
	if adjusted > monthlyMax {
		adjusted = monthlyMax
	}
	return adjusted
}

// IsAtMaxFrequency reports whether freq has reached the duration-adjusted
// ceiling for the cadence.
func IsAtMaxFrequency(freq int, t domain.FrequencyType, durationMonths float64) bool {
	return freq >= EffectiveMaxFrequency(t, durationMonths)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
