package domain

import "strings"

// FrequencyType describes how often a publication issues content. It bounds
// the insertion frequencies a buyer may purchase per month.
type FrequencyType string

const (
	FrequencyDaily    FrequencyType = "daily"
	FrequencyWeekly   FrequencyType = "weekly"
	FrequencyBiWeekly FrequencyType = "bi-weekly"
	FrequencyMonthly  FrequencyType = "monthly"
	// FrequencyCustom is the fallback for publications without a fixed
	// cadence. It carries the daily ceiling but is semantically
	// unconstrained.
	FrequencyCustom FrequencyType = "custom"
)

// ParseFrequencyType normalises a cadence string. Unknown or empty values
// fall back to custom.
func ParseFrequencyType(s string) FrequencyType {
	switch FrequencyType(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyDaily:
		return FrequencyDaily
	case FrequencyWeekly:
		return FrequencyWeekly
	case FrequencyBiWeekly:
		return FrequencyBiWeekly
	case FrequencyMonthly:
		return FrequencyMonthly
	default:
		return FrequencyCustom
	}
}
