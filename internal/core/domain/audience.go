package domain

// DemographicBucket is one named slice of an audience group, e.g. the
// "25-34" age band. Value is a percentage.
type DemographicBucket struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Distribution is an ordered set of buckets whose values sum to 100.
type Distribution []DemographicBucket

// Sum returns the total percentage across all buckets.
func (d Distribution) Sum() float64 {
	var total float64
	for _, b := range d {
		total += b.Value
	}
	return total
}

// AudienceProfile maps a demographic group name (e.g. "ageGroups",
// "gender") to its distribution. Stored as jsonb on the publication row.
type AudienceProfile map[string]Distribution
