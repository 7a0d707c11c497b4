package domain

import "time"

// Publication is one media property listed by a publisher: a newspaper, a
// newsletter, a radio station and so on. Its cadence bounds the insertion
// frequencies packages may buy from it.
type Publication struct {
	ID            int64           `json:"id"`
	HubID         int64           `json:"hubId"`
	Name          string          `json:"name"`
	FrequencyType FrequencyType   `json:"frequencyType"`
	Channels      []Channel       `json:"channels"`
	Audience      AudienceProfile `json:"audience,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Hub is a curated collection of publications managed together for
// cross-publication package sales.
type Hub struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
