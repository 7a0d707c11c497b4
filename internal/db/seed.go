package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo catalog data: one hub, a spread of publications across
// channels and cadences, and a draft package referencing them. Inserts are
// idempotent so repeated startups with seeding enabled stay clean.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `INSERT INTO hubs (id, name, slug, description, created_at, updated_at)
VALUES (1, 'Chicago Independent Media Hub', 'chicago', 'Cross-publication advertising for Chicago independent media', now(), now())
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	pubs := []struct {
		id       int64
		name     string
		freq     string
		channels string
	}{
		{1, "The Daily Dispatch", "daily", `{newsletter,website}`},
		{2, "Westside Weekly", "weekly", `{print,website}`},
		{3, "Lakeview Ledger", "bi-weekly", `{print}`},
		{4, "Neighborhood Monthly", "monthly", `{print,events}`},
		{5, "The Morning Drive", "custom", `{radio,podcast,streaming-video}`},
	}
	audience := map[string]any{
		"ageGroups": []map[string]any{
			{"name": "18-24", "value": 15.0},
			{"name": "25-34", "value": 30.0},
			{"name": "35-44", "value": 25.0},
			{"name": "45-54", "value": 18.0},
			{"name": "55+", "value": 12.0},
		},
		"gender": []map[string]any{
			{"name": "female", "value": 52.0},
			{"name": "male", "value": 46.0},
			{"name": "other", "value": 2.0},
		},
	}
	audienceJSON, _ := json.Marshal(audience)
	for _, p := range pubs {
		_, err = db.Exec(ctx, `INSERT INTO publications (id, hub_id, name, frequency_type, channels, audience, created_at, updated_at)
VALUES ($1, 1, $2, $3, $4, $5, now(), now()) ON CONFLICT DO NOTHING`,
			p.id, p.name, p.freq, p.channels, audienceJSON)
		if err != nil {
			return err
		}
	}

	// one draft package touching every pricing family
	pkgID := uuid.MustParse("6b1f7c2e-9a14-4a14-8f6b-6f1f2b3c4d5e")
	_, err = db.Exec(ctx, `INSERT INTO packages
    (id, hub_id, name, client_name, duration_months, status, monthly_total, duration_total, final_price, created_at, updated_at)
VALUES ($1, 1, 'Citywide Awareness', 'Demo Advertiser', 3, 'draft', 0, 0, 0, now(), now())
ON CONFLICT DO NOTHING`, pkgID)
	if err != nil {
		return err
	}

	items := []struct {
		pubID   int64
		name    string
		channel string
		model   string
		price   string
		freq    int
		imps    int64
	}{
		{1, "Newsletter Banner", "newsletter", "per_send", "100.00", 12, 0},
		{1, "Homepage Takeover", "website", "cpm", "8.00", 50, 250000},
		{2, "Quarter Page Ad", "print", "per_week", "175.00", 4, 0},
		{4, "Full Page Ad", "print", "monthly", "950.00", 1, 0},
		{5, "Drive-Time Spot", "radio", "per_spot", "60.00", 12, 0},
	}
	for pos, it := range items {
		_, err = db.Exec(ctx, `INSERT INTO package_items
    (package_id, publication_id, position, item_name, channel, pricing_model, unit_price, frequency, monthly_impressions)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
			pkgID, it.pubID, pos, it.name, it.channel, it.model, it.price, it.freq, it.imps)
		if err != nil {
			return fmt.Errorf("seed package item %q: %w", it.name, err)
		}
	}
	return nil
}
