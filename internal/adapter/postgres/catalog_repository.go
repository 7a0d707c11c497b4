package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chicago-hub/internal/core/domain"
)

// CatalogRepository implements port.CatalogRepository using pgxpool.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListHubs returns every hub ordered by name.
func (r *CatalogRepository) ListHubs(ctx context.Context) ([]domain.Hub, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, slug, description, created_at, updated_at FROM hubs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Hub, error) {
		var h domain.Hub
		err := row.Scan(&h.ID, &h.Name, &h.Slug, &h.Description, &h.CreatedAt, &h.UpdatedAt)
		return h, err
	})
}

// GetHub returns a hub by id, or nil when it does not exist.
func (r *CatalogRepository) GetHub(ctx context.Context, id int64) (*domain.Hub, error) {
	var h domain.Hub
	err := r.pool.QueryRow(ctx, `SELECT id, name, slug, description, created_at, updated_at FROM hubs WHERE id = $1`, id).
		Scan(&h.ID, &h.Name, &h.Slug, &h.Description, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListPublications returns publications, filtered by hub when hubID is
// non-zero, ordered by name.
func (r *CatalogRepository) ListPublications(ctx context.Context, hubID int64) ([]domain.Publication, error) {
	query := `SELECT id, hub_id, name, frequency_type, channels, audience, created_at, updated_at FROM publications`
	args := []any{}
	if hubID != 0 {
		query += ` WHERE hub_id = $1`
		args = append(args, hubID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanPublication)
}

// GetPublication returns a publication by id, or nil when it does not exist.
func (r *CatalogRepository) GetPublication(ctx context.Context, id int64) (*domain.Publication, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, hub_id, name, frequency_type, channels, audience, created_at, updated_at FROM publications WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	pub, err := pgx.CollectOneRow(rows, scanPublication)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

// UpdatePublicationAudience overwrites the publication's audience profile.
func (r *CatalogRepository) UpdatePublicationAudience(ctx context.Context, id int64, audience domain.AudienceProfile) error {
	data, err := json.Marshal(audience)
	if err != nil {
		return fmt.Errorf("marshal audience: %w", err)
	}
	_, err = r.pool.Exec(ctx, `UPDATE publications SET audience = $2, updated_at = now() WHERE id = $1`, id, data)
	return err
}

func scanPublication(row pgx.CollectableRow) (domain.Publication, error) {
	var (
		p           domain.Publication
		freq        string
		channels    []string
		audienceRaw []byte
	)
	if err := row.Scan(&p.ID, &p.HubID, &p.Name, &freq, &channels, &audienceRaw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, err
	}
	p.FrequencyType = domain.ParseFrequencyType(freq)
	p.Channels = make([]domain.Channel, 0, len(channels))
	for _, c := range channels {
		p.Channels = append(p.Channels, domain.Channel(c))
	}
	if len(audienceRaw) > 0 {
		if err := json.Unmarshal(audienceRaw, &p.Audience); err != nil {
			return p, fmt.Errorf("unmarshal audience: %w", err)
		}
	}
	return p, nil
}
