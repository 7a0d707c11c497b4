package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chicago-hub/internal/core/domain"
)

// LeadRepository implements port.LeadRepository using pgxpool.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// CreateLead inserts a lead.
func (r *LeadRepository) CreateLead(ctx context.Context, lead *domain.Lead) error {
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `INSERT INTO leads
    (id, hub_id, package_id, name, email, company, message, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		lead.ID, lead.HubID, lead.PackageID, lead.Name, lead.Email, lead.Company,
		lead.Message, lead.Status, lead.CreatedAt, lead.UpdatedAt)
	return err
}

// GetLead returns a lead by id, or nil when it does not exist.
func (r *LeadRepository) GetLead(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, hub_id, package_id, name, email, company, message, status, created_at, updated_at
FROM leads WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	lead, err := pgx.CollectOneRow(rows, scanLead)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListLeads returns leads, filtered by hub when hubID is non-zero, newest
// first.
func (r *LeadRepository) ListLeads(ctx context.Context, hubID int64) ([]domain.Lead, error) {
	query := `SELECT id, hub_id, package_id, name, email, company, message, status, created_at, updated_at FROM leads`
	args := []any{}
	if hubID != 0 {
		query += ` WHERE hub_id = $1`
		args = append(args, hubID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanLead)
}

// UpdateLeadStatus moves a lead to another funnel state.
func (r *LeadRepository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	return err
}

func scanLead(row pgx.CollectableRow) (domain.Lead, error) {
	var (
		l      domain.Lead
		status string
	)
	err := row.Scan(&l.ID, &l.HubID, &l.PackageID, &l.Name, &l.Email, &l.Company,
		&l.Message, &status, &l.CreatedAt, &l.UpdatedAt)
	l.Status = domain.LeadStatus(status)
	return l, err
}
