package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chicago-hub/internal/core/domain"
)

// PackageRepository implements port.PackageRepository using pgxpool.
// Packages are stored across two tables: a packages row with the breakdown
// and a package_items row per line item, joined with publications on read to
// recover publication names and cadences.
type PackageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository returns a new repository instance.
func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

// CreatePackage inserts a package and its line items in one transaction.
// The result is named so the deferred commit can report its failure.
func (r *PackageRepository) CreatePackage(ctx context.Context, pkg *domain.Package) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	now := time.Now().UTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	_, err = tx.Exec(ctx, `INSERT INTO packages
    (id, hub_id, name, client_name, duration_months, status, monthly_total, duration_total, final_price, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		pkg.ID, pkg.HubID, pkg.Name, pkg.ClientName, pkg.DurationMonths, pkg.Status,
		pkg.Pricing.MonthlyTotal, pkg.Pricing.DurationTotal, pkg.Pricing.FinalPrice,
		pkg.CreatedAt, pkg.UpdatedAt)
	if err != nil {
		return err
	}
	err = insertItems(ctx, tx, pkg)
	return err
}

// GetPackage returns a package with its line items grouped by publication in
// stored order, or nil when it does not exist.
func (r *PackageRepository) GetPackage(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	var pkg domain.Package
	var status string
	err := r.pool.QueryRow(ctx, `SELECT id, hub_id, name, client_name, duration_months, status, monthly_total, duration_total, final_price, created_at, updated_at
FROM packages WHERE id = $1`, id).
		Scan(&pkg.ID, &pkg.HubID, &pkg.Name, &pkg.ClientName, &pkg.DurationMonths, &status,
			&pkg.Pricing.MonthlyTotal, &pkg.Pricing.DurationTotal, &pkg.Pricing.FinalPrice,
			&pkg.CreatedAt, &pkg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	pkg.Status = domain.PackageStatus(status)

	rows, err := r.pool.Query(ctx, `SELECT i.id, i.publication_id, p.name, p.frequency_type,
    i.item_name, i.channel, i.pricing_model, i.unit_price, i.frequency, i.monthly_impressions, i.tiered_rates
FROM package_items i
JOIN publications p ON p.id = i.publication_id
WHERE i.package_id = $1
ORDER BY i.position`, id)
	if err != nil {
		return nil, err
	}

	type itemRow struct {
		item    domain.LineItem
		pubName string
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (itemRow, error) {
		var (
			ir        itemRow
			freqType  string
			channel   string
			model     string
			tieredRaw []byte
		)
		err := row.Scan(&ir.item.ID, &ir.item.PublicationID, &ir.pubName, &freqType,
			&ir.item.ItemName, &channel, &model, &ir.item.UnitPrice,
			&ir.item.Frequency, &ir.item.MonthlyImpressions, &tieredRaw)
		if err != nil {
			return ir, err
		}
		ir.item.PublicationFrequency = domain.ParseFrequencyType(freqType)
		ir.item.Channel = domain.Channel(channel)
		ir.item.PricingModel = domain.ParsePricingModel(model)
		if len(tieredRaw) > 0 {
			var tiered domain.TieredRates
			if err := json.Unmarshal(tieredRaw, &tiered); err != nil {
				return ir, fmt.Errorf("unmarshal tiered rates: %w", err)
			}
			ir.item.Tiered = &tiered
		}
		return ir, nil
	})
	if err != nil {
		return nil, err
	}

	// Rebuild publication groups preserving item order.
	index := map[int64]int{}
	for _, ir := range raw {
		pi, ok := index[ir.item.PublicationID]
		if !ok {
			pi = len(pkg.Publications)
			index[ir.item.PublicationID] = pi
			pkg.Publications = append(pkg.Publications, domain.PackagePublication{
				PublicationID:   ir.item.PublicationID,
				PublicationName: ir.pubName,
			})
		}
		pkg.Publications[pi].Items = append(pkg.Publications[pi].Items, ir.item)
	}
	return &pkg, nil
}

// ListPackages returns package summaries, filtered by hub when hubID is
// non-zero, most recently updated first.
func (r *PackageRepository) ListPackages(ctx context.Context, hubID int64) ([]domain.PackageSummary, error) {
	query := `SELECT p.id, p.hub_id, p.name, p.status, p.final_price,
    (SELECT count(*) FROM package_items i WHERE i.package_id = p.id),
    p.updated_at
FROM packages p`
	args := []any{}
	if hubID != 0 {
		query += ` WHERE p.hub_id = $1`
		args = append(args, hubID)
	}
	query += ` ORDER BY p.updated_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PackageSummary, error) {
		var (
			s      domain.PackageSummary
			status string
		)
		err := row.Scan(&s.ID, &s.HubID, &s.Name, &status, &s.FinalPrice, &s.ItemCount, &s.UpdatedAt)
		s.Status = domain.PackageStatus(status)
		return s, err
	})
}

// UpdatePackage overwrites a package row and replaces its line items.
// Last write wins; there is no conflict detection. The result is named so
// the deferred commit can report its failure.
func (r *PackageRepository) UpdatePackage(ctx context.Context, pkg *domain.Package) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	pkg.UpdatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE packages SET
    name = $2, client_name = $3, duration_months = $4, status = $5,
    monthly_total = $6, duration_total = $7, final_price = $8, updated_at = $9
WHERE id = $1`,
		pkg.ID, pkg.Name, pkg.ClientName, pkg.DurationMonths, pkg.Status,
		pkg.Pricing.MonthlyTotal, pkg.Pricing.DurationTotal, pkg.Pricing.FinalPrice,
		pkg.UpdatedAt)
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM package_items WHERE package_id = $1`, pkg.ID); err != nil {
		return err
	}
	err = insertItems(ctx, tx, pkg)
	return err
}

// DeletePackage removes a package; its items cascade.
func (r *PackageRepository) DeletePackage(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	return err
}

func insertItems(ctx context.Context, tx pgx.Tx, pkg *domain.Package) error {
	position := 0
	for _, pub := range pkg.Publications {
		for _, item := range pub.Items {
			var tieredRaw []byte
			if item.Tiered != nil {
				var err error
				tieredRaw, err = json.Marshal(item.Tiered)
				if err != nil {
					return fmt.Errorf("marshal tiered rates: %w", err)
				}
			}
			_, err := tx.Exec(ctx, `INSERT INTO package_items
    (package_id, publication_id, position, item_name, channel, pricing_model, unit_price, frequency, monthly_impressions, tiered_rates)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
				pkg.ID, pub.PublicationID, position, item.ItemName, item.Channel,
				item.PricingModel, item.UnitPrice, item.Frequency, item.MonthlyImpressions, tieredRaw)
			if err != nil {
				return err
			}
			position++
		}
	}
	return nil
}
