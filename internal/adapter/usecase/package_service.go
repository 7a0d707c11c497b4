package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/port"
	"chicago-hub/internal/core/pricing"
	"chicago-hub/internal/export"
)

// PackageService implements port.PackageUseCase. It owns the pricing
// lifecycle of a package: every create and save normalises line item
// frequencies through the resolver and recomputes the breakdown before the
// repository sees the package.
type PackageService struct {
	packages port.PackageRepository
	catalog  port.CatalogRepository

	// now is swapped in tests for deterministic export timestamps.
	now func() time.Time
}

// NewPackageService creates a package usecase over the given repositories.
func NewPackageService(packages port.PackageRepository, catalog port.CatalogRepository) *PackageService {
	return &PackageService{packages: packages, catalog: catalog, now: time.Now}
}

// Create assigns identity and defaults to a builder payload, prices it and
// persists it.
func (s *PackageService) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	pkg.ID = uuid.New()
	if pkg.Status == "" {
		pkg.Status = domain.PackageDraft
	}
	if pkg.DurationMonths <= 0 {
		pkg.DurationMonths = 1
	}
	pricing.NormalizePackage(pkg)
	if err := s.packages.CreatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	return pkg, nil
}

// Get returns a package by id or port.ErrNotFound.
func (s *PackageService) Get(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	pkg, err := s.packages.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, port.ErrNotFound
	}
	return pkg, nil
}

// List returns package summaries, optionally filtered by hub.
func (s *PackageService) List(ctx context.Context, hubID int64) ([]domain.PackageSummary, error) {
	return s.packages.ListPackages(ctx, hubID)
}

// Save overwrites a package with edited contents after repricing it. The
// stored row is replaced wholesale; there is no merge.
func (s *PackageService) Save(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	existing, err := s.packages.GetPackage(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, port.ErrNotFound
	}
	if pkg.DurationMonths <= 0 {
		pkg.DurationMonths = existing.DurationMonths
	}
	// the edit payload never carries the creation timestamp
	pkg.CreatedAt = existing.CreatedAt
	pricing.NormalizePackage(pkg)
	if err := s.packages.UpdatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("save package: %w", err)
	}
	return pkg, nil
}

// Delete removes a package by id.
func (s *PackageService) Delete(ctx context.Context, id uuid.UUID) error {
	pkg, err := s.packages.GetPackage(ctx, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return port.ErrNotFound
	}
	return s.packages.DeletePackage(ctx, id)
}

// BulkAdjust previews a strategy across the package and commits it when
// apply is set. The preview path never writes.
func (s *PackageService) BulkAdjust(ctx context.Context, id uuid.UUID, strategy pricing.Strategy, apply bool) (*pricing.AdjustmentPreview, error) {
	if !pricing.ValidStrategy(strategy) {
		return nil, port.ErrUnknownStrategy
	}
	pkg, err := s.packages.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, port.ErrNotFound
	}

	if !apply {
		preview := pricing.PreviewAdjustment(pkg.Items(), strategy)
		return &preview, nil
	}

	preview := pricing.ApplyAdjustment(pkg, strategy)
	if err := s.packages.UpdatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("apply bulk adjustment: %w", err)
	}
	return &preview, nil
}

// ExportCSV renders the package cost breakdown as a CSV download.
func (s *PackageService) ExportCSV(ctx context.Context, id uuid.UUID) (*port.Export, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := export.PackageCSV(pkg)
	if err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return &port.Export{
		Filename:    exportFilename(pkg.Name, "csv"),
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// ExportInsertionOrder renders the package as a plain-text insertion order.
func (s *PackageService) ExportInsertionOrder(ctx context.Context, id uuid.UUID) (*port.Export, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var hubName string
	if hub, err := s.catalog.GetHub(ctx, pkg.HubID); err == nil && hub != nil {
		hubName = hub.Name
	}
	return &port.Export{
		Filename:    exportFilename(pkg.Name, "txt"),
		ContentType: "text/plain",
		Data:        export.InsertionOrder(pkg, hubName, s.now()),
	}, nil
}

// exportFilename turns a package name into a safe download filename.
func exportFilename(name, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	if slug == "" {
		slug = "package"
	}
	return fmt.Sprintf("%s.%s", slug, ext)
}
