package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/pricing"
)

// ErrUnknownStrategy is returned when a bulk adjustment names a strategy the
// planner does not know.
var ErrUnknownStrategy = errors.New("unknown adjustment strategy")

// PackageRepository is the outbound port for package persistence. Saves are
// plain overwrites; the last writer wins.
type PackageRepository interface {
	CreatePackage(ctx context.Context, pkg *domain.Package) error
	GetPackage(ctx context.Context, id uuid.UUID) (*domain.Package, error)
	ListPackages(ctx context.Context, hubID int64) ([]domain.PackageSummary, error)
	UpdatePackage(ctx context.Context, pkg *domain.Package) error
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

// Export is a rendered download: the document bytes plus the filename and
// content type the HTTP layer should serve it with.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PackageUseCase is the inbound port for assembling, pricing and exporting
// packages. Every save path re-runs the frequency resolver and the cost
// calculator, so persisted packages always carry a consistent breakdown.
type PackageUseCase interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Package, error)
	List(ctx context.Context, hubID int64) ([]domain.PackageSummary, error)
	Save(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// BulkAdjust previews a named strategy across the package's line
	// items and, when apply is set, commits the adjusted frequencies.
	BulkAdjust(ctx context.Context, id uuid.UUID, strategy pricing.Strategy, apply bool) (*pricing.AdjustmentPreview, error)

	ExportCSV(ctx context.Context, id uuid.UUID) (*Export, error)
	ExportInsertionOrder(ctx context.Context, id uuid.UUID) (*Export, error)
}
