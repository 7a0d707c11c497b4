package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"chicago-hub/internal/core/domain"
	"chicago-hub/internal/core/port"
	"chicago-hub/internal/core/pricing"
)

// packageRequest is the builder payload for creating or saving a package.
type packageRequest struct {
	HubID          int64              `json:"hubId" validate:"required"`
	Name           string             `json:"name" validate:"required"`
	ClientName     string             `json:"clientName"`
	DurationMonths float64            `json:"durationMonths" validate:"gte=0"`
	Status         string             `json:"status"`
	Publications   []publicationItems `json:"publications" validate:"dive"`
}

type publicationItems struct {
	PublicationID   int64         `json:"publicationId" validate:"required"`
	PublicationName string        `json:"publicationName"`
	Items           []itemPayload `json:"items" validate:"dive"`
}

type itemPayload struct {
	ItemName                 string              `json:"itemName" validate:"required"`
	Channel                  string              `json:"channel" validate:"required"`
	PricingModel             string              `json:"pricingModel" validate:"required"`
	UnitPrice                decimal.Decimal     `json:"unitPrice"`
	Frequency                int                 `json:"frequency"`
	MonthlyImpressions       int64               `json:"monthlyImpressions" validate:"gte=0"`
	PublicationFrequencyType string              `json:"publicationFrequencyType"`
	TieredRates              *domain.TieredRates `json:"tieredRates"`
}

func (req *packageRequest) toDomain() *domain.Package {
	pkg := &domain.Package{
		HubID:          req.HubID,
		Name:           req.Name,
		ClientName:     req.ClientName,
		DurationMonths: req.DurationMonths,
		Status:         domain.PackageStatus(req.Status),
	}
	for _, pub := range req.Publications {
		dp := domain.PackagePublication{
			PublicationID:   pub.PublicationID,
			PublicationName: pub.PublicationName,
		}
		for _, item := range pub.Items {
			dp.Items = append(dp.Items, domain.LineItem{
				PublicationID:        pub.PublicationID,
				ItemName:             item.ItemName,
				Channel:              domain.Channel(item.Channel),
				PricingModel:         domain.ParsePricingModel(item.PricingModel),
				UnitPrice:            item.UnitPrice,
				Frequency:            item.Frequency,
				MonthlyImpressions:   item.MonthlyImpressions,
				PublicationFrequency: domain.ParseFrequencyType(item.PublicationFrequencyType),
				Tiered:               item.TieredRates,
			})
		}
		pkg.Publications = append(pkg.Publications, dp)
	}
	return pkg
}

// handleCreatePackage builds and persists a new package from the builder
// payload and returns it with its computed price breakdown.
func (h *Handler) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req packageRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	pkg, err := h.packages.Create(r.Context(), req.toDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, pkg)
}

// handleListPackages returns package summaries, optionally filtered by the
// hub_id query parameter.
func (h *Handler) handleListPackages(w http.ResponseWriter, r *http.Request) {
	var hubID int64
	if raw := r.URL.Query().Get("hub_id"); raw != "" {
		var err error
		hubID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid hub_id", http.StatusBadRequest)
			return
		}
	}
	summaries, err := h.packages.List(r.Context(), hubID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summaries)
}

// handleGetPackage returns a full package with line items and pricing.
func (h *Handler) handleGetPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	pkg, err := h.packages.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pkg)
}

// handleSavePackage overwrites a package with edited contents. The engine
// reprices on every save, so the response carries the fresh breakdown.
func (h *Handler) handleSavePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req packageRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	pkg := req.toDomain()
	pkg.ID = id
	saved, err := h.packages.Save(r.Context(), pkg)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, saved)
}

// handleDeletePackage removes a package.
func (h *Handler) handleDeletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	if err := h.packages.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bulkAdjustRequest names the strategy to run across a package's items.
// Apply commits the adjustment; otherwise the response is a dry run.
type bulkAdjustRequest struct {
	Strategy string `json:"strategy" validate:"required"`
	Apply    bool   `json:"apply"`
}

// handleBulkAdjust previews or applies a bulk frequency adjustment.
func (h *Handler) handleBulkAdjust(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req bulkAdjustRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	preview, err := h.packages.BulkAdjust(r.Context(), id, pricing.Strategy(req.Strategy), req.Apply)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, preview)
}

// handleExportCSV serves the package cost breakdown as a CSV download.
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, h.packages.ExportCSV)
}

// handleExportInsertionOrder serves the plain-text insertion order.
func (h *Handler) handleExportInsertionOrder(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, h.packages.ExportInsertionOrder)
}

// serveExport runs a render function and writes the result as an attachment
// download.
func (h *Handler) serveExport(w http.ResponseWriter, r *http.Request, render func(ctx context.Context, id uuid.UUID) (*port.Export, error)) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	exp, err := render(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", exp.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	if _, err := w.Write(exp.Data); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}

// pathUUID parses the {id} path parameter as a UUID, writing a 400 on
// failure.
func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid package id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
