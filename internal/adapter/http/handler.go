package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"chicago-hub/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it holds the usecases that execute business logic, a structured
// logger and a request validator. Routes are registered on a chi.Router.
type Handler struct {
	catalog   port.CatalogUseCase
	packages  port.PackageUseCase
	leads     port.LeadUseCase
	logger    *slog.Logger
	validate  *validator.Validate
	jwtSecret []byte
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Mutating routes
// require a bearer JWT signed with jwtSecret; catalog reads, package reads,
// exports and the storefront lead form are public.
func NewHandler(catalog port.CatalogUseCase, packages port.PackageUseCase, leads port.LeadUseCase, logger *slog.Logger, jwtSecret []byte) *Handler {
	h := &Handler{
		catalog:   catalog,
		packages:  packages,
		leads:     leads,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		jwtSecret: jwtSecret,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/hubs", h.handleListHubs)
		r.Get("/hubs/{hubID}", h.handleGetHub)
		r.Get("/hubs/{hubID}/publications", h.handleListPublications)
		r.Get("/publications/{id}", h.handleGetPublication)

		r.Get("/packages", h.handleListPackages)
		r.Get("/packages/{id}", h.handleGetPackage)
		r.Get("/packages/{id}/export.csv", h.handleExportCSV)
		r.Get("/packages/{id}/insertion-order", h.handleExportInsertionOrder)

		r.Post("/leads", h.handleSubmitLead)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Put("/publications/{id}/audience", h.handleAdjustAudience)

			r.Post("/packages", h.handleCreatePackage)
			r.Put("/packages/{id}", h.handleSavePackage)
			r.Delete("/packages/{id}", h.handleDeletePackage)
			r.Post("/packages/{id}/bulk-adjust", h.handleBulkAdjust)

			r.Get("/leads", h.handleListLeads)
			r.Put("/leads/{id}/status", h.handleUpdateLeadStatus)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
