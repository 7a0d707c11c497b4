package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"chicago-hub/internal/core/domain"
)

// leadRequest is the public storefront enquiry form payload.
type leadRequest struct {
	HubID     int64      `json:"hubId" validate:"required"`
	PackageID *uuid.UUID `json:"packageId"`
	Name      string     `json:"name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Company   string     `json:"company"`
	Message   string     `json:"message"`
}

// handleSubmitLead accepts a storefront enquiry. This endpoint is public.
func (h *Handler) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	lead, err := h.leads.Submit(r.Context(), &domain.Lead{
		HubID:     req.HubID,
		PackageID: req.PackageID,
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, lead)
}

// handleListLeads returns leads for the hub dashboard, optionally filtered
// by the hub_id query parameter.
func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	var hubID int64
	if raw := r.URL.Query().Get("hub_id"); raw != "" {
		var err error
		hubID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid hub_id", http.StatusBadRequest)
			return
		}
	}
	leads, err := h.leads.List(r.Context(), hubID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, leads)
}

// leadStatusRequest moves a lead through the funnel.
type leadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// handleUpdateLeadStatus updates a lead's funnel state.
func (h *Handler) handleUpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid lead id", http.StatusBadRequest)
		return
	}
	var req leadStatusRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	if err := h.leads.UpdateStatus(r.Context(), id, domain.LeadStatus(req.Status)); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
