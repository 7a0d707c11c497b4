package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListHubs returns every hub.
func (h *Handler) handleListHubs(w http.ResponseWriter, r *http.Request) {
	hubs, err := h.catalog.Hubs(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, hubs)
}

// handleGetHub returns one hub by its {hubID} path parameter.
func (h *Handler) handleGetHub(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "hubID")
	if !ok {
		return
	}
	hub, err := h.catalog.Hub(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, hub)
}

// handleListPublications returns the publications of one hub.
func (h *Handler) handleListPublications(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "hubID")
	if !ok {
		return
	}
	pubs, err := h.catalog.Publications(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pubs)
}

// handleGetPublication returns one publication.
func (h *Handler) handleGetPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}
	pub, err := h.catalog.Publication(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pub)
}

// audienceRequest moves one bucket of one demographic group to a new value.
type audienceRequest struct {
	Group  string  `json:"group" validate:"required"`
	Bucket int     `json:"bucket" validate:"gte=0"`
	Value  float64 `json:"value" validate:"gte=0,lte=100"`
}

// handleAdjustAudience applies a single slider move to a publication's
// audience profile and returns the redistributed profile.
func (h *Handler) handleAdjustAudience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}
	var req audienceRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	profile, err := h.catalog.AdjustAudience(r.Context(), id, req.Group, req.Bucket, req.Value)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, profile)
}

// pathInt64 parses an integer path parameter, writing a 400 on failure.
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
