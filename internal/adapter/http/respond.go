package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"chicago-hub/internal/core/port"
)

// writeJSON encodes v as the response body with the given status. Encoding
// failures are logged; headers are already sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps usecase errors onto HTTP statuses: not found to 404,
// bad domain input to 422, everything else to a logged 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, port.ErrUnknownStrategy),
		errors.Is(err, port.ErrInvalidLeadStatus),
		errors.Is(err, port.ErrInvalidDistribution):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decodeValid decodes the request body into v and runs struct validation.
// It writes the error response itself and reports success to the caller.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			http.Error(w, verrs.Error(), http.StatusUnprocessableEntity)
			return false
		}
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return false
	}
	return true
}
