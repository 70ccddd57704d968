package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"activity-signup-service/internal/dto"

	"github.com/go-chi/chi/v5"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, &dto.ErrorResponse{Detail: detail})
}

// pathParam returns the decoded value of a chi URL parameter.
// chi matches against RawPath when the request carried one, leaving the value escaped.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
