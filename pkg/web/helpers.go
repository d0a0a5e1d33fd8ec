// Package web holds the HTTP helpers and middleware shared by the REST transport.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// RespondJSON encodes payload as the JSON response body.
// A nil payload writes only the status code.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondStatus writes a response with an empty body.
func RespondStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// ParseID extracts a positive integer ID from the {id} path parameter.
// On failure it answers 400 with an empty body and returns false.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, err := strconv.ParseInt(pathValueID, 10, 64)
	if err != nil || id <= 0 {
		logger.WarnContext(r.Context(), "Invalid ID in request path", "ID", pathValueID)
		RespondStatus(w, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
