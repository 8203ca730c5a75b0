package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"spaceflow/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// statusFor maps a domain error kind onto an HTTP status. A missing session is
// 401, an ownership failure 403.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrAuthRequired) {
		return http.StatusUnauthorized
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]interface{}{"error": err.Error()})
}
