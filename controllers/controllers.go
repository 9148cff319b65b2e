package controllers

import (
	"encoding/json"
	"net/http"

	"strive_server/apperr"
)

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError surfaces a resolver error kind and message verbatim. Store
// details never reach the caller; non-apperr failures collapse to a 500.
func writeError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	message := "internal failure"

	switch kind {
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
		message = err.Error()
	case apperr.KindValidation:
		status = http.StatusBadRequest
		message = err.Error()
	case apperr.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case apperr.KindInternal:
		message = err.Error()
	}

	writeJSON(w, status, map[string]string{"error": message})
}
