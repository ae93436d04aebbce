package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON sends v as the JSON body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends JSON {"error": message}.
func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

// writeValidationError sends a 400 with per-field detail:
// {"error":"validation error","fields":{field: reason}}.
func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation error",
		"fields": fields,
	})
}
