// Package response writes the API's JSON wire format. Errors are always a
// flat object carrying a "message" field plus optional details, matching what
// the storefront expects.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Error sends {"message": ...} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// ValidationError sends a 400 with field-level error details.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, map[string]interface{}{
		"message": "Validation failed",
		"errors":  errs,
	})
}

// ServerError sends a 500. Outside production the recovered stack is included
// to match the final error handler's behaviour.
func ServerError(w http.ResponseWriter, message, stack string) {
	body := map[string]interface{}{"message": message}
	if stack != "" {
		body["stack"] = stack
	}
	JSON(w, http.StatusInternalServerError, body)
}
