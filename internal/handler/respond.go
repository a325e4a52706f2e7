// Package handler wires the form pipelines to HTTP: request parsing,
// honeypot short-circuit, sanitization, validation, composition, dispatch,
// and the JSON response envelope for each outcome.
package handler

import (
	"encoding/json"
	"net/http"
)

// genericErrMsg is the only failure text a client ever sees for server-side
// problems. Transport details stay in the logs.
const genericErrMsg = "Unable to process request at this time."

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondOK acknowledges a submission (or a honeypot hit, deliberately
// indistinguishable from one).
func respondOK(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// respondFieldErrors returns the field-to-message mapping so the form can
// render every problem at once.
func respondFieldErrors(w http.ResponseWriter, errs map[string]string) {
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func respondServerError(w http.ResponseWriter) {
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": genericErrMsg})
}
