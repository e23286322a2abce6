// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SanitizeHandler handles score sanitization requests.
type SanitizeHandler struct {
	deps Dependencies
}

// NewSanitizeHandler creates a new sanitize handler.
func NewSanitizeHandler(deps Dependencies) *SanitizeHandler {
	return &SanitizeHandler{deps: deps}
}

// HandleSanitize handles POST /sanitize requests. Clamping is
// idempotent, so repeating the call is always safe.
func (h *SanitizeHandler) HandleSanitize(w http.ResponseWriter, r *http.Request) {
	const op = "api.sanitize"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	summary, err := h.deps.Sanitize(r.Context())
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
