// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// ReportHandler handles narrative report requests.
type ReportHandler struct {
	deps Dependencies
}

// NewReportHandler creates a new report handler.
func NewReportHandler(deps Dependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

// HandleFeedback handles POST /feedback/{session_id} requests. The
// generated coaching text is stored on the session and the updated
// record is returned.
func (h *ReportHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	const op = "api.feedback"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/feedback/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rec, err := h.deps.Feedback(r.Context(), id)
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// teamReportResponse mirrors the schema for POST /report/tna.
type teamReportResponse struct {
	Report string `json:"report"`
}

// HandleTeamReport handles POST /report/tna requests.
func (h *ReportHandler) HandleTeamReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.report_tna"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	text, err := h.deps.TeamReport(r.Context())
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, teamReportResponse{Report: text})
}
