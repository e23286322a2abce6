// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ImportHandler handles bulk paste import requests.
type ImportHandler struct {
	deps Dependencies
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps Dependencies) *ImportHandler {
	return &ImportHandler{deps: deps}
}

// importRequest mirrors the schema for POST /import.
type importRequest struct {
	Text string `json:"text"`
}

func (i importRequest) validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return errors.New("missing text")
	}
	return nil
}

// HandleImport handles POST /import?dry_run=1 requests.
func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	dryRun := r.URL.Query().Get("dry_run") == "1"

	summary, err := h.deps.ImportText(r.Context(), req.Text, dryRun)
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
