// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	cloudstore "github.com/seahub/audithub/internal/adapters/cloud"
)

// CloudHandler handles cloud workspace sync requests.
type CloudHandler struct {
	deps Dependencies
}

// NewCloudHandler creates a new cloud handler.
func NewCloudHandler(deps Dependencies) *CloudHandler {
	return &CloudHandler{deps: deps}
}

// HandleSettings handles GET /cloud and PUT /cloud requests.
func (h *CloudHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	const op = "api.cloud"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.CloudSettings(r.Context()))
	case http.MethodPut:
		var settings cloudstore.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.SetCloudSettings(r.Context(), settings); err != nil {
			writeServiceError(w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, h.deps.CloudSettings(r.Context()))
	default:
		http.NotFound(w, r)
	}
}

// syncFetchResponse mirrors the schema for POST /sync/fetch.
type syncFetchResponse struct {
	Added    int                 `json:"added"`
	Settings cloudstore.Settings `json:"settings"`
}

// HandleSyncFetch handles POST /sync/fetch requests. Remote records are
// merged into the local ledger; local records always win on conflict.
func (h *CloudHandler) HandleSyncFetch(w http.ResponseWriter, r *http.Request) {
	const op = "api.sync_fetch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	added, err := h.deps.SyncFetch(r.Context())
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, syncFetchResponse{
		Added:    added,
		Settings: h.deps.CloudSettings(r.Context()),
	})
}
