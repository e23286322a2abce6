// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/seahub/audithub/internal/domain/rubric"
)

// RubricHandler handles checklist management requests.
type RubricHandler struct {
	deps Dependencies
}

// NewRubricHandler creates a new rubric handler.
func NewRubricHandler(deps Dependencies) *RubricHandler {
	return &RubricHandler{deps: deps}
}

// HandleRubric handles GET /rubric and PUT /rubric requests.
// A replacement rubric must keep the column layout intact or the
// request is refused.
func (h *RubricHandler) HandleRubric(w http.ResponseWriter, r *http.Request) {
	const op = "api.rubric"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Rubric(r.Context()))
	case http.MethodPut:
		var items []rubric.Item
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.ReplaceRubric(r.Context(), items); err != nil {
			writeServiceError(w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, h.deps.Rubric(r.Context()))
	default:
		http.NotFound(w, r)
	}
}
