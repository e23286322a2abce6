// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	cloudstore "github.com/seahub/audithub/internal/adapters/cloud"
	service "github.com/seahub/audithub/internal/app"
	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Bulk import of pasted spreadsheet text.
	ImportText(ctx context.Context, text string, dryRun bool) (service.ImportSummary, error)

	// Session ledger operations.
	SubmitSession(ctx context.Context, rec session.Record) (session.Record, error)
	Sessions(ctx context.Context) []session.Record
	Session(ctx context.Context, id string) (session.Record, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	Sanitize(ctx context.Context) (service.SanitizeSummary, error)

	// Aggregates and narrative reports.
	Dashboard(ctx context.Context) stats.Dashboard
	Feedback(ctx context.Context, id string) (session.Record, error)
	TeamReport(ctx context.Context) (string, error)

	// Rubric management.
	Rubric(ctx context.Context) []rubric.Item
	ReplaceRubric(ctx context.Context, items []rubric.Item) error

	// Cloud workspace sync.
	CloudSettings(ctx context.Context) cloudstore.Settings
	SetCloudSettings(ctx context.Context, settings cloudstore.Settings) error
	SyncFetch(ctx context.Context) (int, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	importHandler    *ImportHandler
	sessionsHandler  *SessionsHandler
	sanitizeHandler  *SanitizeHandler
	dashboardHandler *DashboardHandler
	reportHandler    *ReportHandler
	rubricHandler    *RubricHandler
	cloudHandler     *CloudHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		importHandler:    NewImportHandler(deps),
		sessionsHandler:  NewSessionsHandler(deps),
		sanitizeHandler:  NewSanitizeHandler(deps),
		dashboardHandler: NewDashboardHandler(deps),
		reportHandler:    NewReportHandler(deps),
		rubricHandler:    NewRubricHandler(deps),
		cloudHandler:     NewCloudHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/import", MetricsMiddleware(s.importHandler.HandleImport, "import"))
	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandleSessions, "sessions"))
	mux.HandleFunc("/sessions/", MetricsMiddleware(s.sessionsHandler.HandleSession, "session"))
	mux.HandleFunc("/export", MetricsMiddleware(s.sessionsHandler.HandleExport, "export"))
	mux.HandleFunc("/sanitize", MetricsMiddleware(s.sanitizeHandler.HandleSanitize, "sanitize"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/feedback/", MetricsMiddleware(s.reportHandler.HandleFeedback, "feedback"))
	mux.HandleFunc("/report/tna", MetricsMiddleware(s.reportHandler.HandleTeamReport, "report_tna"))
	mux.HandleFunc("/rubric", MetricsMiddleware(s.rubricHandler.HandleRubric, "rubric"))
	mux.HandleFunc("/cloud", MetricsMiddleware(s.cloudHandler.HandleSettings, "cloud"))
	mux.HandleFunc("/sync/fetch", MetricsMiddleware(s.cloudHandler.HandleSyncFetch, "sync_fetch"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service-layer sentinel errors into HTTP
// status codes and keeps the response shape uniform.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	case errors.Is(err, service.ErrCloudDisabled):
		writeError(w, http.StatusConflict, "cloud_disabled", err)
	case errors.Is(err, service.ErrStaffNameRequired),
		errors.Is(err, service.ErrDuplicateSession),
		errors.Is(err, cloudstore.ErrWorkspaceRequired),
		errors.Is(err, rubric.ErrInvalidItem),
		errors.Is(err, rubric.ErrLayoutMismatch):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
