// Package report generates narrative coaching and training-needs reports
// from the score ledger using the Gemini API.
//
// Generation never fails the caller: when the API is unreachable or
// returns nothing, a fixed fallback message is returned instead so the
// trainer screen always has something to show.
package report

import (
	"context"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Fallback messages. These are part of the trainer-facing contract and
// must stay stable across releases.
const (
	coachingFallback = "AI generation limited. Use score ledger for manual coaching."
	coachingEmpty    = "Analysis generated. Review manual ledger."
	analysisFallback = "Failed to analyze trends. Please check Hub connectivity."
	analysisEmpty    = "Analysis complete. Review ledger metrics."
	analysisNoData   = "No data available for analysis."
)

// Generator produces trainer-facing narrative reports.
type Generator interface {
	// Coaching writes a per-session coaching report for one specialist.
	Coaching(ctx context.Context, rec session.Record, r *rubric.Rubric) (string, error)

	// TeamAnalysis writes a training-needs analysis over the whole
	// ledger, consuming the same aggregates the dashboard shows.
	TeamAnalysis(ctx context.Context, d stats.Dashboard) (string, error)
}
