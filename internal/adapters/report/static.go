package report

import (
	"context"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
)

// Static implements Generator without any remote calls. It is used when
// no API key is configured so the hub still answers report requests.
type Static struct{}

// Coaching implements Generator.
func (Static) Coaching(ctx context.Context, rec session.Record, r *rubric.Rubric) (string, error) {
	return coachingFallback, nil
}

// TeamAnalysis implements Generator.
func (Static) TeamAnalysis(ctx context.Context, d stats.Dashboard) (string, error) {
	if d.TotalAudits == 0 {
		return analysisNoData, nil
	}
	return analysisFallback, nil
}
