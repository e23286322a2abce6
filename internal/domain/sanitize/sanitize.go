// Package sanitize repairs stored session records against the current rubric
// maxima. It is the only permitted post-hoc mutator of the ledger.
package sanitize

import (
	"strings"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
)

// Annotation appended to a corrected record's feedback text. Appending is
// guarded so repeated passes never grow the text.
const (
	annotation      = "[Hub Standard Applied: Scores clamped to maximum.]"
	annotationAlone = "[Hub Standard Applied]"
)

// Violations counts records holding at least one score above its rubric
// maximum. It is the dashboard's "problematic" figure and lets callers gate
// a sanitize pass.
func Violations(records []session.Record, r *rubric.Rubric) int {
	n := 0
	for _, rec := range records {
		if violates(rec, r) {
			n++
		}
	}
	return n
}

func violates(rec session.Record, r *rubric.Rubric) bool {
	for id, score := range rec.Scores {
		if max, ok := r.Lookup(id); ok && score > max {
			return true
		}
	}
	return false
}

// Apply re-clamps every record against the current rubric and recomputes
// totals for records that changed. Untouched records are returned as-is, so
// a pass with zero violations is a pure no-op. The numeric effect is
// idempotent: a second pass over the output changes nothing.
func Apply(records []session.Record, r *rubric.Rubric) ([]session.Record, int) {
	out := make([]session.Record, len(records))
	corrected := 0

	for i, rec := range records {
		if !violates(rec, r) {
			out[i] = rec
			continue
		}

		fixed := rec
		fixed.Scores = rec.CloneScores()
		for id, score := range fixed.Scores {
			if max, ok := r.Lookup(id); ok && score > max {
				fixed.Scores[id] = max
			}
		}
		fixed.TotalScore = fixed.SumScores()
		fixed.AIFeedback = annotate(rec.AIFeedback)
		out[i] = fixed
		corrected++
	}

	return out, corrected
}

// annotate appends the standards note exactly once.
func annotate(feedback string) string {
	if strings.Contains(feedback, annotation) || strings.Contains(feedback, annotationAlone) {
		return feedback
	}
	if feedback == "" {
		return annotationAlone
	}
	return feedback + "\n\n" + annotation
}
