// Package stats derives dashboard figures from the rubric and the session
// ledger. Everything here is a pure read; the ledger is never mutated.
//
// The report collaborator consumes these same aggregates, so the generated
// narrative always matches what the dashboard displays.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
)

// seriesBase is the fixed 20-point base every series is scored against.
const seriesBase = 20

// defaultGapCount is how many of the lowest-proficiency items count as
// critical gaps when the caller does not say otherwise.
const defaultGapCount = 5

// PillarScore is a per-series average expressed as a percentage of the
// fixed 20-point base, bonus items excluded.
type PillarScore struct {
	Series  string `json:"series"`
	Percent int    `json:"percent"`
}

// Gap is one rubric item's earned-over-possible proficiency across the
// whole ledger.
type Gap struct {
	ItemID  string  `json:"itemId"`
	Task    string  `json:"task"`
	Percent float64 `json:"percent"`
}

// TrendPoint is one session projected onto the score-over-time chart.
type TrendPoint struct {
	Date  string  `json:"date"` // RFC3339
	Score float64 `json:"score"`
}

// Dashboard bundles every figure the trainer screen and the report
// collaborator need.
type Dashboard struct {
	TotalAudits      int           `json:"totalAudits"`
	AverageTeamScore float64       `json:"averageTeamScore"`
	TopPerformer     string        `json:"topPerformer"`
	CompliancePct    int           `json:"compliancePct"`
	Problematic      int           `json:"problematic"`
	Pillars          []PillarScore `json:"pillars"`
	Gaps             []Gap         `json:"gaps"`
	Trend            []TrendPoint  `json:"trend"`
}

// Compliance returns the percentage of sessions with no score above its
// rubric maximum, rounded to the nearest integer. An empty ledger is fully
// compliant by definition.
func Compliance(records []session.Record, r *rubric.Rubric) int {
	if len(records) == 0 {
		return 100
	}
	ok := 0
	for _, rec := range records {
		if !exceedsAny(rec, r) {
			ok++
		}
	}
	return int(math.Round(float64(ok) / float64(len(records)) * 100))
}

func exceedsAny(rec session.Record, r *rubric.Rubric) bool {
	for id, score := range rec.Scores {
		if max, found := r.Lookup(id); found && score > max {
			return true
		}
	}
	return false
}

// PillarAverages computes, for each series, the mean earned base score
// across all sessions as a percentage of the 20-point series base. Bonus
// items never count toward the base.
func PillarAverages(records []session.Record, r *rubric.Rubric) []PillarScore {
	labels := r.SeriesLabels()
	out := make([]PillarScore, 0, len(labels))
	for _, series := range labels {
		var items []rubric.Item
		for _, it := range r.Items() {
			if it.Series() == series && !it.Bonus {
				items = append(items, it)
			}
		}
		pct := 0
		if len(records) > 0 && len(items) > 0 {
			var sum float64
			for _, rec := range records {
				for _, it := range items {
					sum += rec.Scores[it.ID]
				}
			}
			avg := sum / float64(len(records))
			pct = int(math.Round(avg / seriesBase * 100))
		}
		out = append(out, PillarScore{Series: series, Percent: pct})
	}
	return out
}

// SkillGaps ranks every rubric item by earned-over-possible across the
// ledger, ascending, so the weakest skills come first. topN caps the list;
// topN <= 0 uses the default of five.
func SkillGaps(records []session.Record, r *rubric.Rubric, topN int) []Gap {
	if topN <= 0 {
		topN = defaultGapCount
	}
	items := r.Items()
	gaps := make([]Gap, 0, len(items))
	for _, it := range items {
		var earned, possible float64
		for _, rec := range records {
			earned += rec.Scores[it.ID]
			possible += it.MaxPoints
		}
		pct := 0.0
		if possible > 0 {
			pct = earned / possible * 100
		}
		gaps = append(gaps, Gap{ItemID: it.ID, Task: it.Task, Percent: pct})
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Percent < gaps[j].Percent })
	if len(gaps) > topN {
		gaps = gaps[:topN]
	}
	return gaps
}

// Trend projects sessions onto (date, total) pairs sorted by date ascending.
func Trend(records []session.Record) []TrendPoint {
	sorted := make([]session.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	out := make([]TrendPoint, len(sorted))
	for i, rec := range sorted {
		out[i] = TrendPoint{Date: rec.Date.Format(time.RFC3339), Score: rec.TotalScore}
	}
	return out
}

// Build assembles the full dashboard in one pass.
func Build(records []session.Record, r *rubric.Rubric, topN int) Dashboard {
	d := Dashboard{
		TotalAudits:   len(records),
		CompliancePct: Compliance(records, r),
		Pillars:       PillarAverages(records, r),
		Gaps:          SkillGaps(records, r, topN),
		Trend:         Trend(records),
	}
	for _, rec := range records {
		if exceedsAny(rec, r) {
			d.Problematic++
		}
	}
	if len(records) > 0 {
		var sum float64
		top := records[0]
		for _, rec := range records {
			sum += rec.TotalScore
			if rec.TotalScore > top.TotalScore {
				top = rec
			}
		}
		d.AverageTeamScore = math.Round(sum/float64(len(records))*10) / 10
		d.TopPerformer = top.StaffName
	}
	return d
}
