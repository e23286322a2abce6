package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
)

// coachingPrompt builds the per-session prompt. Scores are listed in
// rubric order so the model sees every task, scored or not.
func coachingPrompt(rec session.Record, r *rubric.Rubric) string {
	var scores strings.Builder
	for _, it := range r.Items() {
		bonus := ""
		if it.Bonus {
			bonus = " (Bonus)"
		}
		fmt.Fprintf(&scores, "%s: %s/%s%s\n", it.Task, trimFloat(rec.Scores[it.ID]), trimFloat(it.MaxPoints), bonus)
	}

	var comments strings.Builder
	keys := make([]string, 0, len(rec.CategoryComments))
	for k := range rec.CategoryComments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&comments, "%s observations: %s\n", k, rec.CategoryComments[k])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this Demo Excellence Audit.\n")
	fmt.Fprintf(&b, "Specialist: %s\n", rec.StaffName)
	fmt.Fprintf(&b, "Ref: %s\n\n", rec.AuditReference)
	fmt.Fprintf(&b, "SCORING CONTEXT:\n")
	fmt.Fprintf(&b, "Target base: %d points. Total Earned: %s / %d (Base)\n\n", session.MaxBaseScore, trimFloat(rec.TotalScore), session.MaxBaseScore)
	fmt.Fprintf(&b, "DETAIL SCORES:\n%s\n", scores.String())
	fmt.Fprintf(&b, "SUPERVISOR QUALITATIVE NOTES:\n")
	fmt.Fprintf(&b, "Series-level: %s\n", comments.String())
	fmt.Fprintf(&b, "Overall Summary: %s\n\n", rec.OverallComment)
	b.WriteString("Generate a premium coaching feedback report following these sections:\n")
	b.WriteString("1. CELEBRATION: Praise specific strengths and bonus achievements.\n")
	b.WriteString("2. REFINEMENT: Identify 2 demo techniques to sharpen.\n")
	b.WriteString("3. ACTION PLAN: 3 clear talking points for their next floor shift.\n\n")
	b.WriteString("TONE: Professional, analytical, and supportive retail coaching style.\n")
	return b.String()
}

// analysisPrompt builds the training-needs prompt from pre-computed
// aggregates so the narrative always matches the dashboard.
func analysisPrompt(d stats.Dashboard) string {
	var pillars strings.Builder
	for _, p := range d.Pillars {
		fmt.Fprintf(&pillars, "%s: %d%% Proficiency\n", p.Series, p.Percent)
	}

	var gaps strings.Builder
	for _, g := range d.Gaps {
		fmt.Fprintf(&gaps, "- %s: %d%% avg score\n", g.Task, int(math.Round(g.Percent)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Training Needs Analysis (TNA) - Regional Hub Report\n")
	fmt.Fprintf(&b, "Total Audits Analyzed: %d\n\n", d.TotalAudits)
	fmt.Fprintf(&b, "AGGREGATE PILLAR DATA:\n%s\n", pillars.String())
	fmt.Fprintf(&b, "TOP %d SKILL GAPS (Lowest Proficiency):\n%s\n", len(d.Gaps), gaps.String())
	b.WriteString("TASK:\n")
	b.WriteString("Generate a high-level strategic Training Needs Analysis.\n")
	b.WriteString("Structure the response using these Markdown headers:\n")
	b.WriteString("### EXECUTIVE SUMMARY\n")
	b.WriteString("### PILLAR PERFORMANCE ANALYSIS (S1-S5)\n")
	b.WriteString("### CRITICAL GAPS & TRENDS\n")
	b.WriteString("### 30-DAY STRATEGIC ACTION PLAN\n\n")
	b.WriteString("FOCUS: Identify the specific pillar needing immediate intervention and provide 3 concrete steps for trainers to take in the field.\n")
	return b.String()
}

// trimFloat renders a score without trailing zeros, so 1 stays "1" and
// 0.5 stays "0.5".
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
