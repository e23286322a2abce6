// Package session contains the audit session record and the insertion-ordered
// collection that owns the ledger's merge semantics.
package session

import "time"

// Record is a single completed audit: who was audited, by whom, and the
// per-item scores against the rubric in force at the time.
//
// TotalScore must always equal the sum of Scores values; every mutation of
// Scores recomputes it in the same step.
type Record struct {
	ID               string             `json:"id"`
	StaffName        string             `json:"staffName"`
	SupervisorName   string             `json:"supervisorName"`
	StoreBranch      string             `json:"storeBranch"`
	AuditReference   string             `json:"auditReference"`
	Date             time.Time          `json:"date"`
	Scores           map[string]float64 `json:"scores"`
	CategoryComments map[string]string  `json:"categoryComments,omitempty"`
	OverallComment   string             `json:"overallComment,omitempty"`
	TotalScore       float64            `json:"totalScore"`
	MaxPossibleScore float64            `json:"maxPossibleScore"`
	AIFeedback       string             `json:"aiFeedback,omitempty"`
	WorkspaceID      string             `json:"workspaceId,omitempty"`
}

// MaxBaseScore is the fixed scoring base; the rubric's nominal sum is 100
// regardless of bonus items.
const MaxBaseScore = 100

// SumScores returns the sum of all score values.
func (r Record) SumScores() float64 {
	var total float64
	for _, v := range r.Scores {
		total += v
	}
	return total
}

// CloneScores returns a copy of the scores map.
func (r Record) CloneScores() map[string]float64 {
	out := make(map[string]float64, len(r.Scores))
	for k, v := range r.Scores {
		out[k] = v
	}
	return out
}
