// Package importer maps the fixed positional paste layout onto session
// records, clamping every score against the live rubric.
package importer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
)

// Fallback values for optional header fields left empty in the paste.
const (
	defaultSupervisor = "Import"
	defaultBranch     = "Hub"
)

// batchIDLength truncates the uuid used to namespace row ids within a batch.
const batchIDLength = 8

// ctxCheckEvery bounds how often the row loop polls for cancellation.
const ctxCheckEvery = 64

// dateFormats are tried in order when parsing the date cell. Pasted data
// comes from spreadsheets, so both ISO and slash forms show up.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"01/02/2006 15:04",
	"2 Jan 2006",
}

// Result summarizes one import batch.
type Result struct {
	Records      []session.Record
	Skipped      int // short rows plus rows missing required fields
	InvalidDates int // imported rows whose date cell did not parse
}

// Option applies a configuration option to the Importer.
type Option func(*Importer)

// WithLayout overrides the positional layout.
func WithLayout(layout rubric.Layout) Option {
	return func(im *Importer) {
		im.layout = layout
	}
}

// WithClock overrides the time source used for synthesized defaults.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) {
		if now != nil {
			im.now = now
		}
	}
}

// WithBatchID overrides batch id generation, for deterministic tests.
func WithBatchID(gen func() string) Option {
	return func(im *Importer) {
		if gen != nil {
			im.newBatchID = gen
		}
	}
}

// Importer converts parsed rows into session records.
type Importer struct {
	layout     rubric.Layout
	now        func() time.Time
	newBatchID func() string
}

// New creates an Importer with the default 74-column layout.
func New(opts ...Option) *Importer {
	im := &Importer{
		layout: rubric.DefaultLayout(),
		now:    time.Now,
		newBatchID: func() string {
			return uuid.NewString()[:batchIDLength]
		},
	}

	for _, opt := range opts {
		opt(im)
	}

	return im
}

// Import walks the parsed rows and synthesizes one session record per valid
// data row. The first row is treated as a header and discarded. Record ids
// are freshly synthesized per batch, so importing the same text twice always
// re-adds every row; the caller's dedup-by-id merge never drops them.
//
// Import never fails on bad data, only on cancellation.
func (im *Importer) Import(ctx context.Context, rows [][]string, r *rubric.Rubric, workspaceID string) (Result, error) {
	var res Result
	if len(rows) < 2 {
		return res, nil
	}

	batchID := im.newBatchID()
	for rowIndex, cols := range rows[1:] {
		if rowIndex%ctxCheckEvery == 0 && ctx.Err() != nil {
			return res, fmt.Errorf("import cancelled: %w", ctx.Err())
		}
		rec, ok := im.importRow(cols, r, batchID, rowIndex, workspaceID, &res)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// importRow maps one data row; ok is false when the row must be skipped.
func (im *Importer) importRow(cols []string, r *rubric.Rubric, batchID string, rowIndex int, workspaceID string, res *Result) (session.Record, bool) {
	if len(cols) < rubric.MinColumns {
		return session.Record{}, false
	}
	staffName := cell(cols, rubric.ColStaffName)
	dateStr := cell(cols, rubric.ColDate)
	if staffName == "" || dateStr == "" {
		return session.Record{}, false
	}

	scores := make(map[string]float64)
	for _, seg := range im.layout.Segments {
		for i := 0; i < seg.Width; i++ {
			id := seg.ItemID(i)
			scores[id] = clamp(cell(cols, seg.Offset+i), id, r)
		}
	}

	comments := make(map[string]string)
	for series, col := range im.layout.CommentColumns {
		comments[series] = cell(cols, col)
	}

	date, ok := parseDate(dateStr)
	if !ok {
		// Unparsable dates keep the record with a zero-time sentinel; they
		// are tallied separately so the batch summary can surface them.
		res.InvalidDates++
	}

	auditRef := cell(cols, rubric.ColAuditReference)
	if auditRef == "" {
		auditRef = fmt.Sprintf("AUD-%d", im.now().UnixMilli())
	}
	supervisor := cell(cols, rubric.ColSupervisor)
	if supervisor == "" {
		supervisor = defaultSupervisor
	}
	branch := cell(cols, rubric.ColStoreBranch)
	if branch == "" {
		branch = defaultBranch
	}

	rec := session.Record{
		ID:               fmt.Sprintf("imp-%s-%d", batchID, rowIndex),
		StaffName:        staffName,
		SupervisorName:   supervisor,
		StoreBranch:      branch,
		AuditReference:   auditRef,
		Date:             date,
		Scores:           scores,
		CategoryComments: comments,
		OverallComment:   cell(cols, rubric.ColOverallComment),
		MaxPossibleScore: session.MaxBaseScore,
		AIFeedback:       "Synchronized hub standard record.",
		WorkspaceID:      workspaceID,
	}
	rec.TotalScore = rec.SumScores()
	return rec, true
}

// cell returns the trimmed field at index i, or "" when the row is short.
func cell(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}

// clamp parses a raw cell as a float (unparsable reads as zero) and caps it
// at the rubric maximum. Ids absent from the rubric pass through unclamped.
func clamp(raw, itemID string, r *rubric.Rubric) float64 {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		val = 0
	}
	if max, ok := r.Lookup(itemID); ok && val > max {
		return max
	}
	return val
}

// parseDate tries the known spreadsheet date forms; ok is false when none
// match and the zero time is returned.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
