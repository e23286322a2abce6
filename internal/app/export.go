package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"
)

// ExportCSV renders the whole ledger as RFC 4180 CSV: fixed metadata
// columns, then one column per rubric item in checklist order.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	if !s.started {
		s.mu.RUnlock()
		return nil, ErrNotStarted
	}
	checklist := s.checklist
	s.mu.RUnlock()

	items := checklist.Items()

	header := []string{
		"id", "auditReference", "staffName", "storeBranch", "supervisorName",
		"date", "totalScore", "maxPossibleScore",
	}
	for _, it := range items {
		header = append(header, it.ID)
	}
	header = append(header, "overallComment")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range s.ledger.Records() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := ""
		if !rec.Date.IsZero() {
			date = rec.Date.Format(time.RFC3339)
		}
		row := []string{
			rec.ID, rec.AuditReference, rec.StaffName, rec.StoreBranch, rec.SupervisorName,
			date,
			strconv.FormatFloat(rec.TotalScore, 'f', -1, 64),
			strconv.FormatFloat(rec.MaxPossibleScore, 'f', -1, 64),
		}
		for _, it := range items {
			row = append(row, strconv.FormatFloat(rec.Scores[it.ID], 'f', -1, 64))
		}
		row = append(row, rec.OverallComment)

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
