package pastegen

import (
	"context"
	"strings"
	"testing"

	"github.com/seahub/audithub/internal/domain/delimited"
	"github.com/seahub/audithub/internal/domain/importer"
	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/pkg/logger"
)

func init() {
	_ = logger.Init()
}

func TestGeneratePasteImportsCleanly(t *testing.T) {
	config := &Config{NumRows: 50, NumStaff: 4, DaySpread: 14}
	stats := &Stats{}

	text, err := generatePaste(context.Background(), config, stats)
	if err != nil {
		t.Fatalf("generatePaste: %v", err)
	}
	if stats.RowsGenerated != 50 {
		t.Fatalf("expected 50 rows generated, got %d", stats.RowsGenerated)
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 51 {
		t.Fatalf("expected header plus 50 rows, got %d lines", len(lines))
	}
	for i, line := range lines {
		if got := len(strings.Split(line, "\t")); got != pasteColumns {
			t.Fatalf("line %d has %d columns, want %d", i, got, pasteColumns)
		}
	}

	checklist, err := rubric.New(rubric.DefaultItems())
	if err != nil {
		t.Fatalf("rubric.New: %v", err)
	}
	res, err := importer.New().Import(context.Background(), delimited.Parse(text), checklist, "local")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(res.Records) != 50 {
		t.Fatalf("expected 50 records imported, got %d (skipped %d)", len(res.Records), res.Skipped)
	}
	if res.InvalidDates != 0 {
		t.Fatalf("expected no invalid dates, got %d", res.InvalidDates)
	}
	for _, rec := range res.Records {
		if rec.MaxPossibleScore != session.MaxBaseScore {
			t.Fatalf("record %s max %.2f, want %d", rec.ID, rec.MaxPossibleScore, session.MaxBaseScore)
		}
		if rec.TotalScore < 0 {
			t.Fatalf("record %s has negative total %.2f", rec.ID, rec.TotalScore)
		}
	}
}
