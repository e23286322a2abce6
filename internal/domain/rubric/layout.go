package rubric

import "fmt"

// Column indexes that are fixed by the paste contract, 0-based.
const (
	ColAuditReference = 1
	ColStaffName      = 2
	ColStoreBranch    = 3
	ColDate           = 4
	ColSupervisor     = 5
	ColOverallComment = 73

	// MinColumns is the minimum field count for a data row to be importable.
	MinColumns = 70
)

// Segment describes one contiguous block of score columns mapped onto a
// series of rubric items.
type Segment struct {
	Series string // item id prefix, e.g. "s1"
	Offset int    // first column of the block
	Width  int    // number of score columns
	Start  int    // ordinal of the first item in the block, 1-based
}

// ItemID returns the rubric item id for the i-th column of the segment.
func (s Segment) ItemID(i int) string {
	return fmt.Sprintf("%s-%d", s.Series, s.Start+i)
}

// Layout is the explicit positional schema of the 74-column paste contract.
// It exists so that rubric edits which change per-series item counts fail
// fast at load time instead of silently misaligning the import.
type Layout struct {
	Segments       []Segment
	CommentColumns map[string]int // series label ("S2") -> free-text column
}

// DefaultLayout returns the fixed 74-column layout used by spreadsheet
// exports: five score blocks plus a trailing extension of the fifth series,
// with single comment columns between blocks.
func DefaultLayout() Layout {
	return Layout{
		Segments: []Segment{
			{Series: "s1", Offset: 6, Width: 17, Start: 1},
			{Series: "s2", Offset: 23, Width: 12, Start: 1},
			{Series: "s3", Offset: 36, Width: 9, Start: 1},
			{Series: "s4", Offset: 46, Width: 9, Start: 1},
			{Series: "s5", Offset: 56, Width: 9, Start: 1},
			{Series: "s5", Offset: 66, Width: 7, Start: 10},
		},
		CommentColumns: map[string]int{
			"S2": 35,
			"S3": 45,
			"S4": 55,
			"S5": 65,
		},
	}
}

// Validate checks the layout against the live rubric's per-series item
// counts. Every item id the layout can generate must resolve in the rubric,
// and every series must have exactly as many rubric items as the layout has
// score columns for it.
func (l Layout) Validate(r *Rubric) error {
	widths := make(map[string]int)
	for _, seg := range l.Segments {
		widths[seg.Series] += seg.Width
		for i := 0; i < seg.Width; i++ {
			id := seg.ItemID(i)
			if _, ok := r.Lookup(id); !ok {
				return fmt.Errorf("%w: layout expects item %q", ErrLayoutMismatch, id)
			}
		}
	}
	for series, width := range widths {
		if n := r.seriesItemCount(series); n != width {
			return fmt.Errorf("%w: series %s has %d items, layout maps %d columns",
				ErrLayoutMismatch, series, n, width)
		}
	}
	return nil
}
