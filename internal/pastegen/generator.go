package pastegen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	tierDivisor        = 6
	pasteColumns       = 74
)

// Performance tiers steering how much of each item's maximum is earned.
const (
	caseStrongPerformer  = 0
	caseSolidPerformer   = 1
	caseAveragePerformer = 2
	caseMixedPerformer   = 3
	caseWeakPerformer    = 4
	caseSkipHeavy        = 5
)

// Earned-fraction ranges per tier.
const (
	strongMin  = 0.9
	strongSpan = 0.1
	solidMin   = 0.75
	solidSpan  = 0.15
	avgMin     = 0.5
	avgSpan    = 0.25
	mixedMin   = 0.3
	mixedSpan  = 0.5
	weakMin    = 0.1
	weakSpan   = 0.3
)

var staffPool = []string{
	"Alex", "Kim", "Jordan", "Priya", "Wei", "Sofia", "Marcus", "Aisha",
	"Liam", "Noor", "Diego", "Hana", "Omar", "Mei", "Tariq", "Elena",
}

var branchPool = []string{
	"Hub Central", "Hub East", "Hub West", "Mall Flagship", "Airport Kiosk",
}

var supervisorPool = []string{
	"R. Tan", "M. Osei", "J. Park", "L. Fernandez",
}

var commentPool = []string{
	"Solid demo flow", "Needs sharper close", "Great energy today",
	"Missed the comparison step", "Customer engaged throughout", "",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func pick(pool []string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	return pool[n.Int64()]
}

// generatePaste builds a tab-delimited paste in the fixed 74-column layout:
// one header row plus config.NumRows data rows.
func generatePaste(ctx context.Context, config *Config, stats *Stats) (string, error) {
	logger.Get().Info(ctx, "generating paste rows", logger.Int("numRows", config.NumRows))

	checklist, err := rubric.New(rubric.DefaultItems())
	if err != nil {
		return "", fmt.Errorf("failed to build rubric: %w", err)
	}
	layout := rubric.DefaultLayout()

	staff := staffPool
	if config.NumStaff > 0 && config.NumStaff < len(staffPool) {
		staff = staffPool[:config.NumStaff]
	}

	var sb strings.Builder
	sb.WriteString(headerRow(layout))
	sb.WriteByte('\n')

	for i := 0; i < config.NumRows; i++ {
		if ctx.Err() != nil {
			return "", fmt.Errorf("context cancelled during paste generation: %w", ctx.Err())
		}
		sb.WriteString(generateRow(i, staff[i%len(staff)], checklist, layout, config.DaySpread))
		sb.WriteByte('\n')
	}

	stats.RowsGenerated = config.NumRows
	logger.Get().Info(ctx, "generated paste successfully", logger.Int("rows", config.NumRows))
	return sb.String(), nil
}

// headerRow emits a label row. The importer always discards the first row
// of a paste as a header.
func headerRow(layout rubric.Layout) string {
	cols := make([]string, pasteColumns)
	cols[0] = "No"
	cols[rubric.ColAuditReference] = "Audit Ref"
	cols[rubric.ColStaffName] = "Staff Name"
	cols[rubric.ColStoreBranch] = "Branch"
	cols[rubric.ColDate] = "Date"
	cols[rubric.ColSupervisor] = "Supervisor"
	cols[rubric.ColOverallComment] = "Overall Comment"
	for _, seg := range layout.Segments {
		for i := 0; i < seg.Width; i++ {
			cols[seg.Offset+i] = seg.ItemID(i)
		}
	}
	for series, col := range layout.CommentColumns {
		cols[col] = series + " Comment"
	}
	return strings.Join(cols, "\t")
}

// generateRow builds one 74-column data row for the given staff member.
func generateRow(index int, staffName string, checklist *rubric.Rubric, layout rubric.Layout, daySpread int) string {
	cols := make([]string, pasteColumns)

	cols[0] = strconv.Itoa(index + 1)
	cols[rubric.ColAuditReference] = fmt.Sprintf("AUD-%04d", index+1)
	cols[rubric.ColStaffName] = staffName
	cols[rubric.ColStoreBranch] = pick(branchPool)
	cols[rubric.ColDate] = auditDate(daySpread)
	cols[rubric.ColSupervisor] = pick(supervisorPool)
	cols[rubric.ColOverallComment] = pick(commentPool)

	fraction, skipChance := tierProfile()
	for _, seg := range layout.Segments {
		for i := 0; i < seg.Width; i++ {
			col := seg.Offset + i
			if getRandomFloat() < skipChance {
				continue // blank cell, the importer treats it as unscored
			}
			max, ok := checklist.Lookup(seg.ItemID(i))
			if !ok {
				continue
			}
			earned := max * (fraction + getRandomFloat()*0.05)
			if earned > max {
				earned = max
			}
			cols[col] = strconv.FormatFloat(roundHalf(earned), 'f', -1, 64)
		}
	}
	for _, col := range layout.CommentColumns {
		cols[col] = pick(commentPool)
	}
	return strings.Join(cols, "\t")
}

// tierProfile picks a performance tier and returns the earned fraction
// plus the chance that any given cell is left blank.
func tierProfile() (fraction, skipChance float64) {
	n, _ := rand.Int(rand.Reader, big.NewInt(tierDivisor))
	switch n.Int64() {
	case caseStrongPerformer:
		return strongMin + getRandomFloat()*strongSpan, 0.02
	case caseSolidPerformer:
		return solidMin + getRandomFloat()*solidSpan, 0.05
	case caseAveragePerformer:
		return avgMin + getRandomFloat()*avgSpan, 0.1
	case caseMixedPerformer:
		return mixedMin + getRandomFloat()*mixedSpan, 0.15
	case caseWeakPerformer:
		return weakMin + getRandomFloat()*weakSpan, 0.25
	case caseSkipHeavy:
		return avgMin + getRandomFloat()*avgSpan, 0.4
	default:
		return avgMin, 0.1
	}
}

// roundHalf rounds to the nearest 0.5 so scores look hand-entered.
func roundHalf(f float64) float64 {
	return float64(int(f*2+0.5)) / 2
}

// auditDate formats a date up to daySpread days in the past in the slash
// form spreadsheets commonly export.
func auditDate(daySpread int) string {
	if daySpread < 1 {
		daySpread = 1
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(daySpread)))
	return time.Now().AddDate(0, 0, -int(n.Int64())).Format("02/01/2006")
}
