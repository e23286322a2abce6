package pastegen

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/seahub/audithub/pkg/logger"
)

// Run executes the complete paste generation flow.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{}
	start := time.Now()

	logger.Get().Info(ctx, "starting paste generator",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rows", config.NumRows),
		logger.Int("staff", config.NumStaff),
		logger.Int("daySpread", config.DaySpread),
		logger.Bool("dryRun", config.DryRun))

	// Step 1: Generate the paste
	text, err := generatePaste(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("paste generation failed: %w", err)
	}

	// Step 2: Optionally persist a copy
	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, []byte(text), outFilePermission); err != nil {
			return fmt.Errorf("failed to write paste file: %w", err)
		}
		logger.Get().Info(ctx, "wrote paste file", logger.String("file", config.OutputFile))
	}

	// Step 3: Submit to the hub
	client := NewClient(config.BaseURL, config.Timeout)
	summary, err := client.SubmitPaste(ctx, text, config.DryRun)
	if err != nil {
		return fmt.Errorf("paste submission failed: %w", err)
	}
	stats.Imported = summary.Imported
	stats.Skipped = summary.Skipped
	stats.Duplicates = summary.Duplicates

	logger.Get().Info(ctx, "import summary",
		logger.Int("imported", summary.Imported),
		logger.Int("duplicates", summary.Duplicates),
		logger.Int("skipped", summary.Skipped),
		logger.Int("invalidDates", summary.InvalidDates),
		logger.Bool("dryRun", summary.DryRun))

	// Step 4: Verify against the ledger, unless nothing was stored
	if !config.DryRun {
		if err := verify(ctx, client, stats); err != nil {
			return err
		}
	}

	stats.Duration = time.Since(start)
	logger.Get().Info(ctx, "paste generator finished",
		logger.Int("rowsGenerated", stats.RowsGenerated),
		logger.Int("imported", stats.Imported),
		logger.Int("skipped", stats.Skipped),
		logger.String("duration", stats.Duration.String()))
	return nil
}

// verify cross-checks the hub's ledger and dashboard against what was
// submitted.
func verify(ctx context.Context, client *Client, stats *Stats) error {
	count, err := client.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("ledger verification failed: %w", err)
	}
	if count < stats.Imported {
		return fmt.Errorf("ledger holds %d sessions, expected at least %d", count, stats.Imported)
	}

	dashboard, err := client.FetchDashboard(ctx)
	if err != nil {
		return fmt.Errorf("dashboard verification failed: %w", err)
	}
	logger.Get().Info(ctx, "dashboard after import",
		logger.Int("totalAudits", dashboard.TotalAudits),
		logger.Float64("averageTeamScore", dashboard.AverageTeamScore),
		logger.String("topPerformer", dashboard.TopPerformer),
		logger.Int("compliancePct", dashboard.CompliancePct))
	return nil
}
