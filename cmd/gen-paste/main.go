package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/seahub/audithub/internal/pastegen"
)

// Default configuration constants.
const (
	defaultNumRows     = 200
	defaultNumStaff    = 8
	defaultDaySpread   = 30
	defaultTimeout     = 30 * time.Second
	defaultToolTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "Base URL of the hub")
		numRows    = flag.Int("rows", defaultNumRows, "Number of audit rows to generate")
		numStaff   = flag.Int("staff", defaultNumStaff, "Size of the staff pool to draw names from")
		daySpread  = flag.Int("days", defaultDaySpread, "Spread audit dates over the past N days")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Also write the generated paste to this file")
		logFile    = flag.String("log", "", "Log file for generator output (default: paste_log_TIMESTAMP.log)")
		dryRun     = flag.Bool("dry-run", false, "Submit with dry_run=1 so nothing is stored")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		pastegen.ShowHelp()
		return
	}

	if err := pastegen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultToolTimeout)
	defer cancel()

	config := &pastegen.Config{
		BaseURL:    *baseURL,
		NumRows:    *numRows,
		NumStaff:   *numStaff,
		DaySpread:  *daySpread,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		DryRun:     *dryRun,
		Verbose:    *verbose,
	}

	if err := pastegen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Paste generation failed: " + err.Error() + "\n")
		return
	}
}
