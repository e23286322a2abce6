package pastegen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/seahub/audithub/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
	outFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "paste_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the paste generator tool.
func ShowHelp() {
	os.Stdout.WriteString(`AuditHub Paste Generator
========================

Generates synthetic 74-column audit spreadsheet pastes and feeds them
through a running hub's bulk import endpoint.

Usage:
  go run cmd/gen-paste/main.go [options]

Options:
  -url string
        Base URL of the hub (default "http://localhost:8080")
  -rows int
        Number of audit rows to generate (default 200)
  -staff int
        Size of the staff pool to draw names from (default 8)
  -days int
        Spread audit dates over the past N days (default 30)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Also write the generated paste to this file
  -log string
        Log file for generator output (default: paste_log_TIMESTAMP.log)
  -dry-run
        Submit with dry_run=1 so nothing is stored
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate and import 200 rows into a local hub
  go run cmd/gen-paste/main.go

  # Generate a large batch and keep a copy of the paste
  go run cmd/gen-paste/main.go -rows 5000 -output paste.tsv

  # Validate a paste without storing anything
  go run cmd/gen-paste/main.go -rows 100 -dry-run
`)
}
