package pastegen

import "time"

// Config holds configuration for the paste generator.
type Config struct {
	BaseURL    string        // Base URL of the hub service
	NumRows    int           // Number of audit rows to generate
	NumStaff   int           // Size of the staff pool to draw names from
	DaySpread  int           // Audit dates are spread over the past N days
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output file for the generated paste
	LogFile    string        // Log file for generator output
	DryRun     bool          // Submit with dry_run=1 so nothing is stored
	Verbose    bool          // Enable verbose logging
}

// ImportSummary mirrors the hub's POST /import response.
type ImportSummary struct {
	Imported     int    `json:"imported"`
	Duplicates   int    `json:"duplicates"`
	Skipped      int    `json:"skipped"`
	InvalidDates int    `json:"invalidDates"`
	DryRun       bool   `json:"dryRun"`
	Revision     uint64 `json:"revision"`
}

// Dashboard mirrors the subset of GET /dashboard used for verification.
type Dashboard struct {
	TotalAudits      int     `json:"totalAudits"`
	AverageTeamScore float64 `json:"averageTeamScore"`
	TopPerformer     string  `json:"topPerformer"`
	CompliancePct    int     `json:"compliancePct"`
}

// Stats tracks what the generator produced and what the hub accepted.
type Stats struct {
	RowsGenerated int
	Imported      int
	Skipped       int
	Duplicates    int
	Duration      time.Duration
}
