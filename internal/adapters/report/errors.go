package report

import "errors"

// Sentinel kinds for report generation errors.
var (
	ErrAPIKeyRequired = errors.New("api key is required")
)
