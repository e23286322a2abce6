// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is the directory for the embedded document store.
	DataDir string `koanf:"data_dir"`

	// Workspace is the default cloud workspace id for imports and pushes.
	Workspace string `koanf:"workspace"`

	// GenAIAPIKey enables Gemini-backed report generation when set.
	GenAIAPIKey string `koanf:"genai_api_key"`

	// GenAIModel overrides the default Gemini model.
	GenAIModel string `koanf:"genai_model"`

	// ReportTimeoutMS bounds each report generation call.
	ReportTimeoutMS int `koanf:"report_timeout_ms"`

	// PushQueueSize bounds the in-memory cloud push queue.
	PushQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of cloud push workers.
	WorkerCount int `koanf:"worker_count"`

	// GapTopN caps how many skill gaps the dashboard reports.
	GapTopN int `koanf:"gap_top_n"`

	// CloudLatencyMinMS and CloudLatencyMaxMS simulate remote hub latency bounds.
	CloudLatencyMinMS int `koanf:"cloud_latency_min_ms"`
	CloudLatencyMaxMS int `koanf:"cloud_latency_max_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8080",
		DataDir:           "data",
		Workspace:         "local",
		GenAIModel:        "gemini-3-flash-preview",
		ReportTimeoutMS:   30_000,
		PushQueueSize:     10_000,
		WorkerCount:       runtime.NumCPU() * 2,
		GapTopN:           5,
		CloudLatencyMinMS: 40,
		CloudLatencyMaxMS: 120,
	}
}
