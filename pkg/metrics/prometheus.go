// Package metrics provides Prometheus metrics for the audit hub service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the hub service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics - what the bulk importer actually did.
	importBatches   prometheus.Counter
	rowsImported    prometheus.Counter
	rowsSkipped     prometheus.Counter
	rowsInvalidDate prometheus.Counter
	mergeDuplicates prometheus.Counter

	// Sanitization metrics.
	sanitizeRuns     prometheus.Counter
	recordsSanitized prometheus.Counter

	// Ledger state.
	sessionsTotal prometheus.Gauge
	storeRevision prometheus.Gauge

	// Cloud push pipeline.
	pushQueueSize     prometheus.Gauge
	pushQueueCapacity prometheus.Gauge
	workerCount       prometheus.Gauge
	cloudPushes       prometheus.Counter
	cloudPushErrors   prometheus.Counter

	// Report generation.
	reportLatency   prometheus.Histogram
	reportFallbacks prometheus.Counter

	// HTTP performance.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// Process health.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "audithub",
		subsystem:        "hub",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.importBatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_batches_total",
		Help:      "Total number of bulk-import batches processed",
	})

	m.rowsImported = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_rows_total",
		Help:      "Total number of rows turned into session records",
	})

	m.rowsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_rows_skipped_total",
		Help:      "Total number of rows skipped (short rows, missing required fields)",
	})

	m.rowsInvalidDate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_rows_invalid_date_total",
		Help:      "Total number of imported rows carrying an unparsable date",
	})

	m.mergeDuplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "merge_duplicates_total",
		Help:      "Total number of records dropped by dedup-by-id during merges",
	})

	m.sanitizeRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sanitize_runs_total",
		Help:      "Total number of sanitize passes over the ledger",
	})

	m.recordsSanitized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_sanitized_total",
		Help:      "Total number of records rewritten to current standards",
	})

	m.sessionsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_total",
		Help:      "Current number of session records in the ledger",
	})

	m.storeRevision = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_revision",
		Help:      "Monotonic revision counter of the local state",
	})

	m.pushQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "push_queue_size",
		Help:      "Current size of the cloud-push queue (backlog indicator)",
	})

	m.pushQueueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "push_queue_capacity",
		Help:      "Configured capacity of the cloud-push queue",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Current number of cloud-push workers",
	})

	m.cloudPushes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cloud_pushes_total",
		Help:      "Total number of records pushed to the remote session store",
	})

	m.cloudPushErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cloud_push_errors_total",
		Help:      "Total number of failed cloud pushes (best-effort, retried never)",
	})

	m.reportLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_latency_milliseconds",
		Help:      "Histogram of text-generation collaborator latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.reportFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "report_fallbacks_total",
		Help:      "Total number of report requests served with the fixed fallback text",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Histogram of average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level helpers routed through the global manager.

// RecordImportBatch increments the import batch counter.
func RecordImportBatch() {
	globalManager.importBatches.Inc()
}

// RecordRowsImported adds to the imported-row counter.
func RecordRowsImported(n int) {
	globalManager.rowsImported.Add(float64(n))
}

// RecordRowsSkipped adds to the skipped-row counter.
func RecordRowsSkipped(n int) {
	globalManager.rowsSkipped.Add(float64(n))
}

// RecordRowsInvalidDate adds to the invalid-date counter.
func RecordRowsInvalidDate(n int) {
	globalManager.rowsInvalidDate.Add(float64(n))
}

// RecordMergeDuplicates adds to the dedup-drop counter.
func RecordMergeDuplicates(n int) {
	globalManager.mergeDuplicates.Add(float64(n))
}

// RecordSanitizeRun increments the sanitize pass counter.
func RecordSanitizeRun() {
	globalManager.sanitizeRuns.Inc()
}

// RecordRecordsSanitized adds to the rewritten-record counter.
func RecordRecordsSanitized(n int) {
	globalManager.recordsSanitized.Add(float64(n))
}

// UpdateSessionsTotal sets the ledger size gauge.
func UpdateSessionsTotal(n int) {
	globalManager.sessionsTotal.Set(float64(n))
}

// UpdateStoreRevision sets the state revision gauge.
func UpdateStoreRevision(rev uint64) {
	globalManager.storeRevision.Set(float64(rev))
}

// UpdatePushQueueSize sets the push queue size gauge.
func UpdatePushQueueSize(size int) {
	globalManager.pushQueueSize.Set(float64(size))
}

// UpdatePushQueueCapacity sets the push queue capacity gauge.
func UpdatePushQueueCapacity(capacity int) {
	globalManager.pushQueueCapacity.Set(float64(capacity))
}

// UpdateWorkerCount sets the worker count gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordCloudPush increments the successful push counter.
func RecordCloudPush() {
	globalManager.cloudPushes.Inc()
}

// RecordCloudPushError increments the failed push counter.
func RecordCloudPushError() {
	globalManager.cloudPushErrors.Inc()
}

// RecordReportLatency observes a collaborator round-trip in milliseconds.
func RecordReportLatency(latencyMs float64) {
	globalManager.reportLatency.Observe(latencyMs)
}

// RecordReportFallback increments the fallback-text counter.
func RecordReportFallback() {
	globalManager.reportFallbacks.Inc()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error response by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes an average GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
