// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	cloudstore "github.com/seahub/audithub/internal/adapters/cloud"
	pushqueue "github.com/seahub/audithub/internal/adapters/mq/queue"
	workerpool "github.com/seahub/audithub/internal/adapters/mq/worker"
	repository "github.com/seahub/audithub/internal/adapters/repository"
	"github.com/seahub/audithub/internal/adapters/report"
	"github.com/seahub/audithub/internal/domain/delimited"
	"github.com/seahub/audithub/internal/domain/importer"
	"github.com/seahub/audithub/internal/domain/rubric"
	"github.com/seahub/audithub/internal/domain/sanitize"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/internal/domain/stats"
	"github.com/seahub/audithub/pkg/logger"
	"github.com/seahub/audithub/pkg/metrics"
)

// Service owns the score ledger and coordinates every adapter around it.
// All mutations go through this type; reads come straight off the
// collection.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	cloud     cloudstore.Store
	queue     pushqueue.Queue
	pool      *workerpool.Pool
	reporter  report.Generator
	importer  *importer.Importer
	checklist *rubric.Rubric
	layout    rubric.Layout
	ledger    *session.Collection
	settings  cloudstore.Settings

	// Configuration
	dataDir         string
	inMemory        bool
	workspace       string
	workerCount     int
	queueSize       int
	gapTopN         int
	cloudMinLatency time.Duration
	cloudMaxLatency time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataDir sets the directory for the embedded document store.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dataDir = dir
		}
	}
}

// WithInMemoryStore keeps all documents in memory. Intended for tests.
func WithInMemoryStore() Option {
	return func(s *Service) {
		s.inMemory = true
	}
}

// WithStore injects a pre-opened document store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCloudStore injects the remote workspace store.
func WithCloudStore(store cloudstore.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.cloud = store
		}
	}
}

// WithReporter injects the narrative report generator.
func WithReporter(g report.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.reporter = g
		}
	}
}

// WithWorkspace sets the default cloud workspace id.
func WithWorkspace(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.workspace = id
		}
	}
}

// WithWorkerCount sets the number of push worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the push queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithGapTopN caps how many skill gaps the dashboard reports.
func WithGapTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.gapTopN = n
		}
	}
}

// WithCloudLatencyRange sets the simulated remote latency bounds.
func WithCloudLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(s *Service) {
		if minLatency >= 0 && maxLatency >= minLatency {
			s.cloudMinLatency = minLatency
			s.cloudMaxLatency = maxLatency
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataDir:         "data",
		workspace:       "local",
		workerCount:     runtime.NumCPU() * 2,
		queueSize:       10000,
		gapTopN:         5,
		cloudMinLatency: 40 * time.Millisecond,
		cloudMaxLatency: 120 * time.Millisecond,
		importer:        importer.New(),
		layout:          rubric.DefaultLayout(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens the document store, loads persisted state, and starts the
// push pipeline. A rubric that no longer matches the import layout fails
// the start rather than corrupting later imports.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting audit hub service...")

	if s.store == nil {
		storeOpts := []repository.Option{repository.WithPath(s.dataDir)}
		if s.inMemory {
			storeOpts = append(storeOpts, repository.WithInMemory())
		}
		store, err := repository.NewDocStore(storeOpts...)
		if err != nil {
			return err
		}
		s.store = store
	}

	if err := s.loadState(ctx); err != nil {
		return err
	}

	if s.cloud == nil {
		s.cloud = cloudstore.NewMemoryStore(
			cloudstore.WithLatencyRange(s.cloudMinLatency, s.cloudMaxLatency),
		)
	}
	if s.reporter == nil {
		s.reporter = report.Static{}
	}

	s.queue = pushqueue.NewInMemoryQueue(
		pushqueue.WithCapacity(s.queueSize),
	)
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s.cloud)
	s.pool.Start(ctx)

	metrics.UpdateSessionsTotal(s.ledger.Len())
	metrics.UpdateStoreRevision(s.ledger.Revision())

	s.started = true
	s.logger.Info(ctx, "audit hub service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("sessions", s.ledger.Len()),
	)

	return nil
}

// loadState hydrates the rubric, ledger, and cloud settings from the
// document store, falling back to stock defaults on first boot.
func (s *Service) loadState(ctx context.Context) error {
	var items []rubric.Item
	err := s.store.Get(ctx, repository.KeyRubric, &items)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		items = rubric.DefaultItems()
	case err != nil:
		return err
	}
	checklist, err := rubric.New(items)
	if err != nil {
		return err
	}
	if err := s.layout.Validate(checklist); err != nil {
		return err
	}
	s.checklist = checklist

	var records []session.Record
	err = s.store.Get(ctx, repository.KeySessions, &records)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	s.ledger = session.NewCollection(records...)

	var settings cloudstore.Settings
	err = s.store.Get(ctx, repository.KeyCloud, &settings)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	s.settings = settings

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(ctx, "stopping audit hub service...")

	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}
	if s.store != nil {
		_ = s.store.Close()
	}

	s.started = false
	s.logger.Info(ctx, "audit hub service stopped")
}

// ImportSummary reports the outcome of one paste import.
type ImportSummary struct {
	Imported     int    `json:"imported"`
	Duplicates   int    `json:"duplicates"`
	Skipped      int    `json:"skipped"`
	InvalidDates int    `json:"invalidDates"`
	DryRun       bool   `json:"dryRun,omitempty"`
	Revision     uint64 `json:"revision"`
}

// ImportText parses pasted spreadsheet text and merges the resulting
// records into the ledger. With dryRun set, the paste is fully parsed
// and validated but nothing is stored.
func (s *Service) ImportText(ctx context.Context, text string, dryRun bool) (ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ImportSummary{}, ErrNotStarted
	}

	rows := delimited.Parse(text)
	res, err := s.importer.Import(ctx, rows, s.checklist, s.workspace)
	if err != nil {
		return ImportSummary{}, err
	}

	metrics.RecordImportBatch()
	metrics.RecordRowsSkipped(res.Skipped)
	metrics.RecordRowsInvalidDate(res.InvalidDates)

	if dryRun {
		return ImportSummary{
			Imported:     len(res.Records),
			Skipped:      res.Skipped,
			InvalidDates: res.InvalidDates,
			DryRun:       true,
			Revision:     s.ledger.Revision(),
		}, nil
	}

	added, duplicates := s.ledger.Merge(ctx, res.Records)
	metrics.RecordRowsImported(added)
	metrics.RecordMergeDuplicates(duplicates)

	if err := s.persistSessions(ctx); err != nil {
		return ImportSummary{}, err
	}
	s.enqueuePushes(ctx, res.Records)

	s.logger.Info(ctx, "import batch merged",
		logger.Int("imported", added),
		logger.Int("skipped", res.Skipped),
		logger.Int("invalidDates", res.InvalidDates),
	)

	return ImportSummary{
		Imported:     added,
		Duplicates:   duplicates,
		Skipped:      res.Skipped,
		InvalidDates: res.InvalidDates,
		Revision:     s.ledger.Revision(),
	}, nil
}

// SubmitSession stores one manually scored session. Scores are clamped to
// the rubric maxima before the record is merged, same as imported rows.
func (s *Service) SubmitSession(ctx context.Context, rec session.Record) (session.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return session.Record{}, ErrNotStarted
	}
	if rec.StaffName == "" {
		return session.Record{}, ErrStaffNameRequired
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.WorkspaceID == "" {
		rec.WorkspaceID = s.workspace
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	if rec.MaxPossibleScore == 0 {
		rec.MaxPossibleScore = session.MaxBaseScore
	}
	if len(rec.Scores) > 0 {
		rec.Scores = rec.CloneScores()
		for id, score := range rec.Scores {
			if score < 0 {
				rec.Scores[id] = 0
			} else if max, ok := s.checklist.Lookup(id); ok && score > max {
				rec.Scores[id] = max
			}
		}
	}
	rec.TotalScore = rec.SumScores()

	added, _ := s.ledger.Merge(ctx, []session.Record{rec})
	if added == 0 {
		return session.Record{}, ErrDuplicateSession
	}

	if err := s.persistSessions(ctx); err != nil {
		return session.Record{}, err
	}
	s.enqueuePushes(ctx, []session.Record{rec})

	return rec, nil
}

// Sessions returns the full ledger in insertion order.
func (s *Service) Sessions(ctx context.Context) []session.Record {
	return s.ledger.Records()
}

// Session returns one record by id.
func (s *Service) Session(ctx context.Context, id string) (session.Record, error) {
	rec, ok := s.ledger.Get(id)
	if !ok {
		return session.Record{}, ErrSessionNotFound
	}
	return rec, nil
}

// SanitizeSummary reports the outcome of one sanitizer pass.
type SanitizeSummary struct {
	Sanitized int    `json:"sanitized"`
	Revision  uint64 `json:"revision"`
}

// Sanitize clamps every stored score to its rubric maximum. Running it
// twice in a row changes nothing the second time.
func (s *Service) Sanitize(ctx context.Context) (SanitizeSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return SanitizeSummary{}, ErrNotStarted
	}

	metrics.RecordSanitizeRun()

	cleaned, changed := sanitize.Apply(s.ledger.Records(), s.checklist)
	if changed > 0 {
		s.ledger.Replace(cleaned)
		metrics.RecordRecordsSanitized(changed)
		if err := s.persistSessions(ctx); err != nil {
			return SanitizeSummary{}, err
		}
		s.logger.Info(ctx, "ledger sanitized", logger.Int("records", changed))
	}

	return SanitizeSummary{Sanitized: changed, Revision: s.ledger.Revision()}, nil
}

// Dashboard computes the trainer dashboard from the current ledger.
func (s *Service) Dashboard(ctx context.Context) stats.Dashboard {
	s.mu.RLock()
	checklist := s.checklist
	topN := s.gapTopN
	s.mu.RUnlock()

	return stats.Build(s.ledger.Records(), checklist, topN)
}

// Feedback generates coaching feedback for one session and stores it on
// the record. The generator runs outside the service lock so a slow
// remote call never stalls imports or submissions.
func (s *Service) Feedback(ctx context.Context, id string) (session.Record, error) {
	s.mu.RLock()
	if !s.started {
		s.mu.RUnlock()
		return session.Record{}, ErrNotStarted
	}
	reporter := s.reporter
	checklist := s.checklist
	s.mu.RUnlock()

	rec, ok := s.ledger.Get(id)
	if !ok {
		return session.Record{}, ErrSessionNotFound
	}

	text, err := reporter.Coaching(ctx, rec, checklist)
	if err != nil {
		return session.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return session.Record{}, ErrNotStarted
	}

	records := s.ledger.Records()
	for i := range records {
		if records[i].ID == id {
			records[i].AIFeedback = text
			rec = records[i]
			break
		}
	}
	s.ledger.Replace(records)

	if err := s.persistSessions(ctx); err != nil {
		return session.Record{}, err
	}
	return rec, nil
}

// TeamReport generates the training-needs analysis over the whole ledger.
func (s *Service) TeamReport(ctx context.Context) (string, error) {
	s.mu.RLock()
	if !s.started {
		s.mu.RUnlock()
		return "", ErrNotStarted
	}
	reporter := s.reporter
	checklist := s.checklist
	topN := s.gapTopN
	s.mu.RUnlock()

	d := stats.Build(s.ledger.Records(), checklist, topN)
	return reporter.TeamAnalysis(ctx, d)
}

// Rubric returns the live checklist items in order.
func (s *Service) Rubric(ctx context.Context) []rubric.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checklist.Items()
}

// ReplaceRubric swaps the live checklist. The replacement must still
// satisfy the import layout, otherwise the current rubric stays.
func (s *Service) ReplaceRubric(ctx context.Context, items []rubric.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	checklist, err := rubric.New(items)
	if err != nil {
		return err
	}
	if err := s.layout.Validate(checklist); err != nil {
		return err
	}

	s.checklist = checklist
	if err := s.store.Put(ctx, repository.KeyRubric, items); err != nil {
		return err
	}

	s.logger.Info(ctx, "rubric replaced", logger.Int("items", len(items)))
	return nil
}

// CloudSettings returns the current cloud connection state.
func (s *Service) CloudSettings(ctx context.Context) cloudstore.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetCloudSettings updates and persists the cloud connection state.
func (s *Service) SetCloudSettings(ctx context.Context, settings cloudstore.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if settings.Enabled && settings.WorkspaceID == "" {
		return cloudstore.ErrWorkspaceRequired
	}

	// LastSynced is owned by the sync path, not the settings form.
	settings.LastSynced = s.settings.LastSynced
	s.settings = settings

	return s.store.Put(ctx, repository.KeyCloud, s.settings)
}

// SyncFetch pulls the cloud workspace and merges it into the ledger.
// Local records always win on id collisions.
func (s *Service) SyncFetch(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return 0, ErrNotStarted
	}
	if !s.settings.Enabled {
		return 0, ErrCloudDisabled
	}

	records, err := s.cloud.Fetch(ctx, s.settings.WorkspaceID)
	if err != nil {
		return 0, err
	}

	added, _ := s.ledger.Merge(ctx, records)
	now := time.Now()
	s.settings.LastSynced = &now

	if err := s.persistSessions(ctx); err != nil {
		return 0, err
	}
	if err := s.store.Put(ctx, repository.KeyCloud, s.settings); err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "cloud fetch merged",
		logger.String("workspace", s.settings.WorkspaceID),
		logger.Int("added", added),
	)
	return added, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"workspace":   s.workspace,
	}

	if s.started {
		ctx := context.Background()
		stats["sessions"] = s.ledger.Len()
		stats["revision"] = s.ledger.Revision()
		stats["queueLength"] = s.queue.Len(ctx)
		stats["cloudEnabled"] = s.settings.Enabled

		metrics.UpdateSessionsTotal(s.ledger.Len())
		metrics.UpdateStoreRevision(s.ledger.Revision())
	}

	return stats
}

// persistSessions snapshots the whole ledger into the document store.
// Callers must hold s.mu.
func (s *Service) persistSessions(ctx context.Context) error {
	if err := s.store.Put(ctx, repository.KeySessions, s.ledger.Records()); err != nil {
		return err
	}
	metrics.UpdateSessionsTotal(s.ledger.Len())
	metrics.UpdateStoreRevision(s.ledger.Revision())
	return nil
}

// enqueuePushes queues cloud pushes for records that made it into the
// ledger. A full queue is logged and skipped; the next sync reconciles.
func (s *Service) enqueuePushes(ctx context.Context, records []session.Record) {
	if !s.settings.Enabled {
		return
	}
	for _, rec := range records {
		if _, ok := s.ledger.Get(rec.ID); !ok {
			continue
		}
		if !s.queue.Enqueue(ctx, pushqueue.Job{Record: rec, WorkspaceID: s.settings.WorkspaceID}) {
			s.logger.Warn(ctx, "push queue full, dropping push",
				logger.String("recordID", rec.ID),
			)
		}
	}
}
