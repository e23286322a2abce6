// Package worker defines worker contracts for asynchronous cloud pushes.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/seahub/audithub/internal/adapters/mq/queue"
	"github.com/seahub/audithub/internal/domain/session"
	"github.com/seahub/audithub/pkg/logger"
	"github.com/seahub/audithub/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Pusher uploads one record into a cloud workspace.
type Pusher interface {
	Push(ctx context.Context, rec session.Record, workspaceID string) (bool, error)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker drains jobs off the queue and pushes them to the cloud store.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// PushWorker implements Worker.
type PushWorker struct {
	queue  Queue
	pusher Pusher
	name   string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewPushWorker creates a new worker with configuration options.
func NewPushWorker(q Queue, pusher Pusher, opts ...Option) *PushWorker {
	w := &PushWorker{
		queue:    q,
		pusher:   pusher,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *PushWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case j, ok := <-jobChan:
			if !ok {
				return
			}
			if err := w.processJob(ctx, j); err != nil {
				w.logger.Error(ctx, "error pushing record", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *PushWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob pushes a single record.
func (w *PushWorker) processJob(ctx context.Context, j queue.Job) error {
	stored, err := w.pusher.Push(ctx, j.Record, j.WorkspaceID)
	if err != nil {
		metrics.RecordCloudPushError()
		w.logger.Error(ctx, "cloud push failed",
			logger.String("recordID", j.Record.ID),
			logger.String("workspaceID", j.WorkspaceID),
			logger.Error(err),
		)
		return fmt.Errorf("push record %s: %w", j.Record.ID, err)
	}

	metrics.RecordCloudPush()
	if !stored {
		w.logger.Debug(ctx, "record already present in workspace",
			logger.String("recordID", j.Record.ID),
		)
	}
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers []*PushWorker
	queue   Queue
	pusher  Pusher

	shutdown chan struct{}

	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, q Queue, pusher Pusher) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*PushWorker, workerCount),
		queue:    q,
		pusher:   pusher,
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewPushWorker(
			q,
			pusher,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	// Close the queue first so workers drain the backlog and exit.
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	metrics.UpdateWorkerCount(0)
	return nil
}
