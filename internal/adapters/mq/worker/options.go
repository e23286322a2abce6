package worker

import (
	"github.com/seahub/audithub/pkg/logger"
)

// Option applies a configuration option to the PushWorker.
type Option func(*PushWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *PushWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(logger logger.Logger) Option {
	return func(w *PushWorker) {
		if logger != nil {
			w.logger = logger
		}
	}
}
