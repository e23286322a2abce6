package cloud

import "time"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithLatencyRange sets the simulated round-trip latency range.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(s *MemoryStore) {
		if minLatency >= 0 && maxLatency >= minLatency {
			s.minLatency = minLatency
			s.maxLatency = maxLatency
		}
	}
}

// WithoutLatency disables the simulated latency entirely. Intended for
// tests that exercise push and fetch semantics only.
func WithoutLatency() Option {
	return func(s *MemoryStore) {
		s.minLatency = 0
		s.maxLatency = 0
	}
}
