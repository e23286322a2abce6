// Package cloud models the remote hub workspace that audit sessions are
// pushed to and fetched from.
package cloud

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/seahub/audithub/internal/domain/session"
)

// Default latency range for the simulated remote store.
const (
	defaultMinLatency = 40 * time.Millisecond
	defaultMaxLatency = 120 * time.Millisecond
	defaultRandomSeed = 42
)

// Settings is the hub's connection state, persisted across restarts.
type Settings struct {
	Enabled     bool       `json:"enabled"`
	WorkspaceID string     `json:"workspaceId"`
	LastSynced  *time.Time `json:"lastSynced,omitempty"`
}

// Store is the remote side of a workspace sync. Pushes are idempotent
// per record id; pushing the same record twice is a no-op.
type Store interface {
	// Push uploads one record into the workspace. Returns true when
	// the record was stored, false when the id was already present.
	Push(ctx context.Context, rec session.Record, workspaceID string) (bool, error)

	// Fetch returns every record in the workspace in upload order.
	Fetch(ctx context.Context, workspaceID string) ([]session.Record, error)
}

// MemoryStore implements Store with simulated network latency. It models
// the remote hub well enough for local deployments and tests.
type MemoryStore struct {
	mu         sync.Mutex
	workspaces map[string][]session.Record
	seen       map[string]map[string]struct{}
	minLatency time.Duration
	maxLatency time.Duration
	rng        *rand.Rand
}

// NewMemoryStore creates an empty in-memory workspace store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		workspaces: make(map[string][]session.Record),
		seen:       make(map[string]map[string]struct{}),
		minLatency: defaultMinLatency,
		maxLatency: defaultMaxLatency,
		rng:        rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible testing
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push implements Store.
func (s *MemoryStore) Push(ctx context.Context, rec session.Record, workspaceID string) (bool, error) {
	if workspaceID == "" {
		return false, ErrWorkspaceRequired
	}
	if rec.ID == "" {
		return false, ErrMissingID
	}
	if err := s.wait(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids, ok := s.seen[workspaceID]
	if !ok {
		ids = make(map[string]struct{})
		s.seen[workspaceID] = ids
	}
	if _, dup := ids[rec.ID]; dup {
		return false, nil
	}
	ids[rec.ID] = struct{}{}
	s.workspaces[workspaceID] = append(s.workspaces[workspaceID], rec)
	return true, nil
}

// Fetch implements Store.
func (s *MemoryStore) Fetch(ctx context.Context, workspaceID string) ([]session.Record, error) {
	if workspaceID == "" {
		return nil, ErrWorkspaceRequired
	}
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.workspaces[workspaceID]
	out := make([]session.Record, len(records))
	copy(out, records)
	return out, nil
}

// wait simulates one remote round trip, honoring ctx.
func (s *MemoryStore) wait(ctx context.Context) error {
	s.mu.Lock()
	latency := s.minLatency
	if s.maxLatency > s.minLatency {
		latency += time.Duration(s.rng.Int63n(int64(s.maxLatency - s.minLatency)))
	}
	s.mu.Unlock()

	if latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	case <-time.After(latency):
		return nil
	}
}
