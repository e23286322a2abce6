package session

import (
	"context"
	"sync"
)

// Collection is the insertion-ordered set of session records, deduplicated
// by record id. Merges are strictly additive: an incoming record whose id is
// already present is dropped, never overwritten, so local state always wins
// over late-arriving remote copies.
//
// The collection carries a monotonic revision counter so callers can detect
// staleness across mutations.
type Collection struct {
	mu       sync.RWMutex
	records  []Record
	seen     map[string]struct{}
	revision uint64
}

// NewCollection creates a collection seeded with records, deduplicating in
// input order.
func NewCollection(records ...Record) *Collection {
	c := &Collection{seen: make(map[string]struct{}, len(records))}
	for _, r := range records {
		if _, dup := c.seen[r.ID]; dup {
			continue
		}
		c.seen[r.ID] = struct{}{}
		c.records = append(c.records, r)
	}
	return c
}

// Merge appends records whose ids are not yet present. It returns the number
// of records added and the number dropped as duplicates.
func (c *Collection) Merge(ctx context.Context, records []Record) (added, duplicates int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range records {
		if ctx.Err() != nil {
			break
		}
		if _, dup := c.seen[r.ID]; dup {
			duplicates++
			continue
		}
		c.seen[r.ID] = struct{}{}
		c.records = append(c.records, r)
		added++
	}
	if added > 0 {
		c.revision++
	}
	return added, duplicates
}

// Replace swaps the full record list, preserving the dedup index. This is
// the sanitizer's write path; it always bumps the revision.
func (c *Collection) Replace(records []Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = make([]Record, len(records))
	copy(c.records, records)
	c.seen = make(map[string]struct{}, len(records))
	for _, r := range records {
		c.seen[r.ID] = struct{}{}
	}
	c.revision++
}

// Records returns a copy of the ledger in insertion order.
func (c *Collection) Records() []Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the record with the given id.
func (c *Collection) Get(id string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.seen[id]; !ok {
		return Record{}, false
	}
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Len returns the number of records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Revision returns the current revision counter.
func (c *Collection) Revision() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}
