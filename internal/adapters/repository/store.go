// Package repository persists hub documents in an embedded key-value store.
package repository

import "context"

// Well-known document keys. Each holds one JSON document.
const (
	KeyRubric   = "audithub/rubric"
	KeySessions = "audithub/sessions"
	KeyCloud    = "audithub/cloud"
)

// Store provides read/write access to persisted documents.
type Store interface {
	// Get unmarshals the document stored under key into out.
	// Returns ErrNotFound if the key has never been written.
	Get(ctx context.Context, key string, out any) error

	// Put marshals doc and stores it under key, replacing any
	// previous document.
	Put(ctx context.Context, key string, doc any) error

	// Delete removes the document stored under key. Deleting a
	// missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close flushes and releases the underlying database.
	Close() error
}
