package repository

// Option applies a configuration option to the DocStore.
type Option func(*DocStore)

// WithPath sets the directory for the on-disk database files.
func WithPath(path string) Option {
	return func(s *DocStore) {
		if path != "" {
			s.path = path
		}
	}
}

// WithInMemory switches the store to in-memory mode. Nothing touches
// disk and all documents are lost on Close. Intended for tests.
func WithInMemory() Option {
	return func(s *DocStore) {
		s.inMemory = true
	}
}

// WithSyncWrites makes every write wait for the value log to sync.
func WithSyncWrites(sync bool) Option {
	return func(s *DocStore) {
		s.syncWrites = sync
	}
}
