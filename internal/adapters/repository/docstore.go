package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"github.com/seahub/audithub/pkg/logger"
)

// DocStore is a badger-backed Store. Each document is one JSON value
// under a well-known key, written whole on every change.
type DocStore struct {
	db         *badger.DB
	path       string
	inMemory   bool
	syncWrites bool
	closed     atomic.Bool
}

// NewDocStore opens the underlying database and returns a ready store.
func NewDocStore(opts ...Option) (*DocStore, error) {
	s := &DocStore{
		path:       "data",
		syncWrites: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	var bopts badger.Options
	if s.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(s.path, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory %s: %w", s.path, err)
		}
		bopts = badger.DefaultOptions(s.path)
	}
	bopts = bopts.WithSyncWrites(s.syncWrites).WithLogger(badgerLogger{})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	s.db = db
	return s, nil
}

// Get implements Store.
func (s *DocStore) Get(ctx context.Context, key string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return nil
}

// Put implements Store.
func (s *DocStore) Put(ctx context.Context, key string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (s *DocStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close implements Store. Safe to call more than once.
func (s *DocStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// badgerLogger routes badger's internal chatter through the hub logger
// at debug level so it stays out of normal output.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any) {
	logger.Get().Error(context.Background(), fmt.Sprintf(format, args...))
}

func (badgerLogger) Warningf(format string, args ...any) {
	logger.Get().Warn(context.Background(), fmt.Sprintf(format, args...))
}

func (badgerLogger) Infof(format string, args ...any) {
	logger.Get().Debug(context.Background(), fmt.Sprintf(format, args...))
}

func (badgerLogger) Debugf(format string, args ...any) {
	logger.Get().Debug(context.Background(), fmt.Sprintf(format, args...))
}
