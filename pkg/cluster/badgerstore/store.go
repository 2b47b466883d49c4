// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

// Package badgerstore provides a cluster.Store that survives restarts by
// writing every committed snapshot to a badger database.
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/quillstore/quill/pkg/cluster"
)

var stateKey = []byte("cluster/state")

// Store is a durable cluster.Store. The latest committed snapshot is kept
// in memory; badger holds the authoritative copy that is reloaded on open.
type Store struct {
	mu     sync.RWMutex
	state  cluster.State
	db     *badger.DB
	logger *zap.Logger
}

var (
	_ cluster.Store = (*Store)(nil)
	_ io.Closer     = (*Store)(nil)
)

// NewStore opens (or creates) the badger database at opts.Directory and
// loads the last committed snapshot from it.
func NewStore(opts *Options, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	badgerOpts := badger.DefaultOptions(opts.Directory).
		WithSyncWrites(opts.SyncWrites).
		WithLogger(nil)
	if opts.Ephemeral {
		badgerOpts = badgerOpts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata store: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(stateKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s.state)
		})
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		s.state = cluster.NewState()
		return nil
	case err != nil:
		return fmt.Errorf("failed to load cluster state: %w", err)
	}
	s.logger.Info("loaded cluster state", zap.Uint64("version", s.state.Version))
	return nil
}

// State implements cluster.Store.
func (s *Store) State(ctx context.Context) (cluster.State, error) {
	if err := ctx.Err(); err != nil {
		return cluster.State{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

// Submit implements cluster.Store. The snapshot is persisted before it
// becomes visible, so readers never observe a state that could be lost.
func (s *Store) Submit(ctx context.Context, t cluster.Transition) (cluster.State, error) {
	if err := ctx.Err(); err != nil {
		return cluster.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := t(s.state.Clone())
	if err != nil {
		return cluster.State{}, err
	}
	next.Version = s.state.Version + 1

	buf, err := json.Marshal(next)
	if err != nil {
		return cluster.State{}, fmt.Errorf("failed to encode cluster state: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stateKey, buf)
	})
	if err != nil {
		return cluster.State{}, fmt.Errorf("failed to persist cluster state: %w", err)
	}

	s.state = next
	s.logger.Debug("committed cluster state", zap.Uint64("version", next.Version))
	return next.Clone(), nil
}

// Close implements io.Closer.
func (s *Store) Close() error {
	return s.db.Close()
}
