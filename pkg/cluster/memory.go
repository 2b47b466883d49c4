// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore is an in-memory Store. A single mutex serializes transitions,
// which is all the consistency the Store contract asks for on one node.
type MemoryStore struct {
	mu     sync.RWMutex
	state  State
	logger *zap.Logger
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryStore{state: NewState(), logger: logger}
}

// State implements Store.
func (s *MemoryStore) State(ctx context.Context) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

// Submit implements Store.
func (s *MemoryStore) Submit(ctx context.Context, t Transition) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := t(s.state.Clone())
	if err != nil {
		return State{}, err
	}
	next.Version = s.state.Version + 1
	s.state = next
	s.logger.Debug("committed cluster state", zap.Uint64("version", next.Version))
	return next.Clone(), nil
}
