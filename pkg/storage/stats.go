// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

// Package storage defines the read-side interface to the engine that
// tracks per-index statistics. The engine itself lives elsewhere; rollover
// only ever consumes point-in-time snapshots from it.
package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// IndexStats is a point-in-time snapshot of one index. The numbers are
// aggregated across shards without locking, so they are best-effort, not
// strictly consistent.
type IndexStats struct {
	// Age is the time elapsed since the index was created.
	Age time.Duration
	// Docs is the document count across primary shards.
	Docs int64
	// SizeBytes is the primary-shard store size.
	SizeBytes int64
}

// Provider exposes index statistics to callers.
type Provider interface {
	IndexStats(ctx context.Context, index string) (IndexStats, error)
}

// Registry is an in-memory Provider fed by the ingest path. It also serves
// as the stats stub in tests.
type Registry struct {
	mu      sync.RWMutex
	docs    map[string]int64
	sizes   map[string]int64
	created map[string]time.Time

	// timeNow is overridable in tests.
	timeNow func() time.Time
}

var _ Provider = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		docs:    map[string]int64{},
		sizes:   map[string]int64{},
		created: map[string]time.Time{},
		timeNow: time.Now,
	}
}

// TrackIndex records the creation time used to derive the index's age.
func (r *Registry) TrackIndex(index string, created time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[index] = created
}

// RecordWrite accumulates document and size counters for an index.
func (r *Registry) RecordWrite(index string, docs, sizeBytes int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[index] += docs
	r.sizes[index] += sizeBytes
}

// IndexStats implements Provider.
func (r *Registry) IndexStats(ctx context.Context, index string) (IndexStats, error) {
	if err := ctx.Err(); err != nil {
		return IndexStats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	created, ok := r.created[index]
	if !ok {
		return IndexStats{}, fmt.Errorf("no statistics for index %q", index)
	}
	return IndexStats{
		Age:       r.timeNow().Sub(created),
		Docs:      r.docs[index],
		SizeBytes: r.sizes[index],
	}, nil
}
