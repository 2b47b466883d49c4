// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSubmit(t *testing.T) {
	store := NewMemoryStore(nil)

	committed, err := store.Submit(context.Background(), func(state State) (State, error) {
		return state, state.CreateIndex(IndexMetadata{Name: "logs-1"})
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), committed.Version)

	state, err := store.State(context.Background())
	require.NoError(t, err)
	_, ok := state.Index("logs-1")
	assert.True(t, ok)
}

func TestMemoryStoreRejectedTransition(t *testing.T) {
	store := NewMemoryStore(nil)
	boom := errors.New("boom")

	_, err := store.Submit(context.Background(), func(state State) (State, error) {
		// Mutate before failing: nothing of it may become visible.
		if err := state.CreateIndex(IndexMetadata{Name: "logs-1"}); err != nil {
			return State{}, err
		}
		return State{}, boom
	})
	assert.ErrorIs(t, err, boom)

	state, err := store.State(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Indices)
	assert.Equal(t, uint64(0), state.Version)
}

func TestMemoryStoreSnapshotIsolation(t *testing.T) {
	store := NewMemoryStore(nil)
	_, err := store.Submit(context.Background(), func(state State) (State, error) {
		return state, state.CreateIndex(IndexMetadata{Name: "logs-1"})
	})
	require.NoError(t, err)

	snapshot, err := store.State(context.Background())
	require.NoError(t, err)
	require.NoError(t, snapshot.CreateIndex(IndexMetadata{Name: "sneaky"}))

	fresh, err := store.State(context.Background())
	require.NoError(t, err)
	_, ok := fresh.Index("sneaky")
	assert.False(t, ok)
}

func TestMemoryStoreSerializesTransitions(t *testing.T) {
	store := NewMemoryStore(nil)
	const writers = 16

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Submit(context.Background(), func(state State) (State, error) {
				// Each transition sees the latest committed count.
				name := "logs-" + string(rune('a'+len(state.Indices)))
				return state, state.CreateIndex(IndexMetadata{Name: name})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := store.State(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Indices, writers)
	assert.Equal(t, uint64(writers), state.Version)
}

func TestMemoryStoreContextCancelled(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.State(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.Submit(ctx, func(state State) (State, error) { return state, nil })
	assert.ErrorIs(t, err, context.Canceled)
}
