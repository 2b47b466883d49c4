// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package cluster

import "context"

// Transition is a pure function from one metadata snapshot to its
// successor. It must not touch anything outside the snapshot it is given;
// returning an error aborts the transition with nothing committed.
type Transition func(State) (State, error)

// Store is the consistent cluster-metadata store. Implementations apply
// submitted transitions one at a time against the latest accepted state,
// so a transition always reads a fresh snapshot and either commits as a
// whole or not at all.
type Store interface {
	// State returns a private copy of the latest committed snapshot.
	State(ctx context.Context) (State, error)

	// Submit runs the transition against the latest committed state and,
	// if it succeeds, publishes the result as the next committed state.
	// The returned snapshot is the committed one.
	Submit(ctx context.Context, t Transition) (State, error)
}
