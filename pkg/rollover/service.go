// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

// Package rollover implements write-alias rollover: deriving the successor
// index name, evaluating trigger conditions against live index statistics,
// and moving the alias onto a freshly created index in one atomic metadata
// transition.
package rollover

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/storage"
)

var (
	// ErrRolloverNameRequired is returned when the successor name cannot
	// be derived from the alias's write index and the request did not
	// supply one.
	ErrRolloverNameRequired = errors.New("new index name required for rollover")

	// ErrMetadataTransitionFailed is returned when the create+swap
	// transition could not be committed. Nothing is visible to other
	// readers in that case.
	ErrMetadataTransitionFailed = errors.New("metadata transition failed")

	// errAliasMoved aborts a transition whose alias was rolled over by a
	// concurrent caller between decision and commit.
	errAliasMoved = errors.New("alias moved concurrently")
)

// Request describes one rollover call.
type Request struct {
	// Alias is the write alias to roll over.
	Alias string
	// Conditions trigger the rollover; empty means roll unconditionally.
	Conditions []Condition
	// NewIndexName overrides the derived successor name.
	NewIndexName string
	// Settings for the new index; unspecified fields default to the old
	// index's settings.
	Settings *cluster.IndexSettingsPatch
	// ExtraAliases are attached to the new index alongside Alias.
	ExtraAliases []string
	// Simulate evaluates and reports without mutating metadata.
	Simulate bool
}

// Response is the outcome reported to the caller.
type Response struct {
	// OldIndex is the alias's write index as observed before the call.
	OldIndex string `json:"old_index"`
	// NewIndex is the candidate successor, or equal to OldIndex when no
	// rollover happened.
	NewIndex string `json:"new_index"`
	// Simulate echoes the request flag.
	Simulate bool `json:"simulate"`
	// RolledOver reports whether the alias was moved.
	RolledOver bool `json:"rolled_over"`
	// Created reports whether the new index was created by this call.
	// Rolling onto an index that already existed reports false here with
	// RolledOver still true.
	Created bool `json:"rollover_index_created"`
	// Conditions maps each condition identity to its match result.
	Conditions map[string]bool `json:"conditions"`
}

// Service coordinates rollover against the cluster metadata store and the
// storage engine's statistics.
type Service struct {
	store   cluster.Store
	stats   storage.Provider
	logger  *zap.Logger
	metrics *Metrics
	timeNow func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics attaches rollover counters.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a rollover Service.
func NewService(store cluster.Store, stats storage.Provider, options ...Option) *Service {
	s := &Service{
		store:   store,
		stats:   stats,
		logger:  zap.NewNop(),
		metrics: NewMetrics(nil),
		timeNow: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Rollover runs one rollover call end to end. Decision-phase failures
// happen before any mutation; once the transition is submitted the store
// commits it all-or-nothing.
func (s *Service) Rollover(ctx context.Context, req Request) (*Response, error) {
	s.metrics.Attempts.Inc()

	snapshot, err := s.store.State(ctx)
	if err != nil {
		return nil, err
	}
	oldIndex, err := snapshot.WriteIndex(req.Alias)
	if err != nil {
		s.metrics.Failed.Inc()
		return nil, err
	}

	newIndex := req.NewIndexName
	if newIndex == "" {
		newIndex, err = NextIndexName(oldIndex)
		if err != nil {
			s.metrics.Failed.Inc()
			return nil, fmt.Errorf("%w: %w", ErrRolloverNameRequired, err)
		}
	}

	results := map[string]bool{}
	if len(req.Conditions) > 0 {
		stats, err := s.stats.IndexStats(ctx, oldIndex)
		if err != nil {
			s.metrics.Failed.Inc()
			return nil, fmt.Errorf("failed to read statistics for %q: %w", oldIndex, err)
		}
		results = EvaluateConditions(req.Conditions, stats)
	}

	resp := &Response{
		OldIndex:   oldIndex,
		NewIndex:   oldIndex,
		Simulate:   req.Simulate,
		Conditions: results,
	}

	if !shouldRollover(results) {
		s.metrics.Skipped.Inc()
		s.logger.Info("rollover conditions not met",
			zap.String("alias", req.Alias),
			zap.String("index", oldIndex))
		return resp, nil
	}

	resp.NewIndex = newIndex
	if req.Simulate {
		s.logger.Info("simulated rollover",
			zap.String("alias", req.Alias),
			zap.String("old_index", oldIndex),
			zap.String("new_index", newIndex))
		return resp, nil
	}

	created, rolledOver, err := s.execute(ctx, req, oldIndex, newIndex)
	if err != nil {
		s.metrics.Failed.Inc()
		return nil, err
	}
	if !rolledOver {
		// Lost the race against a concurrent rollover; the alias is
		// already on a successor index. Report a no-op.
		s.metrics.Skipped.Inc()
		resp.NewIndex = oldIndex
		return resp, nil
	}

	resp.RolledOver = true
	resp.Created = created
	s.metrics.RolledOver.Inc()
	s.logger.Info("rolled over",
		zap.String("alias", req.Alias),
		zap.String("old_index", oldIndex),
		zap.String("new_index", newIndex),
		zap.Bool("created", created))
	return resp, nil
}

// execute submits the create+swap transition. The transition re-resolves
// the alias from the snapshot it is handed; the state read before Submit
// is never trusted.
func (s *Service) execute(ctx context.Context, req Request, oldIndex, newIndex string) (created, rolledOver bool, err error) {
	transition := func(state cluster.State) (cluster.State, error) {
		current, err := state.WriteIndex(req.Alias)
		if err != nil {
			return cluster.State{}, err
		}
		if current != oldIndex {
			return cluster.State{}, errAliasMoved
		}

		if _, exists := state.Index(newIndex); exists {
			// A prior attempt or a concurrent caller already created
			// the index. Skip creation and still swap the alias.
			created = false
		} else {
			old, _ := state.Index(oldIndex)
			settings := old.Settings
			if req.Settings != nil {
				settings = req.Settings.Apply(old.Settings)
			}
			err := state.CreateIndex(cluster.IndexMetadata{
				Name:     newIndex,
				Settings: settings,
				Created:  s.timeNow(),
			})
			if err != nil {
				return cluster.State{}, err
			}
			created = true
		}

		state.RemoveAlias(oldIndex, req.Alias)
		if err := state.SetAlias(newIndex, req.Alias, true); err != nil {
			return cluster.State{}, err
		}
		for _, extra := range req.ExtraAliases {
			if err := state.SetAlias(newIndex, extra, false); err != nil {
				return cluster.State{}, err
			}
		}
		return state, nil
	}

	if _, err := s.store.Submit(ctx, transition); err != nil {
		switch {
		case errors.Is(err, errAliasMoved):
			return false, false, nil
		case errors.Is(err, cluster.ErrAliasNotFound):
			return false, false, err
		case ctx.Err() != nil:
			// Outcome unknown; the caller may retry, creation and swap
			// are idempotent per index name.
			return false, false, err
		default:
			return false, false, fmt.Errorf("%w: %w", ErrMetadataTransitionFailed, err)
		}
	}
	return created, true, nil
}
