// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package rollover

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the rollover service counters.
type Metrics struct {
	// Attempts counts every rollover call.
	Attempts prometheus.Counter
	// RolledOver counts calls that moved the alias.
	RolledOver prometheus.Counter
	// Skipped counts calls whose conditions were not met or that lost a
	// concurrent race.
	Skipped prometheus.Counter
	// Failed counts calls that returned an error.
	Failed prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg. A nil
// registerer leaves the counters unregistered, which tests rely on.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Attempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "quill_rollover_attempts_total",
			Help: "Number of rollover calls received",
		}),
		RolledOver: factory.NewCounter(prometheus.CounterOpts{
			Name: "quill_rollover_rolled_over_total",
			Help: "Number of rollover calls that moved the write alias",
		}),
		Skipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "quill_rollover_skipped_total",
			Help: "Number of rollover calls skipped (conditions unmet or lost race)",
		}),
		Failed: factory.NewCounter(prometheus.CounterOpts{
			Name: "quill_rollover_failed_total",
			Help: "Number of rollover calls that failed",
		}),
	}
}
