// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

// Package api holds the wire types of the admin HTTP API, shared by the
// server handler and the admin client.
package api

import "github.com/quillstore/quill/pkg/cluster"

// RolloverRequest is the body of POST /api/aliases/{alias}/rollover.
type RolloverRequest struct {
	// Conditions is the JSON conditions object, e.g. {"max_age": "2d"}.
	// Empty means roll over unconditionally.
	Conditions map[string]any `json:"conditions,omitempty"`
	// NewIndex overrides the derived successor index name.
	NewIndex string `json:"new_index,omitempty"`
	// Settings for the new index; unspecified fields inherit from the
	// old one.
	Settings *cluster.IndexSettingsPatch `json:"settings,omitempty"`
	// ExtraAliases are attached to the new index alongside the rolled
	// alias.
	ExtraAliases []string `json:"extra_aliases,omitempty"`
	// Simulate evaluates and reports without mutating metadata.
	Simulate bool `json:"simulate,omitempty"`
}

// CreateIndexRequest is the body of PUT /api/indices/{name}.
type CreateIndexRequest struct {
	Settings *cluster.IndexSettings   `json:"settings,omitempty"`
	Aliases  map[string]cluster.Alias `json:"aliases,omitempty"`
}
