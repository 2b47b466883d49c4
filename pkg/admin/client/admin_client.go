// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quillstore/quill/pkg/admin/api"
	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/rollover"
)

var _ AdminAPI = (*AdminClient)(nil)

// AdminClient talks to the quill admin HTTP API.
type AdminClient struct {
	Client
}

// Rollover submits a rollover request for the alias and returns the
// reported outcome.
func (c *AdminClient) Rollover(alias string, req api.RolloverRequest) (*rollover.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resBody, err := c.request(adminRequest{
		endpoint: fmt.Sprintf("api/aliases/%s/rollover", url.PathEscape(alias)),
		method:   http.MethodPost,
		body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to roll over alias %q: %w", alias, err)
	}
	var outcome rollover.Response
	if err := json.Unmarshal(resBody, &outcome); err != nil {
		return nil, fmt.Errorf("failed to decode rollover outcome: %w", err)
	}
	return &outcome, nil
}

// CreateIndex creates an index with optional settings and aliases.
func (c *AdminClient) CreateIndex(name string, req api.CreateIndexRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = c.request(adminRequest{
		endpoint: fmt.Sprintf("api/indices/%s", url.PathEscape(name)),
		method:   http.MethodPut,
		body:     body,
	})
	if err != nil {
		return fmt.Errorf("failed to create index %q: %w", name, err)
	}
	return nil
}

// ClusterState fetches the latest committed metadata snapshot.
func (c *AdminClient) ClusterState() (*cluster.State, error) {
	resBody, err := c.request(adminRequest{
		endpoint: "api/state",
		method:   http.MethodGet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cluster state: %w", err)
	}
	var state cluster.State
	if err := json.Unmarshal(resBody, &state); err != nil {
		return nil, fmt.Errorf("failed to decode cluster state: %w", err)
	}
	return &state, nil
}
