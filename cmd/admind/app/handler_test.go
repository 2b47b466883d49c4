// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/rollover"
	"github.com/quillstore/quill/pkg/storage"
)

type handlerFixture struct {
	store    *cluster.MemoryStore
	registry *storage.Registry
	server   *httptest.Server
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	logger := zaptest.NewLogger(t)
	store := cluster.NewMemoryStore(logger)
	registry := storage.NewRegistry()
	service := rollover.NewService(store, registry, rollover.WithLogger(logger))
	handler := NewAPIHandler(service, store, registry, logger)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &handlerFixture{store: store, registry: registry, server: server}
}

func (f *handlerFixture) createIndex(t *testing.T, name string, aliases map[string]cluster.Alias) {
	_, err := f.store.Submit(context.Background(), func(state cluster.State) (cluster.State, error) {
		return state, state.CreateIndex(cluster.IndexMetadata{
			Name:    name,
			Aliases: aliases,
			Created: time.Now(),
		})
	})
	require.NoError(t, err)
	f.registry.TrackIndex(name, time.Now())
}

func TestRolloverEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.createIndex(t, "logs-1", map[string]cluster.Alias{"logs": {WriteIndex: true}})

	res, err := http.Post(f.server.URL+"/api/aliases/logs/rollover", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var outcome rollover.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&outcome))
	assert.Equal(t, "logs-1", outcome.OldIndex)
	assert.Equal(t, "logs-2", outcome.NewIndex)
	assert.True(t, outcome.RolledOver)
	assert.True(t, outcome.Created)

	// The created index is tracked, so condition evaluation against it
	// works on the next call.
	_, err = f.registry.IndexStats(context.Background(), "logs-2")
	assert.NoError(t, err)
}

func TestRolloverEndpointConditions(t *testing.T) {
	f := newHandlerFixture(t)
	f.createIndex(t, "logs-0", map[string]cluster.Alias{"logs": {WriteIndex: true}})

	res, err := http.Post(
		f.server.URL+"/api/aliases/logs/rollover",
		"application/json",
		strings.NewReader(`{"conditions":{"max_age":"4h"}}`),
	)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var outcome rollover.Response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&outcome))
	assert.False(t, outcome.RolledOver)
	assert.Equal(t, "logs-0", outcome.NewIndex)
	assert.Equal(t, map[string]bool{"[max_age: 4h]": false}, outcome.Conditions)
}

func TestRolloverEndpointErrors(t *testing.T) {
	f := newHandlerFixture(t)
	f.createIndex(t, "logs-1", map[string]cluster.Alias{"logs": {WriteIndex: true}})
	f.createIndex(t, "plain", map[string]cluster.Alias{"noroll": {WriteIndex: true}})

	tests := []struct {
		name     string
		path     string
		body     string
		expected int
	}{
		{name: "unknown alias", path: "/api/aliases/nope/rollover", body: "{}", expected: http.StatusNotFound},
		{name: "bad body", path: "/api/aliases/logs/rollover", body: "{", expected: http.StatusBadRequest},
		{name: "bad condition", path: "/api/aliases/logs/rollover", body: `{"conditions":{"min_docs":1}}`, expected: http.StatusBadRequest},
		{name: "underivable name", path: "/api/aliases/noroll/rollover", body: "{}", expected: http.StatusBadRequest},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := http.Post(f.server.URL+test.path, "application/json", strings.NewReader(test.body))
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, test.expected, res.StatusCode)

			var errBody structuredError
			require.NoError(t, json.NewDecoder(res.Body).Decode(&errBody))
			assert.NotEmpty(t, errBody.Msg)
		})
	}
}

func TestCreateIndexEndpoint(t *testing.T) {
	f := newHandlerFixture(t)

	req, err := http.NewRequest(http.MethodPut, f.server.URL+"/api/indices/logs-1",
		strings.NewReader(`{"settings":{"number_of_shards":3},"aliases":{"logs":{"write_index":true}}}`))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	state, err := f.store.State(context.Background())
	require.NoError(t, err)
	meta, ok := state.Index("logs-1")
	require.True(t, ok)
	assert.Equal(t, 3, meta.Settings.Shards)
	name, err := state.WriteIndex("logs")
	require.NoError(t, err)
	assert.Equal(t, "logs-1", name)

	// Creating the same index again conflicts.
	req, err = http.NewRequest(http.MethodPut, f.server.URL+"/api/indices/logs-1", strings.NewReader("{}"))
	require.NoError(t, err)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestClusterStateEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.createIndex(t, "logs-1", nil)

	res, err := http.Get(f.server.URL + "/api/state")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var state cluster.State
	require.NoError(t, json.NewDecoder(res.Body).Decode(&state))
	assert.Equal(t, uint64(1), state.Version)
	_, ok := state.Index("logs-1")
	assert.True(t, ok)
}
