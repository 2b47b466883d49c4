// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/quillstore/quill/pkg/admin/api"
	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/rollover"
	"github.com/quillstore/quill/pkg/storage"
)

const (
	aliasParam = "alias"
	indexParam = "index"
)

type structuredError struct {
	Code int    `json:"code,omitempty"`
	Msg  string `json:"msg"`
}

// APIHandler serves the admin HTTP API.
type APIHandler struct {
	service *rollover.Service
	store   cluster.Store
	stats   *storage.Registry
	logger  *zap.Logger
	timeNow func() time.Time
}

// NewAPIHandler creates the admin API handler.
func NewAPIHandler(service *rollover.Service, store cluster.Store, stats *storage.Registry, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{
		service: service,
		store:   store,
		stats:   stats,
		logger:  logger,
		timeNow: time.Now,
	}
}

// RegisterRoutes registers the admin routes on the router.
func (h *APIHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc(fmt.Sprintf("/api/aliases/{%s}/rollover", aliasParam), h.rollover).Methods(http.MethodPost)
	router.HandleFunc(fmt.Sprintf("/api/indices/{%s}", indexParam), h.createIndex).Methods(http.MethodPut)
	router.HandleFunc("/api/state", h.clusterState).Methods(http.MethodGet)
}

func (h *APIHandler) rollover(w http.ResponseWriter, r *http.Request) {
	alias := mux.Vars(r)[aliasParam]

	var body api.RolloverRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
	}
	conditions, err := rollover.ParseConditions(body.Conditions)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	outcome, err := h.service.Rollover(r.Context(), rollover.Request{
		Alias:        alias,
		Conditions:   conditions,
		NewIndexName: body.NewIndex,
		Settings:     body.Settings,
		ExtraAliases: body.ExtraAliases,
		Simulate:     body.Simulate,
	})
	if err != nil {
		h.writeError(w, rolloverStatusCode(err), err)
		return
	}
	if outcome.Created {
		h.stats.TrackIndex(outcome.NewIndex, h.timeNow())
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *APIHandler) createIndex(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)[indexParam]

	var body api.CreateIndexRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
	}

	created := h.timeNow()
	_, err := h.store.Submit(r.Context(), func(state cluster.State) (cluster.State, error) {
		meta := cluster.IndexMetadata{
			Name:    name,
			Aliases: body.Aliases,
			Created: created,
		}
		if body.Settings != nil {
			meta.Settings = *body.Settings
		}
		if err := state.CreateIndex(meta); err != nil {
			return cluster.State{}, err
		}
		return state, nil
	})
	switch {
	case errors.Is(err, cluster.ErrIndexExists):
		h.writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.stats.TrackIndex(name, created)
	h.writeJSON(w, http.StatusCreated, map[string]bool{"acknowledged": true})
}

func (h *APIHandler) clusterState(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.State(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

func rolloverStatusCode(err error) int {
	switch {
	case errors.Is(err, cluster.ErrAliasNotFound):
		return http.StatusNotFound
	case errors.Is(err, rollover.ErrRolloverNameRequired),
		errors.Is(err, rollover.ErrInvalidNameFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, code int, err error) {
	h.logger.Warn("admin API error", zap.Int("code", code), zap.Error(err))
	h.writeJSON(w, code, structuredError{Code: code, Msg: err.Error()})
}
