// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server hosts the admin API, health and metrics endpoints.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the HTTP server around the API handler.
func NewServer(hostPort string, handler *APIHandler, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	return &Server{
		httpServer: &http.Server{
			Addr:              hostPort,
			Handler:           router,
			ReadHeaderTimeout: 2 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until Close is called. It blocks.
func (s *Server) Start() error {
	s.logger.Info("starting admin server", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close drains in-flight requests and stops the server.
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("stopping admin server")
	return s.httpServer.Shutdown(ctx)
}
