// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/quillstore/quill/cmd/admind/app"
	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/cluster/badgerstore"
	"github.com/quillstore/quill/pkg/config"
	"github.com/quillstore/quill/pkg/rollover"
	"github.com/quillstore/quill/pkg/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	v := viper.New()
	cfg := &app.Config{}
	badgerOpts := badgerstore.NewOptions("badger")

	command := &cobra.Command{
		Use:   "quill-admind",
		Short: "quill-admind serves the cluster metadata admin API",
		Long:  "quill-admind hosts index lifecycle operations (rollover, index creation) over the cluster metadata store",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg.InitFromViper(v)
			badgerOpts.InitFromViper(v)

			store, closeStore, err := buildStore(cfg.StorageType, badgerOpts, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			registry := storage.NewRegistry()
			metrics := rollover.NewMetrics(prometheus.DefaultRegisterer)
			service := rollover.NewService(store, registry,
				rollover.WithLogger(logger),
				rollover.WithMetrics(metrics),
			)
			handler := app.NewAPIHandler(service, store, registry, logger)
			server := app.NewServer(cfg.HTTPHostPort, handler, prometheus.DefaultGatherer, logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("shutting down", zap.String("signal", sig.String()))
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Close(ctx)
			}
		},
	}

	config.AddFlags(
		v,
		command,
		app.AddFlags,
		badgerOpts.AddFlags,
	)

	if err := command.Execute(); err != nil {
		log.Fatalln(err)
	}
}

func buildStore(storageType string, badgerOpts *badgerstore.Options, logger *zap.Logger) (cluster.Store, func(), error) {
	switch storageType {
	case "memory":
		return cluster.NewMemoryStore(logger), func() {}, nil
	case "badger":
		store, err := badgerstore.NewStore(badgerOpts, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close metadata store", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type %q", storageType)
	}
}
