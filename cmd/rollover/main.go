// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/quillstore/quill/cmd/rollover/app"
	"github.com/quillstore/quill/pkg/admin/client"
	"github.com/quillstore/quill/pkg/config"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	v := viper.New()
	cfg := &app.Config{}

	command := &cobra.Command{
		Use:   "quill-rollover ALIAS http://HOSTNAME:PORT",
		Short: "quill-rollover rolls a write alias over to a new index",
		Long:  "quill-rollover asks a quill admin server to roll the given write alias over to a freshly created successor index when the configured conditions are met",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("wrong number of arguments")
			}
			alias, endpoint := args[0], args[1]
			cfg.InitFromViper(v)

			action := &app.Action{
				Config: *cfg,
				AdminClient: &client.AdminClient{
					Client: client.Client{
						Endpoint: endpoint,
						Client: &http.Client{
							Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
						},
						BasicAuth: client.BasicAuth(cfg.Username, cfg.Password),
					},
				},
				Logger: logger,
			}
			return action.Do(alias)
		},
	}

	config.AddFlags(
		v,
		command,
		app.AddFlags,
	)

	if err := command.Execute(); err != nil {
		log.Fatalln(err)
	}
}
