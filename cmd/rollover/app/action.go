// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/quillstore/quill/pkg/admin/api"
	"github.com/quillstore/quill/pkg/admin/client"
	"github.com/quillstore/quill/pkg/cluster"
)

// Action holds the configuration and client for the rollover action.
type Action struct {
	Config
	AdminClient client.AdminAPI
	Logger      *zap.Logger
}

// Do asks the admin server to roll the alias over and logs the outcome.
func (a *Action) Do(alias string) error {
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}

	conditionsMap := map[string]any{}
	if a.Conditions != "" {
		if err := json.Unmarshal([]byte(a.Conditions), &conditionsMap); err != nil {
			return fmt.Errorf("could not parse conditions: %w", err)
		}
	}

	req := api.RolloverRequest{
		Conditions:   conditionsMap,
		NewIndex:     a.NewIndex,
		ExtraAliases: a.ExtraAliases,
		Simulate:     a.Simulate,
	}
	if a.Shards >= 0 || a.Replicas >= 0 {
		patch := &cluster.IndexSettingsPatch{}
		if a.Shards >= 0 {
			patch.Shards = &a.Shards
		}
		if a.Replicas >= 0 {
			patch.Replicas = &a.Replicas
		}
		req.Settings = patch
	}

	outcome, err := a.AdminClient.Rollover(alias, req)
	if err != nil {
		return err
	}
	a.Logger.Info("rollover finished",
		zap.String("old_index", outcome.OldIndex),
		zap.String("new_index", outcome.NewIndex),
		zap.Bool("rolled_over", outcome.RolledOver),
		zap.Bool("created", outcome.Created),
		zap.Bool("simulate", outcome.Simulate),
		zap.Any("conditions", outcome.Conditions))
	return nil
}
