// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillstore/quill/pkg/admin/api"
	"github.com/quillstore/quill/pkg/admin/client/mocks"
	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/rollover"
)

func TestRolloverAction(t *testing.T) {
	one, zero := 1, 0
	tests := []struct {
		name          string
		config        Config
		expectedReq   *api.RolloverRequest
		rolloverErr   error
		expectedError bool
	}{
		{
			name:   "conditions only",
			config: Config{Conditions: "{\"max_age\": \"2d\"}", Shards: -1, Replicas: -1},
			expectedReq: &api.RolloverRequest{
				Conditions: map[string]any{"max_age": "2d"},
			},
		},
		{
			name: "settings and extra aliases",
			config: Config{
				Conditions:   "{\"max_docs\": 100}",
				Shards:       1,
				Replicas:     0,
				ExtraAliases: []string{"extra_alias"},
				Simulate:     true,
			},
			expectedReq: &api.RolloverRequest{
				Conditions:   map[string]any{"max_docs": float64(100)},
				ExtraAliases: []string{"extra_alias"},
				Simulate:     true,
				Settings:     &cluster.IndexSettingsPatch{Shards: &one, Replicas: &zero},
			},
		},
		{
			name:          "invalid conditions",
			config:        Config{Conditions: "{\"max_age\" \"2d\"},", Shards: -1, Replicas: -1},
			expectedError: true,
		},
		{
			name:          "server error",
			config:        Config{Conditions: "", Shards: -1, Replicas: -1},
			expectedReq:   &api.RolloverRequest{Conditions: map[string]any{}},
			rolloverErr:   errors.New("unable to rollover"),
			expectedError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			adminClient := &mocks.AdminAPI{}
			if test.expectedReq != nil {
				adminClient.On("Rollover", "logs", *test.expectedReq).
					Return(&rollover.Response{OldIndex: "logs-1", NewIndex: "logs-2", RolledOver: true}, test.rolloverErr)
			}

			action := &Action{
				Config:      test.config,
				AdminClient: adminClient,
			}
			err := action.Do("logs")
			if test.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			adminClient.AssertExpectations(t)
		})
	}
}
