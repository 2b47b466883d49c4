// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"github.com/quillstore/quill/pkg/admin/api"
	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/rollover"
)

// AdminAPI is the surface of the admin server the operator tools use.
type AdminAPI interface {
	Rollover(alias string, req api.RolloverRequest) (*rollover.Response, error)
	CreateIndex(name string, req api.CreateIndexRequest) error
	ClusterState() (*cluster.State, error)
}
