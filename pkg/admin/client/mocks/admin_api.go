// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/quillstore/quill/pkg/admin/api"
	"github.com/quillstore/quill/pkg/cluster"
	"github.com/quillstore/quill/pkg/rollover"
)

// AdminAPI is a mock of client.AdminAPI.
type AdminAPI struct {
	mock.Mock
}

func (_m *AdminAPI) Rollover(alias string, req api.RolloverRequest) (*rollover.Response, error) {
	ret := _m.Called(alias, req)

	var r0 *rollover.Response
	if rf, ok := ret.Get(0).(func(string, api.RolloverRequest) *rollover.Response); ok {
		r0 = rf(alias, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*rollover.Response)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, api.RolloverRequest) error); ok {
		r1 = rf(alias, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AdminAPI) CreateIndex(name string, req api.CreateIndexRequest) error {
	ret := _m.Called(name, req)

	if rf, ok := ret.Get(0).(func(string, api.CreateIndexRequest) error); ok {
		return rf(name, req)
	}
	return ret.Error(0)
}

func (_m *AdminAPI) ClusterState() (*cluster.State, error) {
	ret := _m.Called()

	var r0 *cluster.State
	if rf, ok := ret.Get(0).(func() *cluster.State); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cluster.State)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
