// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package rollover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIndexName(t *testing.T) {
	tests := []struct {
		current  string
		expected string
	}{
		{current: "logs-1", expected: "logs-2"},
		{current: "logs-9", expected: "logs-10"},
		{current: "logs-0", expected: "logs-1"},
		{current: "test_index-2", expected: "test_index-3"},
		{current: "logs-2026.08-5", expected: "logs-2026.08-6"},
		{current: "logs-000001", expected: "logs-000002"},
		{current: "logs-000999", expected: "logs-001000"},
		{current: "logs-09", expected: "logs-10"},
	}
	for _, test := range tests {
		t.Run(test.current, func(t *testing.T) {
			next, err := NextIndexName(test.current)
			require.NoError(t, err)
			assert.Equal(t, test.expected, next)
		})
	}
}

func TestNextIndexNameInvalid(t *testing.T) {
	for _, current := range []string{"logs", "logs-", "logs-abc", "42", "", "logs1"} {
		t.Run(current, func(t *testing.T) {
			_, err := NextIndexName(current)
			assert.ErrorIs(t, err, ErrInvalidNameFormat)
		})
	}
}
