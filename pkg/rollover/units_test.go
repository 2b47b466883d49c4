// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package rollover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Duration
	}{
		{in: "2d", expected: 48 * time.Hour},
		{in: "4h", expected: 4 * time.Hour},
		{in: "30m", expected: 30 * time.Minute},
		{in: "90s", expected: 90 * time.Second},
		{in: "500ms", expected: 500 * time.Millisecond},
		{in: "0.5d", expected: 12 * time.Hour},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			d, err := ParseDuration(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.expected, d.Duration())
		})
	}

	for _, in := range []string{"", "abc", "4x", "d"} {
		_, err := ParseDuration(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDurationString(t *testing.T) {
	assert.Equal(t, "2d", Duration(48*time.Hour).String())
	assert.Equal(t, "4h", Duration(4*time.Hour).String())
	assert.Equal(t, "36h", Duration(36*time.Hour).String())
	assert.Equal(t, "90s", Duration(90*time.Second).String())
	assert.Equal(t, "0s", Duration(0).String())
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{in: "5gb", expected: 5 << 30},
		{in: "512mb", expected: 512 << 20},
		{in: "1tb", expected: 1 << 40},
		{in: "10kb", expected: 10 << 10},
		{in: "100b", expected: 100},
		{in: "100", expected: 100},
		{in: "1.5gb", expected: 3 << 29},
		{in: "5GB", expected: 5 << 30},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			b, err := ParseByteSize(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.expected, b.Bytes())
		})
	}

	for _, in := range []string{"", "gb", "-5gb", "five"} {
		_, err := ParseByteSize(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestByteSizeString(t *testing.T) {
	assert.Equal(t, "5gb", ByteSize(5<<30).String())
	assert.Equal(t, "512mb", ByteSize(512<<20).String())
	assert.Equal(t, "100b", ByteSize(100).String())
	assert.Equal(t, "1536mb", ByteSize(3<<29).String())
}
