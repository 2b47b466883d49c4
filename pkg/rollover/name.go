// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package rollover

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNameFormat is returned when a successor name cannot be derived
// because the index name has no trailing "-<number>" counter.
var ErrInvalidNameFormat = errors.New("index name has no trailing counter")

// NextIndexName derives the successor of an index named "<prefix>-<N>".
// The counter is incremented; a zero-padded counter keeps its width, an
// unpadded one stays unpadded.
func NextIndexName(current string) (string, error) {
	i := len(current)
	for i > 0 && current[i-1] >= '0' && current[i-1] <= '9' {
		i--
	}
	if i == len(current) || i == 0 || current[i-1] != '-' {
		return "", fmt.Errorf("%w: %q", ErrInvalidNameFormat, current)
	}
	digits := current[i:]
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidNameFormat, current, err)
	}
	next := strconv.FormatUint(n+1, 10)
	if strings.HasPrefix(digits, "0") && len(next) < len(digits) {
		next = strings.Repeat("0", len(digits)-len(next)) + next
	}
	return current[:i] + next, nil
}
