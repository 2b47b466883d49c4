// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package rollover

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a condition threshold rendered the way operators write it:
// "90s", "30m", "4h", "2d". It exists because time.Duration has no day
// suffix and prints "4h0m0s" where the identity string needs "4h".
type Duration time.Duration

// ParseDuration parses a duration with an optional d/h/m/s/ms suffix.
func ParseDuration(s string) (Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if strings.HasSuffix(s, "d") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		return Duration(time.Duration(n * float64(24*time.Hour))), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return Duration(d), nil
}

// Duration converts back to the stdlib type.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String renders the largest suffix that divides the value exactly.
func (d Duration) String() string {
	v := time.Duration(d)
	switch {
	case v == 0:
		return "0s"
	case v%(24*time.Hour) == 0:
		return strconv.FormatInt(int64(v/(24*time.Hour)), 10) + "d"
	case v%time.Hour == 0:
		return strconv.FormatInt(int64(v/time.Hour), 10) + "h"
	case v%time.Minute == 0:
		return strconv.FormatInt(int64(v/time.Minute), 10) + "m"
	case v%time.Second == 0:
		return strconv.FormatInt(int64(v/time.Second), 10) + "s"
	case v%time.Millisecond == 0:
		return strconv.FormatInt(int64(v/time.Millisecond), 10) + "ms"
	default:
		return v.String()
	}
}

// ByteSize is a store-size threshold with 1024-base suffixes ("5gb"),
// matching how index sizes are written in rollover conditions.
type ByteSize int64

const (
	kb ByteSize = 1 << 10
	mb ByteSize = 1 << 20
	gb ByteSize = 1 << 30
	tb ByteSize = 1 << 40
)

// ParseByteSize parses a size such as "512mb", "5gb" or a plain byte
// count.
func ParseByteSize(s string) (ByteSize, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	mult := ByteSize(1)
	num := lower
	for _, u := range []struct {
		suffix string
		mult   ByteSize
	}{
		{"tb", tb}, {"gb", gb}, {"mb", mb}, {"kb", kb}, {"b", 1},
	} {
		if strings.HasSuffix(lower, u.suffix) {
			mult = u.mult
			num = strings.TrimSuffix(lower, u.suffix)
			break
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid size %q: must not be negative", s)
	}
	return ByteSize(n * float64(mult)), nil
}

// Bytes returns the size as a plain byte count.
func (b ByteSize) Bytes() int64 {
	return int64(b)
}

// String renders the largest suffix that divides the value exactly.
func (b ByteSize) String() string {
	switch {
	case b >= tb && b%tb == 0:
		return strconv.FormatInt(int64(b/tb), 10) + "tb"
	case b >= gb && b%gb == 0:
		return strconv.FormatInt(int64(b/gb), 10) + "gb"
	case b >= mb && b%mb == 0:
		return strconv.FormatInt(int64(b/mb), 10) + "mb"
	case b >= kb && b%kb == 0:
		return strconv.FormatInt(int64(b/kb), 10) + "kb"
	default:
		return strconv.FormatInt(int64(b), 10) + "b"
	}
}
