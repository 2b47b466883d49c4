// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package rollover

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/quillstore/quill/pkg/storage"
)

// Condition is a predicate over index statistics that can trigger a
// rollover. Implementations must be pure; Identity must be stable and
// distinct per condition kind and value, since it keys the result map.
type Condition interface {
	Identity() string
	Matches(stats storage.IndexStats) bool
}

// MaxAge triggers once the index age reaches the threshold.
type MaxAge struct {
	Value Duration
}

// Identity implements Condition.
func (c MaxAge) Identity() string {
	return fmt.Sprintf("[max_age: %s]", c.Value)
}

// Matches implements Condition.
func (c MaxAge) Matches(stats storage.IndexStats) bool {
	return stats.Age >= c.Value.Duration()
}

// MaxDocs triggers once the document count reaches the threshold.
type MaxDocs struct {
	Value int64
}

// Identity implements Condition.
func (c MaxDocs) Identity() string {
	return fmt.Sprintf("[max_docs: %d]", c.Value)
}

// Matches implements Condition.
func (c MaxDocs) Matches(stats storage.IndexStats) bool {
	return stats.Docs >= c.Value
}

// MaxSize triggers once the primary store size reaches the threshold.
type MaxSize struct {
	Value ByteSize
}

// Identity implements Condition.
func (c MaxSize) Identity() string {
	return fmt.Sprintf("[max_size: %s]", c.Value)
}

// Matches implements Condition.
func (c MaxSize) Matches(stats storage.IndexStats) bool {
	return stats.SizeBytes >= c.Value.Bytes()
}

// EvaluateConditions evaluates every condition against the same stats
// snapshot and returns the full status map. There is no short-circuiting:
// the caller always sees the result of each condition. Later conditions
// with a duplicate identity overwrite earlier ones.
func EvaluateConditions(conditions []Condition, stats storage.IndexStats) map[string]bool {
	results := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		results[c.Identity()] = c.Matches(stats)
	}
	return results
}

// shouldRollover decides whether rollover proceeds. No conditions means an
// unconditional "always roll" request; otherwise any single match is
// sufficient.
func shouldRollover(results map[string]bool) bool {
	if len(results) == 0 {
		return true
	}
	for _, matched := range results {
		if matched {
			return true
		}
	}
	return false
}

// ParseConditions builds conditions from the JSON conditions object used
// on the wire and on the command line, e.g.
//
//	{"max_age": "2d", "max_docs": 100000, "max_size": "5gb"}
//
// Keys are processed in sorted order so the resulting slice is stable.
func ParseConditions(raw map[string]any) ([]Condition, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conditions := make([]Condition, 0, len(raw))
	for _, kind := range keys {
		value := raw[kind]
		switch kind {
		case "max_age":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("condition max_age requires a duration string, got %v", value)
			}
			d, err := ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("condition max_age: %w", err)
			}
			conditions = append(conditions, MaxAge{Value: d})
		case "max_docs":
			n, err := toInt64(value)
			if err != nil {
				return nil, fmt.Errorf("condition max_docs: %w", err)
			}
			conditions = append(conditions, MaxDocs{Value: n})
		case "max_size":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("condition max_size requires a size string, got %v", value)
			}
			b, err := ParseByteSize(s)
			if err != nil {
				return nil, fmt.Errorf("condition max_size: %w", err)
			}
			conditions = append(conditions, MaxSize{Value: b})
		default:
			return nil, fmt.Errorf("unknown rollover condition %q", kind)
		}
	}
	return conditions, nil
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}
