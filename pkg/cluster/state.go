// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"errors"
	"fmt"
	"time"
)

// ErrAliasNotFound is returned when an alias does not resolve to exactly
// one write index.
var ErrAliasNotFound = errors.New("alias not found")

// ErrIndexExists is returned by State.CreateIndex when the index name is
// already taken.
var ErrIndexExists = errors.New("index already exists")

// Alias is the membership record of one alias on one index.
type Alias struct {
	// WriteIndex marks the index new documents route to. At most one
	// member index of an alias carries it.
	WriteIndex bool `json:"write_index"`
}

// IndexSettings holds the creation-time settings of an index.
type IndexSettings struct {
	Shards   int               `json:"number_of_shards"`
	Replicas int               `json:"number_of_replicas"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// IndexSettingsPatch carries requested settings for a new index. Nil
// fields are "unspecified" and inherit from a base; an explicit zero (e.g.
// replicas: 0) is preserved.
type IndexSettingsPatch struct {
	Shards   *int              `json:"number_of_shards,omitempty"`
	Replicas *int              `json:"number_of_replicas,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Apply overlays the patch on the base settings.
func (p IndexSettingsPatch) Apply(base IndexSettings) IndexSettings {
	out := base
	out.Extra = copyStringMap(base.Extra)
	if p.Shards != nil {
		out.Shards = *p.Shards
	}
	if p.Replicas != nil {
		out.Replicas = *p.Replicas
	}
	for k, v := range p.Extra {
		if out.Extra == nil {
			out.Extra = map[string]string{}
		}
		out.Extra[k] = v
	}
	return out
}

// IndexMetadata describes one index as recorded in cluster metadata.
type IndexMetadata struct {
	Name     string           `json:"name"`
	Settings IndexSettings    `json:"settings"`
	Aliases  map[string]Alias `json:"aliases,omitempty"`
	Created  time.Time        `json:"created"`
}

// HasAlias reports whether the index is a member of the alias.
func (m IndexMetadata) HasAlias(alias string) bool {
	_, ok := m.Aliases[alias]
	return ok
}

// State is one committed snapshot of the cluster metadata. Values handed
// out by a Store are private copies: callers may read them freely and
// transitions may modify them before returning.
type State struct {
	Version uint64                   `json:"version"`
	Indices map[string]IndexMetadata `json:"indices"`
}

// NewState returns an empty snapshot at version zero.
func NewState() State {
	return State{Indices: map[string]IndexMetadata{}}
}

// Index looks up an index by name.
func (s State) Index(name string) (IndexMetadata, bool) {
	m, ok := s.Indices[name]
	return m, ok
}

// WriteIndex resolves an alias to its single write index. It fails with
// ErrAliasNotFound when the alias has no write index or more than one.
func (s State) WriteIndex(alias string) (string, error) {
	var found []string
	for name, idx := range s.Indices {
		if a, ok := idx.Aliases[alias]; ok && a.WriteIndex {
			found = append(found, name)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", fmt.Errorf("%w: no write index for alias %q", ErrAliasNotFound, alias)
	default:
		return "", fmt.Errorf("%w: alias %q has %d write indices", ErrAliasNotFound, alias, len(found))
	}
}

// CreateIndex adds a new index to the snapshot.
func (s *State) CreateIndex(meta IndexMetadata) error {
	if meta.Name == "" {
		return errors.New("index name must not be empty")
	}
	if _, ok := s.Indices[meta.Name]; ok {
		return fmt.Errorf("%w: %s", ErrIndexExists, meta.Name)
	}
	if meta.Aliases == nil {
		meta.Aliases = map[string]Alias{}
	}
	s.Indices[meta.Name] = meta
	return nil
}

// SetAlias attaches an alias to an index, overwriting a prior membership.
func (s *State) SetAlias(index, alias string, writeIndex bool) error {
	meta, ok := s.Indices[index]
	if !ok {
		return fmt.Errorf("no such index: %s", index)
	}
	if meta.Aliases == nil {
		meta.Aliases = map[string]Alias{}
	}
	meta.Aliases[alias] = Alias{WriteIndex: writeIndex}
	s.Indices[index] = meta
	return nil
}

// RemoveAlias detaches an alias from an index. Detaching an absent alias
// is a no-op.
func (s *State) RemoveAlias(index, alias string) {
	meta, ok := s.Indices[index]
	if !ok {
		return
	}
	delete(meta.Aliases, alias)
	s.Indices[index] = meta
}

// Clone returns a deep copy the caller may mutate without affecting s.
func (s State) Clone() State {
	out := State{Version: s.Version, Indices: make(map[string]IndexMetadata, len(s.Indices))}
	for name, idx := range s.Indices {
		cp := idx
		cp.Aliases = make(map[string]Alias, len(idx.Aliases))
		for a, v := range idx.Aliases {
			cp.Aliases[a] = v
		}
		cp.Settings.Extra = copyStringMap(idx.Settings.Extra)
		out.Indices[name] = cp
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
