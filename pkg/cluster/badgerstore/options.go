// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package badgerstore

import (
	"flag"

	"github.com/spf13/viper"
)

const (
	suffixDirectory  = ".directory"
	suffixEphemeral  = ".ephemeral"
	suffixSyncWrites = ".consistency"

	defaultDirectory = "/data/quill/metadata"
)

// Options holds the badger metadata-store configuration.
type Options struct {
	primaryNamespace string

	// Directory is where badger keeps keys and values. Ignored when
	// Ephemeral is set.
	Directory string
	// Ephemeral keeps the whole store in memory; nothing survives restart.
	Ephemeral bool
	// SyncWrites syncs every commit to disk before acknowledging it.
	SyncWrites bool
}

// NewOptions creates Options with defaults for the given flag namespace.
func NewOptions(primaryNamespace string) *Options {
	return &Options{
		primaryNamespace: primaryNamespace,
		Directory:        defaultDirectory,
		Ephemeral:        false,
		SyncWrites:       true,
	}
}

// AddFlags adds the store's flags to the flag set.
func (o *Options) AddFlags(flagSet *flag.FlagSet) {
	flagSet.String(
		o.primaryNamespace+suffixDirectory,
		o.Directory,
		"Directory holding the metadata store files",
	)
	flagSet.Bool(
		o.primaryNamespace+suffixEphemeral,
		o.Ephemeral,
		"Keep cluster metadata in memory only (lost on restart)",
	)
	flagSet.Bool(
		o.primaryNamespace+suffixSyncWrites,
		o.SyncWrites,
		"Sync every metadata commit to disk before acknowledging it",
	)
}

// InitFromViper initializes Options with values from viper.
func (o *Options) InitFromViper(v *viper.Viper) {
	o.Directory = v.GetString(o.primaryNamespace + suffixDirectory)
	o.Ephemeral = v.GetBool(o.primaryNamespace + suffixEphemeral)
	o.SyncWrites = v.GetBool(o.primaryNamespace + suffixSyncWrites)
}
