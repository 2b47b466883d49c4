// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"

	"github.com/spf13/viper"
)

const (
	httpHostPort = "admin.http.host-port"
	storageType  = "storage.type"

	defaultHTTPHostPort = ":14850"
	defaultStorageType  = "memory"
)

// Config holds the admin daemon configuration.
type Config struct {
	// HTTPHostPort is the host:port the admin API listens on.
	HTTPHostPort string
	// StorageType selects the metadata store backend: memory or badger.
	StorageType string
}

// AddFlags adds the daemon's flags to the flag set.
func AddFlags(flags *flag.FlagSet) {
	flags.String(httpHostPort, defaultHTTPHostPort, "host:port for the admin HTTP API")
	flags.String(storageType, defaultStorageType, "Metadata store backend: memory or badger")
}

// InitFromViper initializes Config from viper.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.HTTPHostPort = v.GetString(httpHostPort)
	c.StorageType = v.GetString(storageType)
}
