// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"
	"strings"

	"github.com/spf13/viper"
)

const (
	conditions   = "conditions"
	newIndex     = "new-index"
	shards       = "shards"
	replicas     = "replicas"
	extraAliases = "extra-aliases"
	simulate     = "simulate"
	timeout      = "timeout"
	username     = "username"
	password     = "password"

	defaultConditions = "{\"max_age\": \"2d\"}"
)

// Config holds the rollover CLI configuration.
type Config struct {
	Conditions     string
	NewIndex       string
	Shards         int
	Replicas       int
	ExtraAliases   []string
	Simulate       bool
	TimeoutSeconds int
	Username       string
	Password       string
}

// AddFlags adds the CLI flags to the flag set.
func AddFlags(flags *flag.FlagSet) {
	flags.String(conditions, defaultConditions, "conditions used to rollover to a new write index")
	flags.String(newIndex, "", "Explicit name for the new index (required when the current one has no trailing counter)")
	flags.Int(shards, -1, "Number of shards for the new index (-1 inherits from the old index)")
	flags.Int(replicas, -1, "Number of replicas for the new index (-1 inherits from the old index)")
	flags.String(extraAliases, "", "Comma-separated aliases to attach to the new index")
	flags.Bool(simulate, false, "Evaluate conditions and report without mutating metadata")
	flags.Int(timeout, 120, "Request timeout in seconds")
	flags.String(username, "", "The username required by the admin server")
	flags.String(password, "", "The password required by the admin server")
}

// InitFromViper initializes Config from viper.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.Conditions = v.GetString(conditions)
	c.NewIndex = v.GetString(newIndex)
	c.Shards = v.GetInt(shards)
	c.Replicas = v.GetInt(replicas)
	c.ExtraAliases = nil
	if raw := v.GetString(extraAliases); raw != "" {
		for _, alias := range strings.Split(raw, ",") {
			if alias = strings.TrimSpace(alias); alias != "" {
				c.ExtraAliases = append(c.ExtraAliases, alias)
			}
		}
	}
	c.Simulate = v.GetBool(simulate)
	c.TimeoutSeconds = v.GetInt(timeout)
	c.Username = v.GetString(username)
	c.Password = v.GetString(password)
}
