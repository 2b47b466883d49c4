// Copyright (c) 2026 The Quill Authors.
// SPDX-License-Identifier: Apache-2.0

// Package config glues standard-library flag definitions to viper and
// cobra so every component can expose AddFlags/InitFromViper pairs.
package config

import (
	"flag"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Viperize collects the flags registered by each init function into a new
// viper instance and a cobra command bound to it. Flags are also readable
// from the environment, with dots and dashes mapped to underscores.
func Viperize(inits ...func(*flag.FlagSet)) (*viper.Viper, *cobra.Command) {
	v := viper.New()
	command := &cobra.Command{}
	AddFlags(v, command, inits...)
	return v, command
}

// AddFlags registers the flags from each init function on an existing
// command and binds them to the viper instance.
func AddFlags(v *viper.Viper, command *cobra.Command, inits ...func(*flag.FlagSet)) {
	flagSet := new(flag.FlagSet)
	for _, init := range inits {
		init(flagSet)
	}
	command.PersistentFlags().AddGoFlagSet(flagSet)
	v.BindPFlags(command.PersistentFlags())
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
}
