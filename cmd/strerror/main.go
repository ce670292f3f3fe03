// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cilium/strerror/cmd/strerror/info"
	"github.com/cilium/strerror/cmd/strerror/list"
	"github.com/cilium/strerror/cmd/strerror/lookup"
	"github.com/cilium/strerror/cmd/strerror/version"
	"github.com/cilium/strerror/pkg/logger"
	"github.com/cilium/strerror/pkg/option"
)

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

func New() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "strerror",
		Short:        "Describe operating system error numbers",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := option.ReadConfigSettings(); err != nil {
				return err
			}
			if err := option.ReadAndSetFlags(); err != nil {
				return err
			}
			logger.SetupLogging(option.Config.LogOpts, option.Config.Debug, cmd.ErrOrStderr())
			return nil
		},
	}
	// by default, it fallbacks to stderr
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(lookup.New())
	rootCmd.AddCommand(list.New())
	rootCmd.AddCommand(info.New())
	rootCmd.AddCommand(version.New())

	flags := rootCmd.PersistentFlags()
	option.AddFlags(flags)
	viper.BindPFlags(flags)
	return rootCmd
}
