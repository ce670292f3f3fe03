// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cilium/strerror/pkg/version"
)

func New() *cobra.Command {
	var build bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version of the CLI",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "CLI version: %s\n", version.Version)
			if build {
				version.ReadBuildInfo().Print(cmd.OutOrStdout())
			}
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&build, "build", "b", false, "Show CLI build information")
	return cmd
}
