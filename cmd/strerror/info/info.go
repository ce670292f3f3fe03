// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package info

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cilium/strerror/pkg/logger"
	"github.com/cilium/strerror/pkg/logger/logfields"
	"github.com/cilium/strerror/pkg/strerror"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print how error messages are looked up on this platform",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logger.GetLogger().WithField(logfields.Convention, strerror.Active()).Debug("reporting lookup convention")
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "Convention: %s\n", strerror.Active())
			fmt.Fprintf(w, "BufferSize: %d\n", strerror.BufferSize)
		},
	}
}
