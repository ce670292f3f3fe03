// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package lookup

import (
	"github.com/spf13/cobra"

	"github.com/cilium/strerror/cmd/strerror/common"
	"github.com/cilium/strerror/pkg/errname"
	"github.com/cilium/strerror/pkg/logger"
	"github.com/cilium/strerror/pkg/logger/logfields"
)

const examples = `  # Describe ENOENT by number
  strerror lookup 2

  # Names and negated kernel return values work too
  strerror lookup -- EACCES -13

  # Machine readable output
  strerror lookup -o json 2 13`

func New() *cobra.Command {
	return &cobra.Command{
		Use:     "lookup <code|NAME>...",
		Short:   "Print the message of one or more error numbers",
		Example: examples,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]errname.Entry, 0, len(args))
			for _, arg := range args {
				code, err := errname.Parse(arg)
				if err != nil {
					return err
				}
				logger.GetLogger().WithField(logfields.Code, code).Debug("describing error number")
				entries = append(entries, errname.Describe(code))
			}
			return common.Print(cmd.OutOrStdout(), entries)
		},
	}
}
