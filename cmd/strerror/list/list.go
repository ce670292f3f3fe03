// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package list

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cilium/strerror/cmd/strerror/common"
	"github.com/cilium/strerror/pkg/errname"
	"github.com/cilium/strerror/pkg/logger"
)

const (
	keyFrom = "from"
	keyTo   = "to"
	keyAll  = "all"

	// EHWPOISON, used when the platform has no name table to size the list
	fallbackTo = 133
)

const examples = `  # List every named error number
  strerror list

  # Include numbers without a name
  strerror list --from 120 --to 140 --all`

func New() *cobra.Command {
	var (
		from int
		to   int
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Print the messages of a range of error numbers",
		Example: examples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// without a name table nothing would be listed
			knownOnly := !all && errname.HasNames()
			entries, err := errname.Range(from, to, knownOnly)
			if err != nil {
				return err
			}
			logger.GetLogger().WithFields(logrus.Fields{
				keyFrom:   from,
				keyTo:     to,
				"entries": len(entries),
			}).Debug("listing error numbers")
			return common.Print(cmd.OutOrStdout(), entries)
		},
	}

	defaultTo := errname.MaxCode()
	if defaultTo == 0 {
		defaultTo = fallbackTo
	}

	flags := cmd.Flags()
	flags.IntVar(&from, keyFrom, 1, "First error number")
	flags.IntVar(&to, keyTo, defaultTo, "Last error number (inclusive)")
	flags.BoolVarP(&all, keyAll, "a", false, "Include error numbers without a symbolic name")
	return cmd
}
