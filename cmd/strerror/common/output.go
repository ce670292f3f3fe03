// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package common

import (
	"io"

	"github.com/cilium/strerror/pkg/encoder"
	"github.com/cilium/strerror/pkg/errname"
	"github.com/cilium/strerror/pkg/option"
)

// Print writes entries in the configured output format.
func Print(w io.Writer, entries []errname.Entry) error {
	return encoder.NewEncoder(w, option.Config.Output, option.Config.Color).Encode(entries)
}
