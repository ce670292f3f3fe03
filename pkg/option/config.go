// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package option

import (
	"github.com/sirupsen/logrus"

	"github.com/cilium/strerror/pkg/encoder"
	"github.com/cilium/strerror/pkg/logger"
)

// Config contains all the configuration used by the strerror CLI.
var Config = config{
	// Initialize global defaults below.

	Output: encoder.Text,
	Color:  encoder.Auto,

	LogOpts: logger.LogOptions{Level: logrus.InfoLevel, Format: "text"},
}

type config struct {
	Debug  bool
	Output encoder.Format
	Color  encoder.ColorMode

	LogOpts logger.LogOptions
}
