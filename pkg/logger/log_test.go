// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger(t *testing.T) {
	t.Cleanup(func() {
		DefaultLogger = newLogger(os.Stderr)
	})
}

func TestParseLogOptions(t *testing.T) {
	var tests = []struct {
		level  string
		format string
		opts   LogOptions
	}{
		{"", "", LogOptions{Level: logrus.InfoLevel, Format: formatText}},
		{"debug", "JSON", LogOptions{Level: logrus.DebugLevel, Format: formatJSON}},
		{"WARN", "text", LogOptions{Level: logrus.WarnLevel, Format: formatText}},
	}

	for _, test := range tests {
		opts, err := ParseLogOptions(test.level, test.format)
		require.NoError(t, err, "level %q format %q", test.level, test.format)
		assert.Equal(t, test.opts, opts)
	}
}

func TestParseLogOptionsInvalid(t *testing.T) {
	_, err := ParseLogOptions("loud", "")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = ParseLogOptions("", "xml")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSetupLogging(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetupLogging(LogOptions{Level: logrus.WarnLevel, Format: formatText}, false, &buf)
	assert.Equal(t, logrus.WarnLevel, DefaultLogger.GetLevel())

	GetLogger().Info("dropped")
	assert.Empty(t, buf.String())

	SetupLogging(LogOptions{Level: logrus.WarnLevel, Format: formatText}, true, &buf)
	assert.Equal(t, logrus.DebugLevel, DefaultLogger.GetLevel())

	GetLogger().Debug("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestSetupLoggingJSON(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetupLogging(LogOptions{Level: logrus.InfoLevel, Format: formatJSON}, false, &buf)

	GetLogger().WithField("code", 2).Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, float64(2), line["code"])
}
