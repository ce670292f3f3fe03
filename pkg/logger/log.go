// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// DefaultLogger is the CLI logger. It is not the logrus standard logger, so
// libraries logging through logrus never end up in command output.
var DefaultLogger = newLogger(os.Stderr)

// LogOptions are validated logging settings, see ParseLogOptions.
type LogOptions struct {
	Level  logrus.Level
	Format string
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(formatter(formatText))
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

func formatter(format string) logrus.Formatter {
	if format == formatJSON {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{DisableColors: true}
}

// ParseLogOptions checks the user supplied level and format. Empty strings
// select info and text.
func ParseLogOptions(level, format string) (LogOptions, error) {
	o := LogOptions{Level: logrus.InfoLevel, Format: formatText}

	if level != "" {
		l, err := logrus.ParseLevel(level)
		if err != nil {
			return LogOptions{}, fmt.Errorf("%w '%s'", ErrInvalidLevel, level)
		}
		o.Level = l
	}

	if format != "" {
		switch f := strings.ToLower(format); f {
		case formatText, formatJSON:
			o.Format = f
		default:
			return LogOptions{}, fmt.Errorf("%w '%s', expected 'text' or 'json'", ErrInvalidFormat, format)
		}
	}
	return o, nil
}

// SetupLogging sends DefaultLogger to w, the error stream of the running
// command, and applies o. debug wins over o.Level.
func SetupLogging(o LogOptions, debug bool, w io.Writer) {
	DefaultLogger.SetOutput(w)
	DefaultLogger.SetFormatter(formatter(o.Format))
	if debug {
		DefaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		DefaultLogger.SetLevel(o.Level)
	}

	// keep the logrus standard logger quiet
	logrus.SetLevel(logrus.PanicLevel)
}

// GetLogger returns the DefaultLogger that was previously setup
func GetLogger() logrus.FieldLogger {
	return DefaultLogger
}
