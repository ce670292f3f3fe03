// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package encoder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cilium/strerror/pkg/errname"
	"github.com/cilium/strerror/pkg/logger"
	"github.com/cilium/strerror/pkg/logger/logfields"
	"github.com/cilium/strerror/pkg/strerror"
)

var (
	ErrInvalidOutput = errors.New("invalid output format")
	ErrInvalidColor  = errors.New("invalid color mode")
)

// Encoder writes a list of error entries.
type Encoder interface {
	Encode(entries []errname.Entry) error
}

// Format is the output format of an Encoder.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q, expected text, json or yaml", ErrInvalidOutput, s)
}

// ColorMode defines color mode flags for text output.
type ColorMode string

const (
	Always ColorMode = "always" // always enable colored output.
	Never  ColorMode = "never"  // disable colored output.
	Auto   ColorMode = "auto"   // automatically enable / disable colored output based on terminal settings.
)

func ParseColorMode(s string) (ColorMode, error) {
	switch c := ColorMode(s); c {
	case Always, Never, Auto:
		return c, nil
	}
	return "", fmt.Errorf("%w %q, expected always, never or auto", ErrInvalidColor, s)
}

// NewEncoder returns the Encoder for format f. colorMode only affects text.
func NewEncoder(w io.Writer, f Format, colorMode ColorMode) Encoder {
	switch f {
	case JSON:
		return &JSONEncoder{Writer: w}
	case YAML:
		return &YAMLEncoder{Writer: w}
	default:
		return NewTextEncoder(w, colorMode)
	}
}

// TextEncoder writes one "<code> <NAME> <message>" line per entry.
type TextEncoder struct {
	Writer  io.Writer
	Colorer *Colorer
}

func NewTextEncoder(w io.Writer, colorMode ColorMode) *TextEncoder {
	return &TextEncoder{
		Writer:  w,
		Colorer: NewColorer(colorMode),
	}
}

func (p *TextEncoder) Encode(entries []errname.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(p.Writer, p.entryToString(e)); err != nil {
			return err
		}
	}
	return nil
}

func (p *TextEncoder) entryToString(e errname.Entry) string {
	msg := e.Message
	if strerror.IsFallback(msg) {
		logger.GetLogger().WithField(logfields.Code, e.Code).Debug("message lookup failed, using fallback")
		msg = p.Colorer.Red.Sprint(msg)
	}
	if e.Name == "" {
		return fmt.Sprintf("%d %s", e.Code, msg)
	}
	return fmt.Sprintf("%d %s %s", e.Code, p.Colorer.Yellow.Sprint(e.Name), msg)
}

// JSONEncoder writes the entries as an indented JSON array.
type JSONEncoder struct {
	Writer io.Writer
}

func (p *JSONEncoder) Encode(entries []errname.Entry) error {
	if entries == nil {
		entries = []errname.Entry{}
	}
	enc := json.NewEncoder(p.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// YAMLEncoder writes the entries as a YAML sequence.
type YAMLEncoder struct {
	Writer io.Writer
}

func (p *YAMLEncoder) Encode(entries []errname.Entry) error {
	if entries == nil {
		entries = []errname.Entry{}
	}
	enc := yaml.NewEncoder(p.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
