// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package encoder

import (
	"github.com/fatih/color"
)

type Colorer struct {
	Colors []*color.Color
	Red    *color.Color
	Yellow *color.Color
}

func NewColorer(when ColorMode) *Colorer {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	c := &Colorer{
		Red:    red,
		Yellow: yellow,
	}

	c.Colors = []*color.Color{red, yellow}
	switch when {
	case Always:
		c.enable()
	case Never:
		c.disable()
	case Auto:
		c.auto()
	}
	return c
}

func (c *Colorer) auto() {
	for _, v := range c.Colors {
		if color.NoColor { // NoColor is global and set dynamically
			v.DisableColor()
		} else {
			v.EnableColor()
		}
	}
}

func (c *Colorer) enable() {
	for _, v := range c.Colors {
		v.EnableColor()
	}
}

func (c *Colorer) disable() {
	for _, v := range c.Colors {
		v.DisableColor()
	}
}
