// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorscale builds piecewise-linear color scales from 5-color
// palettes, a value range, and a display mode, including the
// breakpoint-driven full-scale construction used to highlight a value
// band inside the full data range.
package colorscale

import (
	"image/color"
	"log/slog"
	"sort"
)

// Palette is exactly 5 ordered colors. Index 2 is the conventional
// neutral midpoint (usually white or near-white).
type Palette [5]color.RGBA

// Built-in palette names. These form a closed set; [Register] is the
// extension point for custom 5-color tuples.
const (
	BlueToRed        = "blue-to-red"
	SpectralLowBlue  = "spectral-lowblue"
	CoolWarmExtended = "cool-warm-extended"
	AquaFire         = "aqua-fire"
	Steel            = "steel"
	IceSunset        = "ice-sunset"
)

// Default is the palette used when no name, or an unknown name, is given.
const Default = AquaFire

// palettes holds the built-in set plus any registered custom palettes.
var palettes = map[string]Palette{
	BlueToRed:        {hex("#a51717"), hex("#fbbc3c"), hex("#fffbe0"), hex("#00afb8"), hex("#00328f")},
	SpectralLowBlue:  {hex("#5e4fa2"), hex("#3f96b7"), hex("#b3e0a3"), hex("#fdd280"), hex("#9e0142")},
	CoolWarmExtended: {hex("#000059"), hex("#295698"), hex("#fcf5e6"), hex("#f7d5b2"), hex("#590c36")},
	AquaFire:         {hex("#00328f"), hex("#00afb8"), hex("#fffbdf"), hex("#ffbc3c"), hex("#a51717")},
	Steel:            {hex("#0b2545"), hex("#3e5c76"), hex("#f6f9ff"), hex("#f4c06a"), hex("#b3541e")},
	IceSunset:        {hex("#1c3d5a"), hex("#3aa0c8"), hex("#ffffff"), hex("#f9d976"), hex("#f47068")},
}

// Register adds a custom palette under the given name, replacing any
// existing palette with that name. Not safe for concurrent use with
// [Get]; register at startup.
func Register(name string, p Palette) {
	palettes[name] = p
}

// Get returns the named palette. An unknown name logs an error and falls
// back to [Default] rather than failing: palette choice is cosmetic.
func Get(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	slog.Error("colorscale: unknown palette name", "name", name)
	return palettes[Default]
}

// Names returns the available palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// hex parses #rrggbb. Palette literals are package-internal constants, so
// a malformed literal is a programming error and panics.
func hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		panic("colorscale: malformed hex color " + s)
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		v[i] = hexByte(s[1+2*i])<<4 | hexByte(s[2+2*i])
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 255}
}

func hexByte(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	panic("colorscale: malformed hex digit")
}
