// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"fmt"
	"image/color"
)

// Mode selects how the palette is laid out over the data.
type Mode int32

const (
	// Clamped spreads the five palette colors evenly over the selected
	// value range; the renderer clamps out-of-range values to the ends.
	Clamped Mode = iota

	// FullScale lays the scale over the full data range, with the
	// selected range acting as breakpoints inside it: values under the
	// low breakpoint shade toward the palette's under-range color, values
	// over the high breakpoint toward its over-range color.
	FullScale
)

func (m Mode) String() string {
	switch m {
	case Clamped:
		return "clamped"
	case FullScale:
		return "full-scale"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "clamped":
		*m = Clamped
	case "full-scale":
		*m = FullScale
	default:
		return fmt.Errorf("colorscale: invalid mode %q", text)
	}
	return nil
}

// Anchor is one control point of a piecewise-linear color gradient.
type Anchor struct {
	Pos   float64
	Color color.RGBA
}

// Scale is an ordered anchor list: positions strictly increasing, first
// 0, last 1.
type Scale []Anchor

// New builds the color scale for the given data extent, selected range,
// palette, and mode.
//
// Degenerate data (dataMax == dataMin) always yields a flat two-anchor
// scale in the palette's neutral midpoint; a flat field has no gradient
// to show and this is not an error.
//
// Clamped mode spreads the five palette colors at positions 0, 0.25, 0.5,
// 0.75, 1; the displayed value range is exactly [rangeLo, rangeHi] and
// out-of-range values are clamped by the renderer, not here.
//
// FullScale mode normalizes rangeLo and rangeHi against
// [dataMin, dataMax] and uses them as breakpoints, inserting neutral
// midpoints between bands. With both breakpoints interior this produces
// the seven-anchor under/main/over layout; with neither it is the plain
// three-anchor low/neutral/high gradient.
func New(dataMin, dataMax, rangeLo, rangeHi float64, pal Palette, mode Mode) Scale {
	if dataMax == dataMin {
		return Scale{{0, pal[2]}, {1, pal[2]}}
	}
	if mode == Clamped {
		return Scale{
			{0, pal[0]},
			{0.25, pal[1]},
			{0.5, pal[2]},
			{0.75, pal[3]},
			{1, pal[4]},
		}
	}

	normalize := func(v float64) float64 {
		n := (v - dataMin) / (dataMax - dataMin)
		if n < 0 {
			return 0
		}
		if n > 1 {
			return 1
		}
		return n
	}
	pLo := normalize(rangeLo)
	pHi := normalize(rangeHi)
	under := rangeLo > dataMin
	over := rangeHi < dataMax

	switch {
	case under && over:
		return Scale{
			{0, pal[0]},
			{pLo / 2, pal[2]},
			{pLo, pal[1]},
			{(pLo + pHi) / 2, pal[2]},
			{pHi, pal[3]},
			{(pHi + 1) / 2, pal[2]},
			{1, pal[4]},
		}
	case under:
		return Scale{
			{0, pal[0]},
			{pLo / 2, pal[2]},
			{pLo, pal[1]},
			{(pLo + 1) / 2, pal[2]},
			{1, pal[3]},
		}
	case over:
		return Scale{
			{0, pal[1]},
			{pHi / 2, pal[2]},
			{pHi, pal[3]},
			{(pHi + 1) / 2, pal[2]},
			{1, pal[4]},
		}
	default:
		return Scale{
			{0, pal[1]},
			{0.5, pal[2]},
			{1, pal[3]},
		}
	}
}

// Map returns the color at normalized position pos, linearly blending
// between the surrounding anchors; positions outside [0, 1] take the end
// anchor colors.
func (s Scale) Map(pos float64) color.RGBA {
	if len(s) == 0 {
		return color.RGBA{}
	}
	if pos <= s[0].Pos {
		return s[0].Color
	}
	last := len(s) - 1
	if pos >= s[last].Pos {
		return s[last].Color
	}
	i := 1
	for i < last && pos > s[i].Pos {
		i++
	}
	lo, hi := s[i-1], s[i]
	if hi.Pos == lo.Pos {
		return hi.Color
	}
	t := (pos - lo.Pos) / (hi.Pos - lo.Pos)
	return color.RGBA{
		R: lerp8(lo.Color.R, hi.Color.R, t),
		G: lerp8(lo.Color.G, hi.Color.G, t),
		B: lerp8(lo.Color.B, hi.Color.B, t),
		A: lerp8(lo.Color.A, hi.Color.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}
