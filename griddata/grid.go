// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package griddata resamples unstructured 2D point samples onto uniform
// rectangular grids using piecewise-linear scattered-data interpolation.
// NaN marks grid cells with no value: outside the convex hull of the
// source samples, or explicitly masked. Extrapolation is never performed.
package griddata

import (
	"fmt"
	"math"
	"sort"
)

// Grid is a uniform rectangular value matrix. XS and YS are strictly
// increasing axis coordinates; Values is indexed [row][col] == [y][x].
// NaN cells carry no value.
type Grid struct {
	XS     []float64
	YS     []float64
	Values [][]float64
}

// NewGrid returns an all-NaN grid over the given axes. It panics if either
// axis is not strictly increasing.
func NewGrid(xs, ys []float64) *Grid {
	g := &Grid{XS: xs, YS: ys, Values: make([][]float64, len(ys))}
	for r := range g.Values {
		row := make([]float64, len(xs))
		for c := range row {
			row[c] = math.NaN()
		}
		g.Values[r] = row
	}
	g.Check()
	return g
}

// Check panics if the grid shape or axis ordering invariants are violated.
// A malformed grid is a programming error, not a data condition.
func (g *Grid) Check() {
	if len(g.Values) != len(g.YS) {
		panic(fmt.Sprintf("griddata: grid has %d rows, want %d", len(g.Values), len(g.YS)))
	}
	for r, row := range g.Values {
		if len(row) != len(g.XS) {
			panic(fmt.Sprintf("griddata: grid row %d has %d cols, want %d", r, len(row), len(g.XS)))
		}
	}
	for i := 1; i < len(g.XS); i++ {
		if g.XS[i] <= g.XS[i-1] {
			panic("griddata: grid x axis is not strictly increasing")
		}
	}
	for i := 1; i < len(g.YS); i++ {
		if g.YS[i] <= g.YS[i-1] {
			panic("griddata: grid y axis is not strictly increasing")
		}
	}
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (nx, ny int) {
	return len(g.XS), len(g.YS)
}

// Bilinear returns the bilinearly interpolated value at (x, y), or NaN if
// the point is outside the grid or any surrounding cell corner is NaN.
func (g *Grid) Bilinear(x, y float64) float64 {
	ci, cf, ok := locate(g.XS, x)
	if !ok {
		return math.NaN()
	}
	ri, rf, ok := locate(g.YS, y)
	if !ok {
		return math.NaN()
	}
	v00 := g.Values[ri][ci]
	v01 := g.Values[ri][ci+1]
	v10 := g.Values[ri+1][ci]
	v11 := g.Values[ri+1][ci+1]
	return (v00*(1-cf)+v01*cf)*(1-rf) + (v10*(1-cf)+v11*cf)*rf
}

// locate finds the segment of a strictly increasing axis containing v,
// returning the lower index and the fractional position within it.
func locate(axis []float64, v float64) (i int, frac float64, ok bool) {
	n := len(axis)
	if n < 2 || v < axis[0] || v > axis[n-1] {
		return 0, 0, false
	}
	i = sort.SearchFloat64s(axis, v) // first index with axis[i] >= v
	if i > 0 {
		i--
	}
	if i > n-2 {
		i = n - 2
	}
	frac = (v - axis[i]) / (axis[i+1] - axis[i])
	return i, frac, true
}

// MaskRange returns a copy of the grid with every cell outside [lo, hi]
// set to NaN, for banded display overlays. Axis slices are shared.
func (g *Grid) MaskRange(lo, hi float64) *Grid {
	m := &Grid{XS: g.XS, YS: g.YS, Values: make([][]float64, len(g.Values))}
	for r, row := range g.Values {
		mr := make([]float64, len(row))
		for c, v := range row {
			if v < lo || v > hi {
				mr[c] = math.NaN()
			} else {
				mr[c] = v
			}
		}
		m.Values[r] = mr
	}
	return m
}

// Scaled returns a copy of the grid with every value multiplied by f,
// used when a field has a display scale factor (e.g. strain in percent).
// Axis slices are shared; NaN cells stay NaN.
func (g *Grid) Scaled(f float64) *Grid {
	if f == 1 {
		return g
	}
	s := &Grid{XS: g.XS, YS: g.YS, Values: make([][]float64, len(g.Values))}
	for r, row := range g.Values {
		sr := make([]float64, len(row))
		for c, v := range row {
			sr[c] = v * f
		}
		s.Values[r] = sr
	}
	return s
}
