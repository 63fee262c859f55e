// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"

	"cogentcore.org/fieldview/griddata"
	"cogentcore.org/fieldview/viewer"
)

// Profile is a 1D scan through the grid: values along one row or column,
// with the in-scan axis positions.
type Profile struct {
	// Positions are the coordinates along the scan.
	Positions []float64

	// Values are the grid values along the scan; NaN where the grid has
	// no value.
	Values []float64

	// Coord is the cross-axis coordinate the scan was taken at.
	Coord float64
}

// LineProfile extracts the grid row (horizontal scan) or column (vertical
// scan) nearest to coord. A NaN coord means the scan has not been placed
// yet and takes the middle row or column.
func LineProfile(g *griddata.Grid, axis viewer.ScanAxis, coord float64) Profile {
	if axis == viewer.Horizontal {
		r := nearestIndex(g.YS, coord)
		return Profile{Positions: g.XS, Values: g.Values[r], Coord: g.YS[r]}
	}
	c := nearestIndex(g.XS, coord)
	vals := make([]float64, len(g.YS))
	for r := range g.Values {
		vals[r] = g.Values[r][c]
	}
	return Profile{Positions: g.YS, Values: vals, Coord: g.XS[c]}
}

// nearestIndex returns the index of the axis value closest to coord, or
// the middle index when coord is NaN.
func nearestIndex(axis []float64, coord float64) int {
	if math.IsNaN(coord) {
		return len(axis) / 2
	}
	best := 0
	bestD := math.Abs(axis[0] - coord)
	for i, v := range axis[1:] {
		if d := math.Abs(v - coord); d < bestD {
			best, bestD = i+1, d
		}
	}
	return best
}
