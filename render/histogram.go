// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"cogentcore.org/fieldview/griddata"
)

// Histogram bins the grid's values into the given number of equal-width
// bins over their extent, skipping NaN cells. It returns the bin edges
// (bins+1 values) and per-bin counts (bins values). A grid with no
// values, or fewer than one bin requested, yields nil slices.
func Histogram(g *griddata.Grid, bins int) (edges, counts []float64) {
	if bins < 1 {
		return nil, nil
	}
	var vals []float64
	for _, row := range g.Values {
		for _, v := range row {
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
	}
	if len(vals) == 0 {
		return nil, nil
	}
	sort.Float64s(vals)

	lo, hi := vals[0], vals[len(vals)-1]
	if hi == lo {
		hi = lo + 1
	}
	edges = floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram requires every value strictly below the last edge.
	edges[bins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(make([]float64, bins), edges, vals, nil)
	edges[bins] = hi
	return edges, counts
}
