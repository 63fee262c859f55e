// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package griddata

import (
	"math"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/floats"
)

// baryEps absorbs rounding when classifying grid nodes on triangle edges.
const baryEps = 1e-9

// Interpolate resamples unstructured (x, y, v) samples onto a uniform
// resolution x resolution grid spanning their bounding box, using
// piecewise-linear interpolation over the Delaunay triangulation of the
// samples. Grid nodes outside the convex hull are NaN: values are never
// extrapolated. Stats come from the raw sample values and are independent
// of resolution.
//
// With fewer than 3 non-collinear samples no triangulation exists; the
// grid then falls back to nearest-sample values within one cell diagonal
// of a sample and stays NaN elsewhere. An empty input yields an all-NaN
// grid over a unit box. Interpolate never fails on degenerate input.
func Interpolate(x, y, v []float64, resolution int) (*Grid, *Stats) {
	if len(x) != len(v) || len(y) != len(v) {
		panic("griddata: sample coordinate and value lengths differ")
	}
	if resolution < 2 {
		resolution = 2
	}

	stats := NewStats(v)
	if len(v) == 0 {
		return NewGrid(span(0, 1, resolution), span(0, 1, resolution)), stats
	}

	xmin, xmax := pad(floats.Min(x), floats.Max(x))
	ymin, ymax := pad(floats.Min(y), floats.Max(y))
	g := NewGrid(span(xmin, xmax, resolution), span(ymin, ymax, resolution))

	pts, vals := dedupe(x, y, v)
	tri, err := triangulate(pts)
	if err != nil || len(tri.Triangles) == 0 {
		fillNearest(g, pts, vals)
		g.Check()
		return g, stats
	}

	for t := 0; t < len(tri.Triangles); t += 3 {
		ia, ib, ic := tri.Triangles[t], tri.Triangles[t+1], tri.Triangles[t+2]
		fillTriangle(g, pts[ia], pts[ib], pts[ic], vals[ia], vals[ib], vals[ic])
	}
	g.Check()
	return g, stats
}

// span returns n uniformly spaced values from lo to hi inclusive.
func span(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// pad widens a degenerate (zero-width) bounding box interval so the grid
// axes stay strictly increasing.
func pad(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	return lo - 0.5, hi + 0.5
}

// dedupe drops samples at exactly repeated coordinates, keeping the first,
// since coincident points break triangulation without adding information.
func dedupe(x, y, v []float64) ([]delaunay.Point, []float64) {
	seen := make(map[[2]float64]bool, len(v))
	pts := make([]delaunay.Point, 0, len(v))
	vals := make([]float64, 0, len(v))
	for i := range v {
		key := [2]float64{x[i], y[i]}
		if seen[key] {
			continue
		}
		seen[key] = true
		pts = append(pts, delaunay.Point{X: x[i], Y: y[i]})
		vals = append(vals, v[i])
	}
	return pts, vals
}

func triangulate(pts []delaunay.Point) (*delaunay.Triangulation, error) {
	if len(pts) < 3 {
		return &delaunay.Triangulation{}, nil
	}
	return delaunay.Triangulate(pts)
}

// fillTriangle writes barycentric-interpolated values at every grid node
// inside the triangle (a, b, c). Nodes exactly on shared edges may be
// written by both adjacent triangles with the same value.
func fillTriangle(g *Grid, a, b, c delaunay.Point, va, vb, vc float64) {
	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if det == 0 {
		return
	}

	c0, c1 := axisRange(g.XS, min3(a.X, b.X, c.X), max3(a.X, b.X, c.X))
	r0, r1 := axisRange(g.YS, min3(a.Y, b.Y, c.Y), max3(a.Y, b.Y, c.Y))
	for r := r0; r <= r1; r++ {
		gy := g.YS[r]
		for col := c0; col <= c1; col++ {
			gx := g.XS[col]
			w1 := ((b.Y-c.Y)*(gx-c.X) + (c.X-b.X)*(gy-c.Y)) / det
			w2 := ((c.Y-a.Y)*(gx-c.X) + (a.X-c.X)*(gy-c.Y)) / det
			w3 := 1 - w1 - w2
			if w1 < -baryEps || w2 < -baryEps || w3 < -baryEps {
				continue
			}
			g.Values[r][col] = w1*va + w2*vb + w3*vc
		}
	}
}

// axisRange returns the inclusive index range of axis values within
// [lo, hi] on a strictly increasing axis, generous by construction: the
// barycentric test does the exact inclusion.
func axisRange(axis []float64, lo, hi float64) (int, int) {
	i0 := 0
	for i0 < len(axis) && axis[i0] < lo {
		i0++
	}
	i1 := len(axis) - 1
	for i1 >= 0 && axis[i1] > hi {
		i1--
	}
	return i0, i1
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
