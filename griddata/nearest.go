// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package griddata

import (
	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// fillNearest is the degenerate-input fallback: when no triangulation
// exists (fewer than 3 non-collinear samples), grid nodes within one cell
// diagonal of a sample take that sample's value and everything else stays
// NaN. This is deliberately not extrapolation: the filled band hugs the
// samples themselves.
func fillNearest(g *Grid, pts []delaunay.Point, vals []float64) {
	if len(pts) == 0 {
		return
	}
	samples := make(nearSamples, len(pts))
	for i, p := range pts {
		samples[i] = nearSample{x: p.X, y: p.Y, v: vals[i]}
	}
	tree := kdtree.New(samples, false)

	dx := g.XS[1] - g.XS[0]
	dy := g.YS[1] - g.YS[0]
	maxD2 := dx*dx + dy*dy
	for r, gy := range g.YS {
		for c, gx := range g.XS {
			got, d2 := tree.Nearest(nearSample{x: gx, y: gy})
			if d2 <= maxD2 {
				g.Values[r][c] = got.(nearSample).v
			}
		}
	}
}

// nearSample is a 2D sample point in a kd-tree.
type nearSample struct {
	x, y, v float64
}

func (p nearSample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(nearSample)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("illegal dimension")
	}
}

func (p nearSample) Dims() int { return 2 }

// Distance returns the squared Euclidean distance.
func (p nearSample) Distance(c kdtree.Comparable) float64 {
	q := c.(nearSample)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

type nearSamples []nearSample

func (p nearSamples) Index(i int) kdtree.Comparable         { return p[i] }
func (p nearSamples) Len() int                              { return len(p) }
func (p nearSamples) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p nearSamples) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(nearPlane{nearSamples: p, Dim: d}, kdtree.MedianOfRandoms(nearPlane{nearSamples: p, Dim: d}, 100))
}

// nearPlane implements sort.Interface and kdtree.SortSlicer along a
// single dimension.
type nearPlane struct {
	nearSamples
	kdtree.Dim
}

func (p nearPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.nearSamples[i].x < p.nearSamples[j].x
	case 1:
		return p.nearSamples[i].y < p.nearSamples[j].y
	default:
		panic("illegal dimension")
	}
}

func (p nearPlane) Slice(start, end int) kdtree.SortSlicer {
	p.nearSamples = p.nearSamples[start:end]
	return p
}

func (p nearPlane) Swap(i, j int) {
	p.nearSamples[i], p.nearSamples[j] = p.nearSamples[j], p.nearSamples[i]
}
