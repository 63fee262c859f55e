// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicer extracts 2D cross-sections of structured fields as
// unstructured point samples, ready for scattered-to-grid interpolation.
package slicer

import (
	"math"

	"cogentcore.org/fieldview/mesh"
)

// Sample is an unordered set of (x, y, value) triples in the cut plane.
// It is ephemeral: produced by [Extract] and consumed immediately by
// interpolation. The three slices are parallel and equal in length.
type Sample struct {
	X []float64
	Y []float64
	V []float64
}

// Len returns the number of samples.
func (s *Sample) Len() int { return len(s.V) }

func (s *Sample) add(x, y, v float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
	s.V = append(s.V, v)
}

// spreadEps is the per-axis spatial variation below which an axis is
// considered flat when locating the plane of a 2D mesh.
const spreadEps = 1e-10

// Extract returns the cut-plane samples of the selected field.
//
// For non-volumetric meshes, axis and index are ignored and the whole 2D
// field is returned, with the two axes showing spatial variation as the
// output coordinates (defaulting to X and Y if fewer than two vary).
//
// For volumetric meshes, index is clamped to [0, dims[axis]-1] and the
// cut-plane coordinate is the linear interpolation of the axis bounds at
// index/(dim-1); points within half a lattice spacing of the plane are
// selected, and the two remaining axes (in axis order) become the output
// coordinates, so the slicing-axis coordinate never appears in the output.
//
// An absent array or tensor component yields a [mesh.FieldNotFoundError].
// A selection matching no points returns an empty Sample, not an error.
func Extract(src mesh.Source, axis mesh.Axis, index int, sel mesh.Selector) (*Sample, error) {
	arr, err := sel.Resolve(src)
	if err != nil {
		return nil, err
	}
	if !src.Is3D() {
		return extract2D(src, sel, arr), nil
	}

	dims := src.Dims()
	d := dims[axis]
	if index < 0 {
		index = 0
	}
	if index > d-1 {
		index = d - 1
	}

	bmin, bmax := src.Bounds()
	span := bmax[axis] - bmin[axis]
	denom := float64(d - 1)
	if denom < 1 {
		denom = 1
	}
	plane := bmin[axis] + span*float64(index)/denom

	// Half a lattice spacing selects exactly one plane of points while
	// absorbing rounding in the plane coordinate.
	tol := 0.5 * span / denom

	a1, a2 := axis.Others()
	n := src.NumPoints()
	s := &Sample{}
	for i := 0; i < n; i++ {
		p := src.Point(i)
		if math.Abs(p[axis]-plane) > tol {
			continue
		}
		s.add(p[a1], p[a2], sel.Value(arr, i))
	}
	return s, nil
}

// extract2D returns the whole field of a non-volumetric mesh, choosing the
// two axes with spatial variation as the output coordinates.
func extract2D(src mesh.Source, sel mesh.Selector, arr mesh.Array) *Sample {
	bmin, bmax := src.Bounds()
	var active []mesh.Axis
	for a := mesh.X; a <= mesh.Z; a++ {
		if bmax[a]-bmin[a] > spreadEps {
			active = append(active, a)
		}
	}
	if len(active) < 2 {
		active = []mesh.Axis{mesh.X, mesh.Y}
	}
	a1, a2 := active[0], active[1]

	n := src.NumPoints()
	s := &Sample{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
		V: make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		p := src.Point(i)
		s.add(p[a1], p[a2], sel.Value(arr, i))
	}
	return s
}
