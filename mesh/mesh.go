// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh defines the read-only contract between the viewer core and
// structured simulation output: grid dimensions, named scalar and tensor
// value buffers addressable by linear point index, point coordinates, and
// a file-identity token used for caching. The core defines no on-disk
// format; parsers implement [Source] and are treated as pure, possibly
// slow, reads.
package mesh

import "fmt"

// Axis is one of the three lattice axes.
type Axis int32

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int32(a))
}

// AxisFromString returns the axis named by s ("x", "y", or "z").
func AxisFromString(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "y", "Y":
		return Y, nil
	case "z", "Z":
		return Z, nil
	}
	return X, fmt.Errorf("mesh: invalid axis name %q", s)
}

// Others returns the two remaining axes, in axis order. These become the
// in-plane coordinate axes when slicing along a.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}

// Array is a named value buffer with Components interleaved values per
// point. Scalar arrays have Components == 1; a symmetric stress tensor
// stored per point has Components == 6, etc.
type Array struct {
	Name       string
	Components int
	Data       []float64
}

// NumPoints returns the number of points covered by the buffer.
func (a Array) NumPoints() int {
	if a.Components <= 0 {
		return 0
	}
	return len(a.Data) / a.Components
}

// Source is the external mesh collaborator. Implementations must behave as
// pure reads: repeated calls with the same receiver return the same data.
// A Source is identified by its FileID, which keys all caching; replacing
// the underlying file requires explicit cache invalidation.
type Source interface {
	// FileID returns the identity token for the underlying file.
	FileID() string

	// Dims returns the per-axis lattice dimensions (nx, ny, nz).
	Dims() [3]int

	// Is3D reports whether the mesh is volumetric: more than one
	// lattice plane along every axis.
	Is3D() bool

	// ArrayNames lists the available value arrays.
	ArrayNames() []string

	// Array returns the named value buffer, if present.
	Array(name string) (Array, bool)

	// NumPoints returns the total number of lattice points.
	NumPoints() int

	// Point returns the spatial coordinates of the i-th point.
	Point(i int) [3]float64

	// Bounds returns the spatial bounding box of all points.
	Bounds() (min, max [3]float64)
}

// Selector identifies the quantity to visualize: a named array and,
// for tensor arrays, the component to extract. Component < 0 selects a
// plain scalar array. Selector is comparable and, combined with a FileID
// and slice index, uniquely keys the slice cache.
type Selector struct {
	Array     string
	Component int
}

// Scalar returns a Selector for the plain scalar array with the given name.
func Scalar(name string) Selector {
	return Selector{Array: name, Component: -1}
}

// Tensor returns a Selector for one component of a tensor array.
func Tensor(name string, component int) Selector {
	return Selector{Array: name, Component: component}
}

// IsTensor reports whether the selector addresses a tensor component.
func (s Selector) IsTensor() bool {
	return s.Component >= 0
}

func (s Selector) String() string {
	if s.IsTensor() {
		return fmt.Sprintf("%s[%d]", s.Array, s.Component)
	}
	return s.Array
}

// Value returns the selected value of the i-th point in the given array.
func (s Selector) Value(a Array, i int) float64 {
	if s.Component < 0 {
		return a.Data[i*a.Components]
	}
	return a.Data[i*a.Components+s.Component]
}

// Resolve fetches the array addressed by the selector from src, verifying
// that the component exists. It returns a [FieldNotFoundError] if the
// array is absent or the component is out of range.
func (s Selector) Resolve(src Source) (Array, error) {
	a, ok := src.Array(s.Array)
	if !ok {
		return Array{}, &FieldNotFoundError{File: src.FileID(), Array: s.Array, Component: s.Component}
	}
	if s.Component >= a.Components {
		return Array{}, &FieldNotFoundError{File: src.FileID(), Array: s.Array, Component: s.Component}
	}
	return a, nil
}

// FieldNotFoundError reports a requested array or tensor component that is
// absent from a mesh source. It is non-fatal: callers render it as a
// message and keep the previous view.
type FieldNotFoundError struct {
	File      string
	Array     string
	Component int
}

func (e *FieldNotFoundError) Error() string {
	if e.Component >= 0 {
		return fmt.Sprintf("mesh: field %s[%d] not found in %s", e.Array, e.Component, e.File)
	}
	return fmt.Sprintf("mesh: field %s not found in %s", e.Array, e.File)
}
