// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "fmt"

// Lattice is an in-memory [Source] over a regular lattice: points at
// origin + index*spacing along each axis, X fastest (row-major linear
// indexing, per C / Go conventions). It backs tests and the demo command;
// file-format readers provide their own Source implementations.
type Lattice struct {
	id      string
	dims    [3]int
	origin  [3]float64
	spacing [3]float64
	arrays  map[string]Array
	names   []string
}

// NewLattice returns a lattice source with the given identity token,
// per-axis dimensions, origin, and spacing. Dimensions must be >= 1.
func NewLattice(id string, dims [3]int, origin, spacing [3]float64) (*Lattice, error) {
	for i, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("mesh: lattice %s: dimension %d along %s must be >= 1", id, d, Axis(i))
		}
	}
	return &Lattice{
		id:      id,
		dims:    dims,
		origin:  origin,
		spacing: spacing,
		arrays:  map[string]Array{},
	}, nil
}

// AddArray attaches a named value buffer with the given number of
// components per point. The buffer length must equal
// nx*ny*nz*components.
func (l *Lattice) AddArray(name string, components int, data []float64) error {
	if components < 1 {
		return fmt.Errorf("mesh: lattice %s: array %s: components must be >= 1", l.id, name)
	}
	want := l.NumPoints() * components
	if len(data) != want {
		return fmt.Errorf("mesh: lattice %s: array %s: have %d values, want %d", l.id, name, len(data), want)
	}
	if _, exists := l.arrays[name]; !exists {
		l.names = append(l.names, name)
	}
	l.arrays[name] = Array{Name: name, Components: components, Data: data}
	return nil
}

func (l *Lattice) FileID() string { return l.id }

func (l *Lattice) Dims() [3]int { return l.dims }

func (l *Lattice) Is3D() bool {
	return l.dims[0] > 1 && l.dims[1] > 1 && l.dims[2] > 1
}

func (l *Lattice) ArrayNames() []string {
	names := make([]string, len(l.names))
	copy(names, l.names)
	return names
}

func (l *Lattice) Array(name string) (Array, bool) {
	a, ok := l.arrays[name]
	return a, ok
}

func (l *Lattice) NumPoints() int {
	return l.dims[0] * l.dims[1] * l.dims[2]
}

func (l *Lattice) Point(i int) [3]float64 {
	nx, ny := l.dims[0], l.dims[1]
	ix := i % nx
	iy := (i / nx) % ny
	iz := i / (nx * ny)
	return [3]float64{
		l.origin[0] + float64(ix)*l.spacing[0],
		l.origin[1] + float64(iy)*l.spacing[1],
		l.origin[2] + float64(iz)*l.spacing[2],
	}
}

func (l *Lattice) Bounds() (min, max [3]float64) {
	min = l.origin
	for a := 0; a < 3; a++ {
		max[a] = l.origin[a] + float64(l.dims[a]-1)*l.spacing[a]
	}
	return min, max
}
