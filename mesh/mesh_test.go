// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticePoints(t *testing.T) {
	l, err := NewLattice("t", [3]int{3, 2, 2}, [3]float64{1, 10, 100}, [3]float64{0.5, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 12, l.NumPoints())
	assert.True(t, l.Is3D())

	// x fastest, then y, then z
	assert.Equal(t, [3]float64{1, 10, 100}, l.Point(0))
	assert.Equal(t, [3]float64{1.5, 10, 100}, l.Point(1))
	assert.Equal(t, [3]float64{1, 11, 100}, l.Point(3))
	assert.Equal(t, [3]float64{1, 10, 102}, l.Point(6))
	assert.Equal(t, [3]float64{2, 11, 102}, l.Point(11))

	min, max := l.Bounds()
	assert.Equal(t, [3]float64{1, 10, 100}, min)
	assert.Equal(t, [3]float64{2, 11, 102}, max)
}

func TestLatticeValidation(t *testing.T) {
	_, err := NewLattice("t", [3]int{0, 2, 2}, [3]float64{}, [3]float64{1, 1, 1})
	assert.Error(t, err)

	l, err := NewLattice("t", [3]int{2, 2, 1}, [3]float64{}, [3]float64{1, 1, 1})
	require.NoError(t, err)
	assert.False(t, l.Is3D())

	assert.Error(t, l.AddArray("phi", 1, make([]float64, 3)))
	assert.Error(t, l.AddArray("phi", 0, make([]float64, 4)))
	assert.NoError(t, l.AddArray("phi", 1, make([]float64, 4)))
	assert.NoError(t, l.AddArray("stress", 6, make([]float64, 24)))
	assert.Equal(t, []string{"phi", "stress"}, l.ArrayNames())
}

func TestSelector(t *testing.T) {
	a := Array{Name: "stress", Components: 3, Data: []float64{1, 2, 3, 4, 5, 6}}

	s := Tensor("stress", 2)
	assert.True(t, s.IsTensor())
	assert.Equal(t, "stress[2]", s.String())
	assert.Equal(t, 3.0, s.Value(a, 0))
	assert.Equal(t, 6.0, s.Value(a, 1))

	sc := Scalar("phi")
	assert.False(t, sc.IsTensor())
	assert.Equal(t, "phi", sc.String())
	b := Array{Name: "phi", Components: 1, Data: []float64{7, 8}}
	assert.Equal(t, 8.0, sc.Value(b, 1))
}

func TestSelectorResolve(t *testing.T) {
	l, err := NewLattice("t", [3]int{2, 1, 1}, [3]float64{}, [3]float64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, l.AddArray("phi", 1, []float64{0, 1}))

	_, err = Scalar("phi").Resolve(l)
	assert.NoError(t, err)

	_, err = Scalar("missing").Resolve(l)
	var fnf *FieldNotFoundError
	require.True(t, errors.As(err, &fnf))
	assert.Equal(t, "missing", fnf.Array)
	assert.Equal(t, "t", fnf.File)

	// component beyond the array's width is also a missing field
	_, err = Tensor("phi", 3).Resolve(l)
	assert.True(t, errors.As(err, &fnf))
}
