// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fieldview/colorscale"
	"cogentcore.org/fieldview/griddata"
	"cogentcore.org/fieldview/viewer"
)

// testGrid is a 3x3 grid with values 0..8 row-major and one NaN hole.
func testGrid() (*griddata.Grid, *griddata.Stats) {
	g := griddata.NewGrid([]float64{0, 1, 2}, []float64{0, 2, 4})
	g.Values[0] = []float64{0, 1, 2}
	g.Values[1] = []float64{3, math.NaN(), 5}
	g.Values[2] = []float64{6, 7, 8}
	return g, &griddata.Stats{Min: 0, Max: 8, Mean: 4, Std: 2.7}
}

func TestAssembleClamped(t *testing.T) {
	g, stats := testGrid()
	st := viewer.NewState("phi", 0, 0, 8).SetRange(2, 6)

	v := Assemble(g, stats, st)
	assert.Same(t, g, v.Grid, "unit scale factor keeps the cached grid")
	assert.Same(t, stats, v.Stats)

	// clamped mode displays exactly the selected range
	assert.Equal(t, 2.0, v.ZMin)
	assert.Equal(t, 6.0, v.ZMax)
	assert.Equal(t, 4.0, v.ZMid)

	require.Len(t, v.Scale, 5)
	assert.Equal(t, 0.0, v.Scale[0].Pos)
	assert.Equal(t, 1.0, v.Scale[4].Pos)

	assert.Equal(t, st.Snapshot(), v.State)
}

func TestAssembleFullScale(t *testing.T) {
	g, stats := testGrid()
	st := viewer.NewState("phi", 0, 0, 8).
		SetRange(2, 6).
		SetScaleMode(colorscale.FullScale)

	v := Assemble(g, stats, st)

	// full-scale mode displays the full data extent, with the selected
	// range as interior breakpoints
	assert.Equal(t, 0.0, v.ZMin)
	assert.Equal(t, 8.0, v.ZMax)
	assert.Len(t, v.Scale, 7)
}

func TestAssembleScaleFactor(t *testing.T) {
	g, stats := testGrid()
	st := viewer.NewState("eps", 0, 0, 8).SetRange(0, 8)
	st.ScaleFactor = 100

	v := Assemble(g, stats, st)
	assert.NotSame(t, g, v.Grid)
	assert.Equal(t, 300.0, v.Grid.Values[1][0])
	assert.Equal(t, 800.0, v.Stats.Max)

	// the range is in display units already and is not rescaled
	assert.Equal(t, 8.0, v.ZMax)
	// the cached grid is untouched
	assert.Equal(t, 3.0, g.Values[1][0])
}

func TestLineProfileHorizontal(t *testing.T) {
	g, _ := testGrid()

	// nearest row to y=1.7 is y=2
	p := LineProfile(g, viewer.Horizontal, 1.7)
	assert.Equal(t, 2.0, p.Coord)
	assert.Equal(t, []float64{0, 1, 2}, p.Positions)
	assert.Equal(t, 3.0, p.Values[0])
	assert.True(t, math.IsNaN(p.Values[1]))
	assert.Equal(t, 5.0, p.Values[2])
}

func TestLineProfileVertical(t *testing.T) {
	g, _ := testGrid()

	p := LineProfile(g, viewer.Vertical, 2.2)
	assert.Equal(t, 2.0, p.Coord)
	assert.Equal(t, []float64{0, 2, 4}, p.Positions)
	assert.Equal(t, []float64{2, 5, 8}, p.Values)
}

// An unplaced scan (NaN coordinate) takes the middle row or column.
func TestLineProfileUnplaced(t *testing.T) {
	g, _ := testGrid()

	p := LineProfile(g, viewer.Horizontal, math.NaN())
	assert.Equal(t, 2.0, p.Coord)

	p = LineProfile(g, viewer.Vertical, math.NaN())
	assert.Equal(t, 1.0, p.Coord)
}

func TestHistogram(t *testing.T) {
	g, _ := testGrid()

	edges, counts := Histogram(g, 4)
	require.Len(t, edges, 5)
	require.Len(t, counts, 4)

	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 8.0, edges[4])

	// 8 non-NaN values 0..8 minus the hole at 4: 0,1 | 2,3 | 5 | 6,7,8
	assert.Equal(t, []float64{2, 2, 1, 3}, counts)

	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 8.0, total)
}

func TestHistogramFlat(t *testing.T) {
	g := griddata.NewGrid([]float64{0, 1}, []float64{0, 1})
	g.Values[0] = []float64{5, 5}
	g.Values[1] = []float64{5, 5}

	edges, counts := Histogram(g, 2)
	require.Len(t, counts, 2)
	assert.Equal(t, 4.0, counts[0]+counts[1])
	assert.Equal(t, 5.0, edges[0])
}

func TestHistogramEmpty(t *testing.T) {
	g := griddata.NewGrid([]float64{0, 1}, []float64{0, 1})
	edges, counts := Histogram(g, 4)
	assert.Nil(t, edges)
	assert.Nil(t, counts)

	full, _ := testGrid()
	edges, counts = Histogram(full.Scaled(1), 0)
	assert.Nil(t, edges)
	assert.Nil(t, counts)
}
