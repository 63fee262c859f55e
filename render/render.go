// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render assembles the cached grid, its statistics, and the panel
// state into a renderable description: the value matrix, the color scale,
// and the displayed value window. It performs no drawing.
package render

import (
	"cogentcore.org/fieldview/colorscale"
	"cogentcore.org/fieldview/griddata"
	"cogentcore.org/fieldview/viewer"
)

// View is the renderable description of one panel: everything a heatmap
// renderer needs, with no rendering performed here.
type View struct {
	// Grid is the display-scaled value matrix.
	Grid *griddata.Grid

	// Stats are the display-scaled slice statistics.
	Stats *griddata.Stats

	// Scale is the color scale for the current palette, range, and mode.
	Scale colorscale.Scale

	// ZMin, ZMax bound the displayed value window; ZMid centers it.
	ZMin, ZMax, ZMid float64

	// State is the serializable panel state the view was built from.
	State viewer.Snapshot
}

// Assemble builds the renderable description for a panel. In clamped mode
// the displayed window is exactly the selected range (the renderer clamps
// out-of-range values); in full-scale mode the window is the full data
// extent, with the selected range acting as color breakpoints inside it.
// The state's scale factor is applied to grid and stats here, downstream
// of the cache.
func Assemble(g *griddata.Grid, stats *griddata.Stats, st viewer.State) View {
	g = g.Scaled(st.ScaleFactor)
	stats = stats.Scaled(st.ScaleFactor)

	pal := colorscale.Get(st.Palette)
	scale := colorscale.New(stats.Min, stats.Max, st.Range.Lo, st.Range.Hi, pal, st.ScaleMode)

	v := View{
		Grid:  g,
		Stats: stats,
		Scale: scale,
		ZMid:  st.Range.Mid(),
		State: st.Snapshot(),
	}
	if st.ScaleMode == colorscale.FullScale {
		v.ZMin, v.ZMax = stats.Min, stats.Max
	} else {
		v.ZMin, v.ZMax = st.Range.Lo, st.Range.Hi
	}
	return v
}
