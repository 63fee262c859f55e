// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fieldview runs the slice-viewer pipeline over a synthetic
// volumetric dataset and prints the resulting render description as JSON:
// grid, statistics, color scale, and panel state. It exists to exercise
// and demonstrate the pipeline without a UI.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/fieldview/colorscale"
	"cogentcore.org/fieldview/griddata"
	"cogentcore.org/fieldview/mesh"
	"cogentcore.org/fieldview/render"
	"cogentcore.org/fieldview/slicecache"
	"cogentcore.org/fieldview/slicer"
	"cogentcore.org/fieldview/viewer"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		axisName   string
		index      int
		field      string
		component  int
		resolution int
		palette    string
		fullScale  bool
		rangeLo    float64
		rangeHi    float64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "fieldview",
		Short: "render a slice of a synthetic volumetric field as a JSON view description",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			axis, err := mesh.AxisFromString(axisName)
			if err != nil {
				return err
			}
			src := sampleSource()
			if index < 0 {
				index = src.Dims()[axis] / 2
			}

			sel := mesh.Selector{Array: field, Component: component}
			cache := slicecache.New()
			key := slicecache.Key{FileID: src.FileID(), Selector: sel, SliceIndex: index}
			grid, stats, err := cache.GetOrCompute(key, func() (*griddata.Grid, *griddata.Stats, error) {
				slog.Debug("interpolating slice", "key", key)
				sp, err := slicer.Extract(src, axis, index, sel)
				if err != nil {
					return nil, nil, err
				}
				g, st := griddata.Interpolate(sp.X, sp.Y, sp.V, resolution)
				return g, st, nil
			})
			if err != nil {
				return err
			}

			st := viewer.NewState(sel.String(), index, stats.Min, stats.Max)
			st = st.SetPalette(palette)
			if fullScale {
				st = st.SetScaleMode(colorscale.FullScale)
			}
			if !math.IsNaN(rangeLo) || !math.IsNaN(rangeHi) {
				lo, hi := rangeLo, rangeHi
				if math.IsNaN(lo) {
					lo = stats.Min
				}
				if math.IsNaN(hi) {
					hi = stats.Max
				}
				st = st.SetRange(lo, hi)
			}

			view := render.Assemble(grid, stats, st)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(encodeView(view))
		},
	}

	cmd.Flags().StringVar(&axisName, "axis", "y", "slicing axis: x, y, or z")
	cmd.Flags().IntVar(&index, "index", -1, "slice index along the axis; -1 = middle")
	cmd.Flags().StringVar(&field, "field", "temperature", "value array to display")
	cmd.Flags().IntVar(&component, "component", -1, "tensor component; -1 = plain scalar")
	cmd.Flags().IntVar(&resolution, "resolution", 100, "interpolation grid resolution")
	cmd.Flags().StringVar(&palette, "palette", colorscale.Default, "palette name")
	cmd.Flags().BoolVar(&fullScale, "full-scale", false, "use the full-scale breakpoint colorscale mode")
	cmd.Flags().Float64Var(&rangeLo, "range-lo", math.NaN(), "lower range bound; default = data min")
	cmd.Flags().Float64Var(&rangeHi, "range-hi", math.NaN(), "upper range bound; default = data max")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// sampleSource builds the synthetic volumetric dataset: a sinusoidal
// temperature field with a Gaussian hot spot on a 50 x 40 x 30 lattice
// spanning [0,10] x [0,8] x [0,6].
func sampleSource() *mesh.Lattice {
	dims := [3]int{50, 40, 30}
	l, err := mesh.NewLattice("sample-3d", dims, [3]float64{0, 0, 0}, [3]float64{
		10.0 / float64(dims[0]-1),
		8.0 / float64(dims[1]-1),
		6.0 / float64(dims[2]-1),
	})
	if err != nil {
		panic(err)
	}
	n := l.NumPoints()
	temp := make([]float64, n)
	for i := 0; i < n; i++ {
		p := l.Point(i)
		x, y, z := p[0], p[1], p[2]
		temp[i] = math.Sin(x*0.5)*math.Cos(y*0.7)*math.Exp(-0.1*z) +
			0.3*math.Sin(2*x)*math.Sin(2*y) +
			0.2*math.Exp(-((x-5)*(x-5)+(y-4)*(y-4)+(z-3)*(z-3))/10)
	}
	if err := l.AddArray("temperature", 1, temp); err != nil {
		panic(err)
	}
	return l
}

// jsonView mirrors render.View with NaN-free values, since JSON has no
// NaN: empty cells become null.
type jsonView struct {
	XS     []float64       `json:"xs"`
	YS     []float64       `json:"ys"`
	Values [][]*float64    `json:"values"`
	Stats  *griddata.Stats `json:"stats"`
	Scale  []jsonAnchor    `json:"colorscale"`
	ZMin   float64         `json:"zmin"`
	ZMax   float64         `json:"zmax"`
	ZMid   float64         `json:"zmid"`
	State  viewer.Snapshot `json:"state"`
}

type jsonAnchor struct {
	Pos   float64 `json:"pos"`
	Color string  `json:"color"`
}

func encodeView(v render.View) jsonView {
	jv := jsonView{
		XS:    v.Grid.XS,
		YS:    v.Grid.YS,
		Stats: v.Stats,
		ZMin:  v.ZMin,
		ZMax:  v.ZMax,
		ZMid:  v.ZMid,
		State: v.State,
	}
	jv.Values = make([][]*float64, len(v.Grid.Values))
	for r, row := range v.Grid.Values {
		jr := make([]*float64, len(row))
		for c, val := range row {
			if !math.IsNaN(val) {
				x := val
				jr[c] = &x
			}
		}
		jv.Values[r] = jr
	}
	for _, a := range v.Scale {
		jv.Scale = append(jv.Scale, jsonAnchor{
			Pos:   a.Pos,
			Color: fmt.Sprintf("#%02x%02x%02x", a.Color.R, a.Color.G, a.Color.B),
		})
	}
	return jv
}
