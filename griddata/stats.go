// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package griddata

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the raw, unstructured sample values of a slice. They
// are computed before interpolation and are therefore independent of the
// grid resolution. Std is the population standard deviation.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64
}

// NewStats computes summary statistics of vals. An empty input yields
// zero stats.
func NewStats(vals []float64) *Stats {
	if len(vals) == 0 {
		return &Stats{}
	}
	return &Stats{
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
		Mean: stat.Mean(vals, nil),
		Std:  math.Sqrt(stat.PopVariance(vals, nil)),
	}
}

// Scaled returns the stats with every moment multiplied by f; Std scales
// by |f|, and Min/Max swap when f is negative.
func (s *Stats) Scaled(f float64) *Stats {
	if f == 1 {
		return s
	}
	sc := &Stats{Min: s.Min * f, Max: s.Max * f, Mean: s.Mean * f, Std: s.Std * math.Abs(f)}
	if sc.Min > sc.Max {
		sc.Min, sc.Max = sc.Max, sc.Min
	}
	return sc
}
