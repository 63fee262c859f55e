// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides an inclusive [Lo, Hi] range over float64 values,
// used for value ranges and color-scale breakpoints.
package minmax

import "fmt"

// F64 is an inclusive range of float64 values.
type F64 struct {
	Lo float64
	Hi float64
}

// Sorted returns the range spanning a and b regardless of their order.
func Sorted(a, b float64) F64 {
	if b < a {
		a, b = b, a
	}
	return F64{Lo: a, Hi: b}
}

// Set sets the range bounds.
func (r *F64) Set(lo, hi float64) {
	r.Lo = lo
	r.Hi = hi
}

// IsValid returns true if Lo <= Hi.
func (r F64) IsValid() bool {
	return r.Lo <= r.Hi
}

// Span returns Hi - Lo.
func (r F64) Span() float64 {
	return r.Hi - r.Lo
}

// Mid returns the midpoint of the range.
func (r F64) Mid() float64 {
	return 0.5 * (r.Lo + r.Hi)
}

// Contains reports whether v is within the range, inclusive.
func (r F64) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Clamp returns v limited to the range.
func (r F64) Clamp(v float64) float64 {
	if v < r.Lo {
		return r.Lo
	}
	if v > r.Hi {
		return r.Hi
	}
	return v
}

// Norm returns the normalized position of v within the range, clamped to
// [0, 1]. A zero-span range normalizes everything to 0.
func (r F64) Norm(v float64) float64 {
	s := r.Span()
	if s == 0 {
		return 0
	}
	n := (v - r.Lo) / s
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

func (r F64) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lo, r.Hi)
}
