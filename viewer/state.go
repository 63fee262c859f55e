// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer holds the per-panel interaction state machine: the
// active field, slice index, value range, palette, display mode, and the
// two mutually exclusive click protocols (range selection and line-scan
// placement). All transitions are pure functions of (state, event) and
// need no renderer, so the protocol is unit-testable in isolation.
package viewer

import (
	"fmt"

	"cogentcore.org/fieldview/colorscale"
	"cogentcore.org/fieldview/minmax"
)

// ClickMode selects what a click on the rendered slice does.
type ClickMode int32

const (
	// RangeSelect collects two clicked values into the selected range.
	RangeSelect ClickMode = iota

	// LineScan places the line-scan position at the clicked coordinate.
	LineScan
)

func (m ClickMode) String() string {
	switch m {
	case RangeSelect:
		return "range-select"
	case LineScan:
		return "line-scan"
	}
	return fmt.Sprintf("ClickMode(%d)", int32(m))
}

func (m ClickMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ClickMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "range-select":
		*m = RangeSelect
	case "line-scan":
		*m = LineScan
	default:
		return fmt.Errorf("viewer: invalid click mode %q", text)
	}
	return nil
}

// ScanAxis is the direction of the line scan.
type ScanAxis int32

const (
	// Horizontal scans along x at a fixed y.
	Horizontal ScanAxis = iota

	// Vertical scans along y at a fixed x.
	Vertical
)

func (a ScanAxis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("ScanAxis(%d)", int32(a))
}

func (a ScanAxis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *ScanAxis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal":
		*a = Horizontal
	case "vertical":
		*a = Vertical
	default:
		return fmt.Errorf("viewer: invalid scan axis %q", text)
	}
	return nil
}

// Policy names the behavioral choices of the state machine that are under
// review, so they can change without touching the transitions.
type Policy struct {
	// RetainScaleMode keeps the colorscale mode across field changes.
	// The default (false) resets the mode to Clamped whenever a new
	// field is selected.
	RetainScaleMode bool
}

// State is the interaction state of one viewer panel. It is exclusively
// owned by that panel and evolves only through the transition methods,
// which take the state by value and return the successor state.
type State struct {
	// ScalarKey identifies the displayed field.
	ScalarKey string

	// SliceIndex is the lattice index of the displayed cut plane.
	SliceIndex int

	// Palette is the name of the 5-color palette.
	Palette string

	// Range is the selected value range, Lo <= Hi.
	Range minmax.F64

	// ScaleMode is the colorscale display mode.
	ScaleMode colorscale.Mode

	// ClickMode selects the active click protocol.
	ClickMode ClickMode

	// Pending is the 0-or-1-element buffer of the first range-select
	// click, nil when empty.
	Pending *float64

	// ScanAxis is the line-scan direction.
	ScanAxis ScanAxis

	// ScanCoord is the last placed line-scan coordinate, nil when the
	// scan has never been placed.
	ScanCoord *float64

	// ScaleFactor multiplies displayed values (e.g. strain in percent).
	ScaleFactor float64

	// Units labels displayed values.
	Units string

	// Policy controls the review-flagged behaviors.
	Policy Policy
}

// NewState returns the initial state for a panel showing the given field,
// with the range spanning the field's full data extent.
func NewState(scalarKey string, sliceIndex int, dataMin, dataMax float64) State {
	return State{
		ScalarKey:   scalarKey,
		SliceIndex:  sliceIndex,
		Palette:     colorscale.Default,
		Range:       minmax.Sorted(dataMin, dataMax),
		ScaleFactor: 1,
	}
}

// SetClickMode switches the click protocol. Changing protocol discards
// any pending range-select click, so no click leaks across modes.
func (st State) SetClickMode(m ClickMode) State {
	if m != st.ClickMode {
		st.ClickMode = m
		st.Pending = nil
	}
	return st
}

// ClickValue handles a click on a cell with value v in range-select mode:
// the first click is buffered, the second commits the sorted pair as the
// range and clears the buffer. Ignored in line-scan mode.
func (st State) ClickValue(v float64) State {
	if st.ClickMode != RangeSelect {
		return st
	}
	if st.Pending == nil {
		st.Pending = &v
		return st
	}
	st.Range = minmax.Sorted(*st.Pending, v)
	st.Pending = nil
	return st
}

// ClickAt handles a click at grid coordinates (x, y) in line-scan mode:
// a horizontal scan records y, a vertical scan records x. Ignored in
// range-select mode.
func (st State) ClickAt(x, y float64) State {
	if st.ClickMode != LineScan {
		return st
	}
	c := x
	if st.ScanAxis == Horizontal {
		c = y
	}
	st.ScanCoord = &c
	return st
}

// SetScanAxis switches the line-scan direction, keeping the last placed
// coordinate.
func (st State) SetScanAxis(a ScanAxis) State {
	st.ScanAxis = a
	return st
}

// SetRange is direct numeric entry of the range bounds: the pair is
// sorted and any pending click is discarded.
func (st State) SetRange(lo, hi float64) State {
	st.Range = minmax.Sorted(lo, hi)
	st.Pending = nil
	return st
}

// SetSliceIndex records the requested slice index. Out-of-range indices
// are clamped at extraction, not here.
func (st State) SetSliceIndex(i int) State {
	st.SliceIndex = i
	return st
}

// SetPalette selects the named palette.
func (st State) SetPalette(name string) State {
	st.Palette = name
	return st
}

// SetScaleMode selects the colorscale display mode.
func (st State) SetScaleMode(m colorscale.Mode) State {
	st.ScaleMode = m
	return st
}

// SelectField switches the panel to a new field: the range resets to the
// field's full data extent, pending click state is cleared, and (unless
// Policy.RetainScaleMode is set) the colorscale mode resets to Clamped.
func (st State) SelectField(scalarKey string, dataMin, dataMax float64) State {
	st.ScalarKey = scalarKey
	st.Range = minmax.Sorted(dataMin, dataMax)
	st.Pending = nil
	if !st.Policy.RetainScaleMode {
		st.ScaleMode = colorscale.Clamped
	}
	return st
}
