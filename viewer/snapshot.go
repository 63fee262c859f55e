// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"cogentcore.org/fieldview/colorscale"
	"cogentcore.org/fieldview/minmax"
)

// Snapshot is the serializable form of [State], persisted across UI
// refresh cycles. It round-trips field-for-field through JSON.
type Snapshot struct {
	ScalarKey          string          `json:"scalarKey"`
	SliceIndex         int             `json:"sliceIndex"`
	Palette            string          `json:"palette"`
	RangeLo            float64         `json:"rangeLo"`
	RangeHi            float64         `json:"rangeHi"`
	ColorscaleMode     colorscale.Mode `json:"colorscaleMode"`
	ClickMode          ClickMode       `json:"clickMode"`
	PendingClick       *float64        `json:"pendingClick"`
	LineScanAxis       ScanAxis        `json:"lineScanAxis"`
	LineScanCoordinate *float64        `json:"lineScanCoordinate"`
	ScaleFactor        float64         `json:"scaleFactor"`
	Units              string          `json:"units"`
}

// Snapshot captures the serializable state of the panel. Pointer fields
// are copied so the snapshot does not alias the live state.
func (st State) Snapshot() Snapshot {
	return Snapshot{
		ScalarKey:          st.ScalarKey,
		SliceIndex:         st.SliceIndex,
		Palette:            st.Palette,
		RangeLo:            st.Range.Lo,
		RangeHi:            st.Range.Hi,
		ColorscaleMode:     st.ScaleMode,
		ClickMode:          st.ClickMode,
		PendingClick:       copyFloat(st.Pending),
		LineScanAxis:       st.ScanAxis,
		LineScanCoordinate: copyFloat(st.ScanCoord),
		ScaleFactor:        st.ScaleFactor,
		Units:              st.Units,
	}
}

// State restores a panel state from the snapshot, under the given policy.
func (sn Snapshot) State(p Policy) State {
	return State{
		ScalarKey:   sn.ScalarKey,
		SliceIndex:  sn.SliceIndex,
		Palette:     sn.Palette,
		Range:       minmax.F64{Lo: sn.RangeLo, Hi: sn.RangeHi},
		ScaleMode:   sn.ColorscaleMode,
		ClickMode:   sn.ClickMode,
		Pending:     copyFloat(sn.PendingClick),
		ScanAxis:    sn.LineScanAxis,
		ScanCoord:   copyFloat(sn.LineScanCoordinate),
		ScaleFactor: sn.ScaleFactor,
		Units:       sn.Units,
		Policy:      p,
	}
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
