// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fieldview/colorscale"
	"cogentcore.org/fieldview/minmax"
)

func TestNewState(t *testing.T) {
	st := NewState("temperature", 5, -3, 12)
	assert.Equal(t, "temperature", st.ScalarKey)
	assert.Equal(t, 5, st.SliceIndex)
	assert.Equal(t, colorscale.Default, st.Palette)
	assert.Equal(t, minmax.F64{Lo: -3, Hi: 12}, st.Range)
	assert.Equal(t, colorscale.Clamped, st.ScaleMode)
	assert.Equal(t, RangeSelect, st.ClickMode)
	assert.Nil(t, st.Pending)
	assert.Nil(t, st.ScanCoord)
	assert.Equal(t, 1.0, st.ScaleFactor)
}

// Two clicks commit the sorted value pair as the range, regardless of
// click order, and leave the buffer empty.
func TestRangeSelectTwoClicks(t *testing.T) {
	st := NewState("phi", 0, 0, 10)

	st = st.ClickValue(3)
	require.NotNil(t, st.Pending)
	assert.Equal(t, 3.0, *st.Pending)
	assert.Equal(t, minmax.F64{Lo: 0, Hi: 10}, st.Range, "range unchanged after first click")

	st = st.ClickValue(1)
	assert.Nil(t, st.Pending)
	assert.Equal(t, minmax.F64{Lo: 1, Hi: 3}, st.Range)

	// the next click starts a fresh pair
	st = st.ClickValue(7)
	require.NotNil(t, st.Pending)
	assert.Equal(t, 7.0, *st.Pending)
}

// Switching the click protocol discards a buffered first click, so a
// click can never pair with one from another mode.
func TestModeSwitchDiscardsPending(t *testing.T) {
	st := NewState("phi", 0, 0, 10).ClickValue(4)
	require.NotNil(t, st.Pending)

	st = st.SetClickMode(LineScan)
	assert.Nil(t, st.Pending)

	// re-selecting the current mode is a no-op
	st = NewState("phi", 0, 0, 10).ClickValue(4)
	st = st.SetClickMode(RangeSelect)
	require.NotNil(t, st.Pending)
	assert.Equal(t, 4.0, *st.Pending)
}

func TestClickValueIgnoredInLineScan(t *testing.T) {
	st := NewState("phi", 0, 0, 10).SetClickMode(LineScan)
	st = st.ClickValue(4)
	assert.Nil(t, st.Pending)
	assert.Equal(t, minmax.F64{Lo: 0, Hi: 10}, st.Range)
}

// A line-scan click records the coordinate perpendicular to the scan
// direction: y for a horizontal scan, x for a vertical one.
func TestLineScanPlacement(t *testing.T) {
	st := NewState("phi", 0, 0, 10).SetClickMode(LineScan)

	st = st.ClickAt(2.5, 7.5)
	require.NotNil(t, st.ScanCoord)
	assert.Equal(t, 7.5, *st.ScanCoord)

	st = st.SetScanAxis(Vertical)
	require.NotNil(t, st.ScanCoord, "axis switch keeps the placed coordinate")

	st = st.ClickAt(2.5, 7.5)
	assert.Equal(t, 2.5, *st.ScanCoord)
}

func TestClickAtIgnoredInRangeSelect(t *testing.T) {
	st := NewState("phi", 0, 0, 10).ClickAt(1, 2)
	assert.Nil(t, st.ScanCoord)
}

func TestSetRange(t *testing.T) {
	st := NewState("phi", 0, 0, 10).ClickValue(4)
	st = st.SetRange(9, 2)
	assert.Equal(t, minmax.F64{Lo: 2, Hi: 9}, st.Range)
	assert.Nil(t, st.Pending, "direct entry supersedes a buffered click")
}

func TestSelectFieldResets(t *testing.T) {
	st := NewState("phi", 3, 0, 10)
	st = st.SetRange(2, 8)
	st = st.SetScaleMode(colorscale.FullScale)
	st = st.ClickValue(5)

	st = st.SelectField("stress", -1, 1)
	assert.Equal(t, "stress", st.ScalarKey)
	assert.Equal(t, minmax.F64{Lo: -1, Hi: 1}, st.Range)
	assert.Nil(t, st.Pending)
	assert.Equal(t, colorscale.Clamped, st.ScaleMode)
	assert.Equal(t, 3, st.SliceIndex, "slice index survives field changes")
}

func TestSelectFieldRetainScaleMode(t *testing.T) {
	st := NewState("phi", 0, 0, 10)
	st.Policy.RetainScaleMode = true
	st = st.SetScaleMode(colorscale.FullScale)

	st = st.SelectField("stress", -1, 1)
	assert.Equal(t, colorscale.FullScale, st.ScaleMode)
}

// Transitions take the state by value: the prior state is never mutated.
func TestTransitionsArePure(t *testing.T) {
	st := NewState("phi", 0, 0, 10)
	_ = st.ClickValue(4)
	assert.Nil(t, st.Pending)

	with := st.ClickValue(4)
	_ = with.ClickValue(6)
	require.NotNil(t, with.Pending)
	assert.Equal(t, 4.0, *with.Pending)
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := NewState("phi", 7, 0, 10)
	st = st.SetScaleMode(colorscale.FullScale)
	st = st.SetPalette(colorscale.Steel)
	st = st.SetRange(2, 8)
	st = st.ClickValue(5)
	st.ScaleFactor = 100
	st.Units = "%"
	st.Policy.RetainScaleMode = true

	data, err := json.Marshal(st.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"colorscaleMode":"full-scale"`)
	assert.Contains(t, string(data), `"clickMode":"range-select"`)
	assert.Contains(t, string(data), `"lineScanAxis":"horizontal"`)

	var sn Snapshot
	require.NoError(t, json.Unmarshal(data, &sn))
	got := sn.State(st.Policy)
	assert.Equal(t, st, got)

	// the restored pending click is a copy, not an alias
	require.NotNil(t, got.Pending)
	*got.Pending = 99
	assert.Equal(t, 5.0, *st.Pending)
}

func TestSnapshotNilPointers(t *testing.T) {
	st := NewState("phi", 0, 0, 10)
	data, err := json.Marshal(st.Snapshot())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pendingClick":null`)

	var sn Snapshot
	require.NoError(t, json.Unmarshal(data, &sn))
	got := sn.State(Policy{})
	assert.Nil(t, got.Pending)
	assert.Nil(t, got.ScanCoord)
}

func TestEnumText(t *testing.T) {
	assert.Equal(t, "range-select", RangeSelect.String())
	assert.Equal(t, "line-scan", LineScan.String())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "vertical", Vertical.String())

	var m ClickMode
	require.NoError(t, m.UnmarshalText([]byte("line-scan")))
	assert.Equal(t, LineScan, m)
	assert.Error(t, m.UnmarshalText([]byte("nope")))

	var a ScanAxis
	require.NoError(t, a.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Vertical, a)
	assert.Error(t, a.UnmarshalText([]byte("nope")))
}
