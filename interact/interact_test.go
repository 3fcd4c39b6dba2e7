// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/base/tolassert"
	"cogentcore.org/charts/math32/minmax"
	"cogentcore.org/charts/render"
	"cogentcore.org/charts/render/renderers/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, o axis.Orientations) (*Controller, *recorder.Renderer, *bytes.Buffer) {
	t.Helper()
	a, err := axis.New(axis.NewConfig(o))
	require.NoError(t, err)
	a.SetDataRange(0, 100)
	_, err = a.Layout(500)
	require.NoError(t, err)
	rr := recorder.New(nil)
	c := New(a, rr)
	var buf bytes.Buffer
	c.Logger = slog.New(slog.NewTextHandler(&buf, nil))
	return c, rr, &buf
}

func TestCenterFraction(t *testing.T) {
	assert.Equal(t, 0.25, CenterFraction(125, 0, 500, false))
	assert.Equal(t, 0.75, CenterFraction(125, 0, 500, true))
	assert.Equal(t, 0.5, CenterFraction(125, 0, 0, false))
	assert.Equal(t, 0.0, CenterFraction(-10, 0, 500, false))
	assert.Equal(t, 1.0, CenterFraction(600, 0, 500, false))
	assert.Equal(t, 0.5, CenterFraction(290, 40, 500, false))
}

func TestWheelZoom(t *testing.T) {
	c, rr, buf := setup(t, axis.Horizontal)
	region := render.Rect{X: 40, Y: 0, W: 500, H: 300}
	require.True(t, c.Register(region))
	assert.Equal(t, 1, rr.Len())

	require.True(t, rr.Wheel(290, 10, -1))
	u := c.Axis.UserRange()
	tolassert.EqualTol(t, 50-50/1.2, u.Min, 1e-9)
	tolassert.EqualTol(t, 50+50/1.2, u.Max, 1e-9)
	tolassert.EqualTol(t, 50, c.Axis.Value(250), 1e-9)
	assert.Equal(t, 1, rr.Requests)

	require.True(t, rr.Wheel(290, 10, 3))
	u = c.Axis.UserRange()
	tolassert.EqualTol(t, 0, u.Min, 1e-9)
	tolassert.EqualTol(t, 100, u.Max, 1e-9)
	assert.Equal(t, 2, rr.Requests)

	require.NoError(t, c.DoZoom(0, 100, 40, 500))
	assert.Equal(t, 2, rr.Requests)
	assert.Empty(t, buf.String())
}

func TestWheelZoomVertical(t *testing.T) {
	c, rr, _ := setup(t, axis.Vertical)
	region := render.Rect{X: 0, Y: 20, W: 50, H: 500}
	require.True(t, c.Register(region))

	y := 20 + 125.0
	before := c.Axis.Value(y - region.Y)
	tolassert.EqualTol(t, 75, before, 1e-9)
	require.True(t, rr.Wheel(10, y, -1))
	tolassert.EqualTol(t, before, c.Axis.Value(y-region.Y), 1e-9)
	u := c.Axis.UserRange()
	assert.Less(t, u.Max-u.Min, 100.0)
}

func TestDrag(t *testing.T) {
	c, rr, _ := setup(t, axis.Horizontal)
	require.NoError(t, c.DoDrag(50, 7))
	assert.Equal(t, minmax.Range64{Min: 10, Max: 110, FixMin: true, FixMax: true}, c.Axis.UserRange())
	assert.Equal(t, 1, rr.Requests)

	require.NoError(t, c.DoDrag(0, 30))
	assert.Equal(t, 1, rr.Requests)

	v, rv, _ := setup(t, axis.Vertical)
	require.NoError(t, v.DoDrag(3, 50))
	assert.Equal(t, minmax.Range64{Min: -10, Max: 90, FixMin: true, FixMax: true}, v.Axis.UserRange())
	assert.Equal(t, 1, rv.Requests)
}

func TestDragRegion(t *testing.T) {
	c, rr, _ := setup(t, axis.Horizontal)
	require.True(t, c.Register(render.Rect{W: 500, H: 300}))
	require.True(t, rr.Down(100, 100))
	require.True(t, rr.Move(125, 100))
	require.True(t, rr.Move(150, 100))
	rr.Up(150, 100)
	u := c.Axis.UserRange()
	assert.Equal(t, 10.0, u.Min)
	assert.Equal(t, 110.0, u.Max)
	assert.Equal(t, 2, rr.Requests)
}

func TestZoomDisabled(t *testing.T) {
	c, rr, _ := setup(t, axis.Horizontal)
	c.Axis.SetZoomEnabled(false)
	assert.False(t, c.Register(render.Rect{W: 500, H: 300}))
	assert.Equal(t, 0, rr.Len())
	require.NoError(t, c.DoZoom(-1, 100, 0, 500))
	require.NoError(t, c.DoDrag(50, 0))
	assert.False(t, c.Axis.UserRange().FixMin)
	assert.Equal(t, 0, rr.Requests)
}

func TestRenderErrorSuppressed(t *testing.T) {
	c, rr, buf := setup(t, axis.Horizontal)
	rr.FailOn("RequestRepaint", io.ErrUnexpectedEOF)
	require.NoError(t, c.DoZoom(-1, 250, 0, 500))
	assert.True(t, c.Axis.UserRange().FixMin)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "op=zoom")
}

// plainFailure returns errors that are not render errors.
type plainFailure struct {
	*recorder.Renderer
}

var errHost = errors.New("host gone")

func (pf plainFailure) RequestRepaint(rebuildData bool) error {
	return errHost
}

func TestOtherErrorReturned(t *testing.T) {
	c, rr, buf := setup(t, axis.Horizontal)
	c.Renderer = plainFailure{rr}
	err := c.DoDrag(50, 0)
	assert.ErrorIs(t, err, errHost)
	assert.Contains(t, buf.String(), "level=ERROR")

	// through a registered callback the error stops at the boundary
	require.True(t, c.Register(render.Rect{W: 500, H: 300}))
	assert.NotPanics(t, func() { rr.Wheel(100, 100, 1) })
}

func TestPanicSuppressed(t *testing.T) {
	c, rr, buf := setup(t, axis.Horizontal)
	rr.OnRepaint(func(rebuild bool) error {
		panic("boom")
	})
	var err error
	assert.NotPanics(t, func() { err = c.DoZoom(1, 250, 0, 500) })
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "panic=boom")

	buf.Reset()
	c.Axis.AddListener(func(mn, mx float64) { panic("listener") })
	assert.NotPanics(t, func() { err = c.DoDrag(10, 0) })
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "panic=listener")
}

func TestRotator(t *testing.T) {
	rr := recorder.New(nil)
	var angles []float64
	rt := NewRotator(rr, func(angle float64) { angles = append(angles, angle) })
	rt.Register(render.Donut{CX: 100, CY: 100, R1: 10, R2: 80, A1: 0, A2: 360})

	require.NoError(t, rt.DoRotate(1))
	require.NoError(t, rt.DoRotate(-1))
	require.NoError(t, rt.DoRotate(-1))
	require.NoError(t, rt.DoRotate(0))
	assert.Equal(t, []float64{10, 0, 350}, angles)
	assert.Equal(t, 3, rr.Requests)

	require.True(t, rr.Wheel(150, 100, 2))
	assert.Equal(t, 0.0, rt.Angle)
	assert.False(t, rr.Wheel(100, 100, 2))

	rr.FailOn("RequestRepaint", io.EOF)
	assert.NoError(t, rt.DoRotate(1))
	assert.Equal(t, 10.0, rt.Angle)
}
