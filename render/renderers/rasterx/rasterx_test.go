// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterx

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"cogentcore.org/charts/base/iox/imagex"
	"cogentcore.org/charts/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inked returns the number of pixels with any alpha in r.
func inked(img *image.RGBA, r image.Rectangle) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestDrawLine(t *testing.T) {
	rr := New(100, 50, 12)
	require.NoError(t, rr.DrawLine(10, 10, 90, 10))
	// the line straddles rows 9 and 10
	assert.Greater(t, rr.Image.RGBAAt(50, 10).A, uint8(0))
	assert.Greater(t, rr.Image.RGBAAt(50, 9).A, uint8(0))
	assert.Equal(t, uint8(0), rr.Image.RGBAAt(50, 20).A)

	require.NoError(t, rr.DrawLine(20, 20, 20, 20))
	assert.Equal(t, uint8(0), rr.Image.RGBAAt(20, 20).A)

	rr.LineWidth = 4
	require.NoError(t, rr.DrawLine(50, 20, 50, 45))
	assert.Equal(t, uint8(255), rr.Image.RGBAAt(51, 30).A)

	err := rr.DrawLine(0, math.NaN(), 10, 10)
	assert.True(t, render.IsRenderError(err))
}

func TestFillRect(t *testing.T) {
	rr := New(40, 40, 12)
	require.NoError(t, rr.FillRect(5, 5, 10, 10))
	assert.Equal(t, 100, inked(rr.Image, rr.Image.Bounds()))
	assert.True(t, render.IsRenderError(rr.FillRect(math.Inf(1), 0, 1, 1)))
}

func TestText(t *testing.T) {
	rr := New(200, 200, 14)
	assert.Greater(t, rr.TextLineWidth("000"), rr.TextLineWidth("0"))
	assert.Greater(t, rr.TextLineHeight("0"), 10.0)

	require.NoError(t, rr.DrawText(100, 50, "123", 0, render.North))
	tb := render.Box(rr, 100, 50, "123", 0, render.North)
	box := image.Rect(int(tb.X), int(tb.Y), int(tb.X+tb.W)+1, int(tb.Y+tb.H)+1)
	assert.Greater(t, inked(rr.Image, box), 0)
	assert.Equal(t, 0, inked(rr.Image, image.Rect(0, 0, 200, 45)))

	rr.Clear(image.Transparent)
	require.NoError(t, rr.DrawText(20, 150, "Title", 270, render.West))
	tb = render.Box(rr, 20, 150, "Title", 270, render.West)
	assert.InDelta(t, tb.TH, tb.W, 1e-6)
	box = image.Rect(int(tb.X), int(tb.Y), int(tb.X+tb.W)+1, int(tb.Y+tb.H)+1)
	total := inked(rr.Image, rr.Image.Bounds())
	assert.Greater(t, total, 0)
	assert.Equal(t, total, inked(rr.Image, box))
}

func TestSave(t *testing.T) {
	rr := New(30, 20, 12)
	require.NoError(t, rr.DrawLine(0, 10, 30, 10))
	fn := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, rr.Save(fn))

	img, format, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, format)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())

	assert.Error(t, rr.Save(filepath.Join(t.TempDir(), "out.svg")))
}

func TestRenderAxis(t *testing.T) {
	rr := New(120, 40, 12)
	rr.Clear(color.White)
	require.NoError(t, rr.FillRect(10, 5, 100, 10))
	for x := 10.0; x <= 110; x += 25 {
		require.NoError(t, rr.DrawLine(x, 15, x, 20))
	}
	require.NoError(t, rr.DrawLine(10, 15, 110, 15))
	require.NoError(t, rr.DrawText(60, 22, "Axis", 0, render.North))
	imagex.Assert(t, rr.Image, "axis")
}

func TestRegions(t *testing.T) {
	rr := New(10, 10, 12)
	var got float64
	rr.RegisterMouseRegion(render.Rect{W: 10, H: 10}, render.MouseHandlers{
		OnWheel: func(x, y float64, motion int) { got = x },
	})
	assert.True(t, rr.Wheel(3, 4, 1))
	assert.Equal(t, 3.0, got)
	var r render.Renderer = rr
	assert.NoError(t, r.RequestRepaint(false))
}
