// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgplot

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

var _ plot.Ticker = Ticker{}

func TestSVG(t *testing.T) {
	rr := NewSVG(200, 100, 12)
	assert.Greater(t, rr.TextLineWidth("000"), rr.TextLineWidth("0"))
	assert.Greater(t, rr.TextLineHeight("0"), 0.0)

	require.NoError(t, rr.FillRect(0, 0, 200, 100))
	require.NoError(t, rr.DrawLine(10, 90, 190, 90))
	require.NoError(t, rr.DrawText(100, 95, "Amount", 0, render.North))
	require.NoError(t, rr.DrawText(5, 50, "Title", 270, render.West))

	var b bytes.Buffer
	_, err := rr.WriteTo(&b)
	require.NoError(t, err)
	assert.Contains(t, b.String(), "<svg")
	assert.Contains(t, b.String(), "Amount")
	assert.Contains(t, b.String(), "Title")
}

func TestErrors(t *testing.T) {
	rr := NewSVG(10, 10, 12)
	assert.True(t, render.IsRenderError(rr.DrawLine(math.NaN(), 0, 1, 1)))
	assert.True(t, render.IsRenderError(rr.FillRect(0, 0, math.Inf(1), 1)))
	assert.True(t, render.IsRenderError(rr.DrawText(0, 0, "x", math.NaN(), render.Center)))

	_, err := ForFile("chart.gif", 10, 10, 12)
	assert.Error(t, err)
}

func TestPNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chart.png")
	rr, err := ForFile(fn, 40, 30, 10)
	require.NoError(t, err)
	require.NoError(t, rr.DrawLine(0, 15, 40, 15))
	require.NoError(t, rr.Save(fn))

	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
}

func TestTicker(t *testing.T) {
	tk := Ticker{SizePixels: 500, MinTickSpacing: 50}
	ticks := tk.Ticks(0, 97)
	require.Len(t, ticks, 10)
	assert.Equal(t, plot.Tick{Value: 0, Label: "0"}, ticks[0])
	assert.Equal(t, plot.Tick{Value: 90, Label: "90"}, ticks[9])

	res := tk.Resolve(0, 97)
	assert.Equal(t, 10.0, res.Tick)
	assert.Equal(t, 100.0, res.Max)

	tk = Ticker{SizePixels: 500, MinTickSpacing: 100, Format: axis.NewFormatter(axis.SI, "")}
	var labels []string
	for _, tc := range tk.Ticks(0, 5000) {
		labels = append(labels, tc.Label)
	}
	assert.Equal(t, []string{"0", "1k", "2k", "3k", "4k", "5k"}, labels)

	assert.Nil(t, tk.Ticks(math.NaN(), 1))
}

func TestPlotAxis(t *testing.T) {
	p := plot.New()
	p.X.Min, p.X.Max = 0, 97
	p.X.Tick.Marker = Ticker{SizePixels: 500, MinTickSpacing: 50}
	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	assert.Len(t, ticks, 10)
}
