// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"io"
	"testing"

	"cogentcore.org/charts/render"
	"cogentcore.org/charts/render/renderers/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawHorizontal(t *testing.T) {
	a := newAxis(t, Horizontal, 3, 97, 500)
	rr := recorder.New(nil)
	require.NoError(t, a.Draw(rr, 40, 300, 500, 40))

	lines := rr.Ops.Lines()
	require.Len(t, lines, 22)
	assert.Equal(t, &recorder.Line{X1: 40, Y1: 300, X2: 540, Y2: 300}, lines[0])
	assert.Equal(t, &recorder.Line{X1: 40, Y1: 300, X2: 40, Y2: 305}, lines[1])
	assert.Equal(t, &recorder.Line{X1: 540, Y1: 300, X2: 540, Y2: 305}, lines[21])

	texts := rr.Ops.Texts()
	require.Len(t, texts, 21)
	assert.Equal(t, "0", texts[0].Text)
	assert.Equal(t, render.North, texts[0].Anchor)
	assert.Equal(t, 307.0, texts[0].Y)
	assert.Equal(t, "100", texts[20].Text)
	assert.Equal(t, 540.0, texts[20].X)

	// 7 + 13 + 2 label height and pad
	assert.Equal(t, 20.0, a.NeededSize(rr.Metrics))
}

func TestDrawVertical(t *testing.T) {
	a := newAxis(t, Vertical, 3, 97, 500)
	a.AddMeasures("Value")
	rr := recorder.New(nil)
	require.NoError(t, a.Draw(rr, 0, 10, 50, 500))

	lines := rr.Ops.Lines()
	assert.Equal(t, &recorder.Line{X1: 50, Y1: 10, X2: 50, Y2: 510}, lines[0])
	// the minimum is at the bottom
	assert.Equal(t, &recorder.Line{X1: 45, Y1: 510, X2: 50, Y2: 510}, lines[1])

	texts := rr.Ops.Texts()
	require.Len(t, texts, 22)
	assert.Equal(t, render.East, texts[0].Anchor)
	assert.Equal(t, 43.0, texts[0].X)
	assert.Equal(t, 510.0, texts[0].Y)
	title := texts[21]
	assert.Equal(t, "Value", title.Text)
	assert.Equal(t, 270.0, title.Angle)
	assert.Equal(t, render.West, title.Anchor)

	// 5 tick + 2 pad + 21 label + 2 pad + 13 title
	assert.Equal(t, 43.0, a.NeededSize(rr.Metrics))
}

func TestDrawOverlap(t *testing.T) {
	cfg := NewConfig(Horizontal)
	cfg.MinTickSpacing = 5
	a, err := New(cfg)
	require.NoError(t, err)
	a.SetDataRange(0, 100)
	_, err = a.Layout(100)
	require.NoError(t, err)
	require.Len(t, a.Values(), 21)

	rr := recorder.New(nil)
	require.NoError(t, a.Draw(rr, 0, 0, 100, 30))
	texts := rr.Ops.Texts()
	assert.Greater(t, len(texts), 1)
	assert.Less(t, len(texts), 21)
	for i := range texts {
		for j := i + 1; j < len(texts); j++ {
			assert.False(t, texts[i].Box.Overlaps(texts[j].Box, 0), "%s overlaps %s", texts[i].Text, texts[j].Text)
		}
	}
	// tick marks are drawn for every value
	assert.Len(t, rr.Ops.Lines(), 22)
}

func TestDrawGrid(t *testing.T) {
	a := newAxis(t, Vertical, 0, 100, 200)
	rr := recorder.New(nil)
	require.NoError(t, a.DrawGrid(rr, 10, 0, 300, 200))
	lines := rr.Ops.Lines()
	require.Len(t, lines, len(a.Values()))
	assert.Equal(t, &recorder.Line{X1: 10, Y1: 200, X2: 310, Y2: 200}, lines[0])

	h := newAxis(t, Horizontal, 0, 100, 200)
	rr.Reset()
	require.NoError(t, h.DrawGrid(rr, 10, 0, 200, 300))
	assert.Equal(t, &recorder.Line{X1: 10, Y1: 0, X2: 10, Y2: 300}, rr.Ops.Lines()[0])
}

func TestDrawError(t *testing.T) {
	a := newAxis(t, Horizontal, 0, 100, 500)
	rr := recorder.New(nil)
	rr.FailOn("DrawText", io.ErrShortWrite)
	err := a.Draw(rr, 0, 0, 500, 30)
	assert.True(t, render.IsRenderError(err))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Len(t, rr.Ops.Lines(), 2)
}
