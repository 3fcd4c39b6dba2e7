// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/base/iox/imagex"
	"cogentcore.org/charts/render"
	"cogentcore.org/charts/render/renderers/rasterx"
	"cogentcore.org/charts/render/renderers/vgplot"
)

const (
	// margin around the drawing
	margin = 20

	// depth of the plot area drawn next to the axis
	plotDepth = 100
)

// canvas is a renderer that can be saved to a file.
type canvas interface {
	render.Renderer
	Save(filename string) error
}

func newCanvas(opts *options, w, h float64) (canvas, error) {
	switch strings.ToLower(opts.Backend) {
	case "raster":
		if _, err := imagex.ExtToFormat(filepath.Ext(opts.Out)); err != nil {
			return nil, err
		}
		rr := rasterx.New(int(math.Ceil(w)), int(math.Ceil(h)), opts.FontSize)
		rr.Clear(color.White)
		return rr, nil
	case "vg", "":
		vr, err := vgplot.ForFile(opts.Out, w, h, opts.FontSize)
		if err != nil {
			return nil, err
		}
		vr.Fill = color.White
		if err := vr.FillRect(0, 0, w, h); err != nil {
			return nil, err
		}
		vr.Fill = color.Gray{Y: 0xee}
		return vr, nil
	}
	return nil, fmt.Errorf("unknown backend %q", opts.Backend)
}

// draw draws the axis with its grid across a plot area, and saves it.
func draw(ax *axis.Axis, opts *options) error {
	size := float64(ax.Size())
	// measure with the fonts of the backend
	probe, err := newCanvas(opts, 1, 1)
	if err != nil {
		return err
	}
	need := ax.NeededSize(probe)

	var w, h float64
	vertical := ax.Config.Orientation == axis.Vertical
	if vertical {
		w, h = need+plotDepth+2*margin, size+2*margin
	} else {
		w, h = size+2*margin, plotDepth+need+2*margin
	}
	c, err := newCanvas(opts, w, h)
	if err != nil {
		return err
	}
	if vertical {
		px := margin + need
		if err := c.FillRect(px, margin, plotDepth, size); err != nil {
			return err
		}
		if err := ax.DrawGrid(c, px, margin, plotDepth, size); err != nil {
			return err
		}
		if err := ax.Draw(c, margin, margin, need, size); err != nil {
			return err
		}
	} else {
		if err := c.FillRect(margin, margin, size, plotDepth); err != nil {
			return err
		}
		if err := ax.DrawGrid(c, margin, margin, size, plotDepth); err != nil {
			return err
		}
		if err := ax.Draw(c, margin, margin+plotDepth, size, need); err != nil {
			return err
		}
	}
	return c.Save(opts.Out)
}
