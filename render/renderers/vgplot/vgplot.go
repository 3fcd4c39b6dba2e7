// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vgplot provides a renderer on a gonum [vg.Canvas], writing
// PNG or SVG, and a gonum [plot.Ticker] that places ticks with the
// scale resolver.
package vgplot

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/charts/render"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

var errNotFinite = errors.New("coordinates are not finite")

func init() {
	font.DefaultCache.Add(liberation.Collection())
}

// Renderer is a [render.Renderer] drawing on a gonum canvas, with one
// canvas point per pixel. Canvas y grows upward, so all coordinates
// are flipped.
type Renderer struct {
	render.Regions
	render.Repainters

	// Canvas is the canvas drawn on.
	Canvas vg.CanvasWriterTo

	// Width and Height are the size of the canvas.
	Width, Height float64

	// Face is the font face for text.
	Face font.Face

	// Color is the color of lines and text.
	Color color.Color

	// Fill is the color of filled rectangles.
	Fill color.Color

	// LineWidth is the width of lines.
	LineWidth float64
}

// New returns a renderer on the given canvas of the given size, with
// text in Liberation Sans at the given size.
func New(c vg.CanvasWriterTo, width, height, fontSize float64) *Renderer {
	fnt := font.Font{Typeface: plot.DefaultFont.Typeface, Variant: "Sans"}
	return &Renderer{
		Canvas:    c,
		Width:     width,
		Height:    height,
		Face:      font.DefaultCache.Lookup(fnt, font.Length(fontSize)),
		Color:     color.Black,
		Fill:      color.Gray{Y: 0xee},
		LineWidth: 1,
	}
}

// NewPNG returns a renderer writing PNG images.
func NewPNG(width, height, fontSize float64) *Renderer {
	c := vgimg.NewWith(vgimg.UseWH(vg.Length(width), vg.Length(height)), vgimg.UseDPI(72))
	return New(vgimg.PngCanvas{Canvas: c}, width, height, fontSize)
}

// NewSVG returns a renderer writing SVG documents.
func NewSVG(width, height, fontSize float64) *Renderer {
	return New(vgsvg.New(vg.Length(width), vg.Length(height)), width, height, fontSize)
}

// ForFile returns a PNG or SVG renderer depending on the extension
// of filename.
func ForFile(filename string, width, height, fontSize float64) (*Renderer, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return NewPNG(width, height, fontSize), nil
	case ".svg":
		return NewSVG(width, height, fontSize), nil
	}
	return nil, fmt.Errorf("vgplot: unsupported image type %q", filepath.Ext(filename))
}

func (rr *Renderer) point(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(rr.Height - y)}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (rr *Renderer) TextLineWidth(line string) float64 {
	return float64(rr.Face.Width(line))
}

func (rr *Renderer) TextLineHeight(line string) float64 {
	return float64(rr.Face.Extents().Height)
}

func (rr *Renderer) DrawLine(x1, y1, x2, y2 float64) error {
	if !finite(x1, y1, x2, y2) {
		return render.Wrap("DrawLine", errNotFinite)
	}
	var p vg.Path
	p.Move(rr.point(x1, y1))
	p.Line(rr.point(x2, y2))
	rr.Canvas.SetColor(rr.Color)
	rr.Canvas.SetLineWidth(vg.Length(rr.LineWidth))
	rr.Canvas.Stroke(p)
	return nil
}

func (rr *Renderer) FillRect(x, y, w, h float64) error {
	if !finite(x, y, w, h) {
		return render.Wrap("FillRect", errNotFinite)
	}
	var p vg.Path
	p.Move(rr.point(x, y))
	p.Line(rr.point(x+w, y))
	p.Line(rr.point(x+w, y+h))
	p.Line(rr.point(x, y+h))
	p.Close()
	rr.Canvas.SetColor(rr.Fill)
	rr.Canvas.Fill(p)
	return nil
}

// DrawText draws each line of text centered in the text box, rotating
// the canvas about the box center when angle is not 0.
func (rr *Renderer) DrawText(x, y float64, text string, angle float64, anchor render.Anchors) error {
	if !finite(x, y, angle) {
		return render.Wrap("DrawText", errNotFinite)
	}
	tb := render.Box(rr, x, y, text, angle, anchor)
	cx, cy := tb.Center()
	c := rr.Canvas
	c.Push()
	defer c.Pop()
	c.Translate(rr.point(cx, cy))
	if angle != 0 {
		c.Rotate(-angle * math.Pi / 180)
	}
	c.SetColor(rr.Color)
	ascent := float64(rr.Face.Extents().Ascent)
	top := tb.TH / 2
	for _, ln := range render.Lines(text) {
		pt := vg.Point{X: vg.Length(-rr.TextLineWidth(ln) / 2), Y: vg.Length(top - ascent)}
		c.FillString(rr.Face, pt, ln)
		top -= rr.TextLineHeight(ln) + render.TextLineSpacing
	}
	return nil
}

// WriteTo writes the canvas in its format.
func (rr *Renderer) WriteTo(w io.Writer) (int64, error) {
	return rr.Canvas.WriteTo(w)
}

// Save writes the canvas to the given file.
func (rr *Renderer) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if _, err := rr.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}
