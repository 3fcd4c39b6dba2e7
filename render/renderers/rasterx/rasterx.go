// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterx provides a renderer that draws into an [image.RGBA],
// using the vector rasterizer and font packages of golang.org/x/image.
package rasterx

import (
	"image"
	"image/color"

	"cogentcore.org/charts/base/errors"
	"cogentcore.org/charts/base/iox/imagex"
	"cogentcore.org/charts/render"
	"github.com/chewxy/math32"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var errNotFinite = errors.New("coordinates are not finite")

// Renderer is a [render.Renderer] that draws into an image.
type Renderer struct {
	render.Regions
	render.Repainters

	// Image is the image drawn into.
	Image *image.RGBA

	// Color is the color of lines and text.
	Color color.Color

	// Fill is the color of filled rectangles.
	Fill color.Color

	// LineWidth is the width of lines in pixels.
	LineWidth float32

	// Face is the font face for text.
	Face font.Face

	raster *vector.Rasterizer
}

// New returns a new renderer drawing into a transparent image of
// the given size, with text in Latin Modern Sans at the given size
// in pixels.
func New(width, height int, fontSize float64) *Renderer {
	return &Renderer{
		Image:     image.NewRGBA(image.Rect(0, 0, width, height)),
		Color:     color.Black,
		Fill:      color.Gray{Y: 0xee},
		LineWidth: 1,
		Face:      SansFace(fontSize),
	}
}

// SansFace returns the Latin Modern Sans face at the given size in
// pixels, or the 7x13 bitmap face if it cannot be loaded.
func SansFace(size float64) font.Face {
	f, err := opentype.Parse(lmsans10regular.TTF)
	if errors.Log(err) != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if errors.Log(err) != nil {
		return basicfont.Face7x13
	}
	return face
}

// Clear fills the whole image with the given color.
func (rr *Renderer) Clear(c color.Color) {
	draw.Draw(rr.Image, rr.Image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func (rr *Renderer) TextLineWidth(line string) float64 {
	return toFloat(font.MeasureString(rr.Face, line))
}

func (rr *Renderer) TextLineHeight(line string) float64 {
	return toFloat(rr.Face.Metrics().Height)
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DrawLine draws the line as a quad of width LineWidth.
func (rr *Renderer) DrawLine(x1, y1, x2, y2 float64) error {
	ax, ay, bx, by := float32(x1), float32(y1), float32(x2), float32(y2)
	if !finite(ax, ay, bx, by) {
		return render.Wrap("DrawLine", errNotFinite)
	}
	dx, dy := bx-ax, by-ay
	ln := math32.Hypot(dx, dy)
	if ln == 0 {
		return nil
	}
	hw := 0.5 * rr.LineWidth
	nx, ny := -dy/ln*hw, dx/ln*hw
	z := rr.rasterizer()
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
	z.Draw(rr.Image, rr.Image.Bounds(), image.NewUniform(rr.Color), image.Point{})
	return nil
}

func (rr *Renderer) rasterizer() *vector.Rasterizer {
	sz := rr.Image.Bounds().Size()
	if rr.raster == nil {
		rr.raster = vector.NewRasterizer(sz.X, sz.Y)
	} else {
		rr.raster.Reset(sz.X, sz.Y)
	}
	return rr.raster
}

func (rr *Renderer) FillRect(x, y, w, h float64) error {
	if !finite(float32(x), float32(y), float32(w), float32(h)) {
		return render.Wrap("FillRect", errNotFinite)
	}
	r := image.Rect(int(math32.Floor(float32(x))), int(math32.Floor(float32(y))),
		int(math32.Ceil(float32(x+w))), int(math32.Ceil(float32(y+h))))
	draw.Draw(rr.Image, r, image.NewUniform(rr.Fill), image.Point{}, draw.Over)
	return nil
}

// DrawText draws each line of text centered in the text box, rotating
// the rendered mask when angle is not 0.
func (rr *Renderer) DrawText(x, y float64, text string, angle float64, anchor render.Anchors) error {
	if !finite(float32(x), float32(y), float32(angle)) {
		return render.Wrap("DrawText", errNotFinite)
	}
	tb := render.Box(rr, x, y, text, angle, anchor)
	mask := rr.textMask(text, tb)
	if angle != 0 {
		mask = rotate(mask, tb)
	}
	dr := mask.Bounds().Add(image.Pt(int(math32.Floor(float32(tb.X))), int(math32.Floor(float32(tb.Y)))))
	draw.DrawMask(rr.Image, dr, image.NewUniform(rr.Color), image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

// textMask renders the unrotated text into an alpha mask.
func (rr *Renderer) textMask(text string, tb render.TextBox) *image.Alpha {
	w, h := int(math32.Ceil(float32(tb.TW))), int(math32.Ceil(float32(tb.TH)))
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: rr.Face}
	ascent := rr.Face.Metrics().Ascent
	top := 0.0
	for _, ln := range render.Lines(text) {
		lx := (tb.TW - rr.TextLineWidth(ln)) / 2
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(lx * 64), Y: fixed.Int26_6(top*64) + ascent}
		d.DrawString(ln)
		top += rr.TextLineHeight(ln) + render.TextLineSpacing
	}
	return mask
}

// rotate returns the mask rotated clockwise by the box angle about its
// center, sized to the rotated box, with nearest-neighbor sampling.
func rotate(src *image.Alpha, tb render.TextBox) *image.Alpha {
	w, h := int(math32.Ceil(float32(tb.W))), int(math32.Ceil(float32(tb.H)))
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	sin, cos := math32.Sincos(float32(tb.Angle) * math32.Pi / 180)
	cx, cy := float32(tb.W)/2, float32(tb.H)/2
	sx0, sy0 := float32(tb.TW)/2, float32(tb.TH)/2
	sb := src.Bounds()
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			dx, dy := float32(px)+0.5-cx, float32(py)+0.5-cy
			sx := int(math32.Floor(dx*cos + dy*sin + sx0))
			sy := int(math32.Floor(-dx*sin + dy*cos + sy0))
			if image.Pt(sx, sy).In(sb) {
				dst.SetAlpha(px, py, src.AlphaAt(sx, sy))
			}
		}
	}
	return dst
}

// Save saves the image to the given file, in the format
// given by its extension, such as .png.
func (rr *Renderer) Save(filename string) error {
	return imagex.Save(rr.Image, filename)
}
