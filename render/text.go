// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"
	"strings"
)

// TextLineSpacing is the space in pixels between lines of multi-line text.
const TextLineSpacing = 4

// Lines splits text into its lines.
func Lines(text string) []string {
	return strings.Split(text, "\n")
}

// TextWidth returns the width of the widest line of text.
func TextWidth(m Measurer, text string) float64 {
	w := 0.0
	for _, ln := range Lines(text) {
		w = max(w, m.TextLineWidth(ln))
	}
	return w
}

// TextHeight returns the height of all lines of text,
// including [TextLineSpacing] between them.
func TextHeight(m Measurer, text string) float64 {
	lines := Lines(text)
	h := float64(TextLineSpacing * (len(lines) - 1))
	for _, ln := range lines {
		h += m.TextLineHeight(ln)
	}
	return h
}

// TextSize returns the size of the bounding box of the text
// rotated clockwise by angle degrees.
func TextSize(m Measurer, text string, angle float64) (w, h float64) {
	tw, th := TextWidth(m, text), TextHeight(m, text)
	return rotatedSize(tw, th, angle)
}

func rotatedSize(w, h, angle float64) (float64, float64) {
	if angle == 0 {
		return w, h
	}
	s, c := math.Sincos(angle * math.Pi / 180)
	s, c = math.Abs(s), math.Abs(c)
	return w*c + h*s, w*s + h*c
}

// TextBox is the placement of a text on the screen.
type TextBox struct {

	// X, Y, W, H is the bounding box of the rotated text.
	X, Y, W, H float64

	// TW and TH are the width and height of the text before rotation.
	TW, TH float64

	// Angle is the clockwise rotation in degrees.
	Angle float64
}

// Box returns the placement of the text drawn at (x, y) with the
// given rotation and anchor.
func Box(m Measurer, x, y float64, text string, angle float64, anchor Anchors) TextBox {
	tb := TextBox{TW: TextWidth(m, text), TH: TextHeight(m, text), Angle: angle}
	tb.W, tb.H = rotatedSize(tb.TW, tb.TH, angle)
	fx, fy := anchor.Fractions()
	tb.X = x - fx*tb.W
	tb.Y = y - fy*tb.H
	return tb
}

// Center returns the center of the box.
func (tb TextBox) Center() (float64, float64) {
	return tb.X + tb.W/2, tb.Y + tb.H/2
}

// Overlaps returns whether the two boxes overlap,
// with pad added around tb.
func (tb TextBox) Overlaps(o TextBox, pad float64) bool {
	return tb.X-pad < o.X+o.W && o.X < tb.X+tb.W+pad &&
		tb.Y-pad < o.Y+o.H && o.Y < tb.Y+tb.H+pad
}

// Labels keeps track of placed labels so that new labels that
// would overlap them can be skipped.
type Labels struct {

	// Pad is the minimum distance between labels.
	Pad float64

	boxes []TextBox
}

// Place records the box and returns true if it does not overlap any
// placed box. Otherwise nothing is recorded and it returns false.
func (lb *Labels) Place(tb TextBox) bool {
	for _, o := range lb.boxes {
		if tb.Overlaps(o, lb.Pad) {
			return false
		}
	}
	lb.boxes = append(lb.boxes, tb)
	return true
}

// Reset forgets all placed labels.
func (lb *Labels) Reset() {
	lb.boxes = lb.boxes[:0]
}
