// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recorder provides a headless renderer that records drawing
// operations instead of drawing them. It is used for computing layouts
// without a display, and for tests.
package recorder

import (
	"fmt"

	"cogentcore.org/charts/render"
)

// Op is a union interface for recorded operations: [*Line], [*Text] or [*Rect].
type Op interface {
	isOp()
}

// Line is a recorded line.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Text is a recorded text.
type Text struct {
	X, Y   float64
	Text   string
	Angle  float64
	Anchor render.Anchors

	// Box is the placement of the text computed from the metrics.
	Box render.TextBox
}

// Rect is a recorded filled rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (*Line) isOp() {}
func (*Text) isOp() {}
func (*Rect) isOp() {}

func (l *Line) String() string {
	return fmt.Sprintf("line %g,%g %g,%g", l.X1, l.Y1, l.X2, l.Y2)
}

func (t *Text) String() string {
	return fmt.Sprintf("text %q at %g,%g %v %g", t.Text, t.X, t.Y, t.Anchor, t.Angle)
}

func (r *Rect) String() string {
	return fmt.Sprintf("rect %g,%g %gx%g", r.X, r.Y, r.W, r.H)
}

// Ops is a list of recorded operations.
type Ops []Op

// Add adds operation(s).
func (o *Ops) Add(op ...Op) {
	*o = append(*o, op...)
}

// Reset resets back to an empty list, keeping the memory for re-use.
func (o *Ops) Reset() {
	*o = (*o)[:0]
}

// Lines returns the recorded lines.
func (o Ops) Lines() []*Line {
	return filter[*Line](o)
}

// Texts returns the recorded texts.
func (o Ops) Texts() []*Text {
	return filter[*Text](o)
}

// Rects returns the recorded rectangles.
func (o Ops) Rects() []*Rect {
	return filter[*Rect](o)
}

func filter[T Op](o Ops) []T {
	var res []T
	for _, op := range o {
		if t, ok := op.(T); ok {
			res = append(res, t)
		}
	}
	return res
}

// Renderer is a [render.Renderer] that records operations.
type Renderer struct {
	render.Regions
	render.Repainters

	// Metrics measures text.
	Metrics render.Measurer

	// Ops are the recorded operations.
	Ops Ops

	// fail has the errors returned by named operations.
	fail map[string]error
}

// New returns a new recorder using the given metrics,
// or [DefaultFixed] if nil.
func New(m render.Measurer) *Renderer {
	if m == nil {
		m = DefaultFixed
	}
	return &Renderer{Metrics: m}
}

// FailOn makes the named operation, such as "DrawLine" or
// "RequestRepaint", fail with err. A nil err clears the failure.
func (rr *Renderer) FailOn(op string, err error) {
	if err == nil {
		delete(rr.fail, op)
		return
	}
	if rr.fail == nil {
		rr.fail = make(map[string]error)
	}
	rr.fail[op] = err
}

func (rr *Renderer) failure(op string) error {
	return render.Wrap(op, rr.fail[op])
}

// Reset clears the recorded operations and the mouse regions,
// as at the start of a redraw.
func (rr *Renderer) Reset() {
	rr.Ops.Reset()
	rr.Regions.Reset()
}

func (rr *Renderer) TextLineWidth(line string) float64 {
	return rr.Metrics.TextLineWidth(line)
}

func (rr *Renderer) TextLineHeight(line string) float64 {
	return rr.Metrics.TextLineHeight(line)
}

func (rr *Renderer) DrawLine(x1, y1, x2, y2 float64) error {
	if err := rr.failure("DrawLine"); err != nil {
		return err
	}
	rr.Ops.Add(&Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
	return nil
}

func (rr *Renderer) DrawText(x, y float64, text string, angle float64, anchor render.Anchors) error {
	if err := rr.failure("DrawText"); err != nil {
		return err
	}
	tb := render.Box(rr.Metrics, x, y, text, angle, anchor)
	rr.Ops.Add(&Text{X: x, Y: y, Text: text, Angle: angle, Anchor: anchor, Box: tb})
	return nil
}

func (rr *Renderer) FillRect(x, y, w, h float64) error {
	if err := rr.failure("FillRect"); err != nil {
		return err
	}
	rr.Ops.Add(&Rect{X: x, Y: y, W: w, H: h})
	return nil
}

// RequestRepaint calls the registered repaint functions,
// unless a failure was set for it.
func (rr *Renderer) RequestRepaint(rebuildData bool) error {
	if err := rr.failure("RequestRepaint"); err != nil {
		rr.Requests++
		return err
	}
	return rr.Repainters.RequestRepaint(rebuildData)
}
