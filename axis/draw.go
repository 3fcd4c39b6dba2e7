// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"cogentcore.org/charts/render"
)

// labelPad is the space in pixels between tick marks, labels and the title.
const labelPad = 2

// NeededSize returns the space across the axis needed to draw it:
// the widest label for vertical axes or the tallest label for
// horizontal ones, plus the tick marks and the title.
func (a *Axis) NeededSize(m render.Measurer) float64 {
	sz := a.Config.TickLength
	lbl := 0.0
	for _, l := range a.labels {
		if a.vertical() {
			lbl = max(lbl, render.TextWidth(m, l))
		} else {
			lbl = max(lbl, render.TextHeight(m, l))
		}
	}
	if lbl > 0 {
		sz += labelPad + lbl
	}
	if t := a.Title(); t != "" {
		sz += labelPad + render.TextHeight(m, t)
	}
	return sz
}

// Draw draws the axis line, tick marks, labels and title into the
// given box. A horizontal axis runs along the top of the box with
// labels below it; a vertical axis runs along the right side with
// labels to its left. Labels that would overlap a previous label
// are skipped. The axis should have been laid out with the length
// of the box.
func (a *Axis) Draw(r render.Renderer, x, y, w, h float64) error {
	if a.vertical() {
		return a.drawY(r, x, y, w, h)
	}
	return a.drawX(r, x, y, w, h)
}

func (a *Axis) drawX(r render.Renderer, x, y, w, h float64) error {
	if err := r.DrawLine(x, y, x+w, y); err != nil {
		return err
	}
	tl := a.Config.TickLength
	lb := render.Labels{Pad: labelPad}
	for i, v := range a.values {
		px := x + float64(a.Position(v))
		if tl > 0 {
			if err := r.DrawLine(px, y, px, y+tl); err != nil {
				return err
			}
		}
		ly := y + tl + labelPad
		if !lb.Place(render.Box(r, px, ly, a.labels[i], 0, render.North)) {
			continue
		}
		if err := r.DrawText(px, ly, a.labels[i], 0, render.North); err != nil {
			return err
		}
	}
	if t := a.Title(); t != "" {
		return r.DrawText(x+w/2, y+h, t, 0, render.South)
	}
	return nil
}

func (a *Axis) drawY(r render.Renderer, x, y, w, h float64) error {
	ax := x + w
	if err := r.DrawLine(ax, y, ax, y+h); err != nil {
		return err
	}
	tl := a.Config.TickLength
	lb := render.Labels{Pad: labelPad}
	for i, v := range a.values {
		py := y + float64(a.Position(v))
		if tl > 0 {
			if err := r.DrawLine(ax-tl, py, ax, py); err != nil {
				return err
			}
		}
		lx := ax - tl - labelPad
		if !lb.Place(render.Box(r, lx, py, a.labels[i], 0, render.East)) {
			continue
		}
		if err := r.DrawText(lx, py, a.labels[i], 0, render.East); err != nil {
			return err
		}
	}
	if t := a.Title(); t != "" {
		return r.DrawText(x, y+h/2, t, 270, render.West)
	}
	return nil
}

// DrawGrid draws a grid line across the given plot box at each tick:
// vertical lines for a horizontal axis, horizontal lines for a
// vertical one.
func (a *Axis) DrawGrid(r render.Renderer, x, y, w, h float64) error {
	for _, v := range a.values {
		p := float64(a.Position(v))
		var err error
		if a.vertical() {
			err = r.DrawLine(x, y+p, x+w, y+p)
		} else {
			err = r.DrawLine(x+p, y, x+p, y+h)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
