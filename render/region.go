// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "math"

// Region is an area of the screen that receives mouse events.
type Region interface {
	Contains(x, y float64) bool
}

// Rect is a rectangular region.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Donut is an annular sector around (CX, CY) between radii R1 and R2,
// going clockwise from angle A1 to A2, in degrees from the positive x
// axis. A span of 360 or more is the full ring.
type Donut struct {
	CX, CY float64
	R1, R2 float64
	A1, A2 float64
}

func (d Donut) Contains(x, y float64) bool {
	dx, dy := x-d.CX, y-d.CY
	r := math.Hypot(dx, dy)
	if r < d.R1 || r > d.R2 {
		return false
	}
	span := d.A2 - d.A1
	if span >= 360 {
		return true
	}
	if span < 0 {
		span = mod360(span)
	}
	a := math.Atan2(dy, dx) * 180 / math.Pi
	return mod360(a-d.A1) <= span
}

func mod360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

type regionEntry struct {
	region   Region
	handlers MouseHandlers
}

// Regions is a registry of mouse regions that backends embed to
// implement [Renderer.RegisterMouseRegion]. The host feeds it raw
// events through its dispatch methods. Regions registered later are
// on top of earlier ones.
type Regions struct {

	// Disabled turns off all event dispatch.
	Disabled bool

	entries []regionEntry

	// drag is the index of the region being dragged, if inDrag.
	drag   int
	lastX  float64
	lastY  float64
	inDrag bool
}

// RegisterMouseRegion adds the region with the given handlers.
func (rs *Regions) RegisterMouseRegion(region Region, h MouseHandlers) {
	rs.entries = append(rs.entries, regionEntry{region: region, handlers: h})
}

// Reset removes all regions, as done at the start of each redraw.
// A drag in progress continues on the region registered at the same
// position after the redraw.
func (rs *Regions) Reset() {
	rs.entries = nil
}

// Len returns the number of registered regions.
func (rs *Regions) Len() int {
	return len(rs.entries)
}

// top returns the index of the topmost region containing (x, y)
// that has the handler selected by has, or -1.
func (rs *Regions) top(x, y float64, has func(h *MouseHandlers) bool) int {
	if rs.Disabled {
		return -1
	}
	for i := len(rs.entries) - 1; i >= 0; i-- {
		e := &rs.entries[i]
		if has(&e.handlers) && e.region.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Wheel dispatches a wheel event, returning whether it was handled.
func (rs *Regions) Wheel(x, y float64, motion int) bool {
	i := rs.top(x, y, func(h *MouseHandlers) bool { return h.OnWheel != nil })
	if i < 0 {
		return false
	}
	rs.entries[i].handlers.OnWheel(x, y, motion)
	return true
}

// Down starts a drag on the topmost region with a drag handler,
// returning whether there is one.
func (rs *Regions) Down(x, y float64) bool {
	i := rs.top(x, y, func(h *MouseHandlers) bool { return h.OnDrag != nil })
	if i < 0 {
		return false
	}
	rs.drag, rs.inDrag = i, true
	rs.lastX, rs.lastY = x, y
	return true
}

// Move dispatches a pointer move. During a drag the drag handler gets
// the delta from the previous position; otherwise the topmost move
// handler gets the position.
func (rs *Regions) Move(x, y float64) bool {
	if rs.inDrag && !rs.Disabled && rs.drag < len(rs.entries) {
		if od := rs.entries[rs.drag].handlers.OnDrag; od != nil {
			dx, dy := x-rs.lastX, y-rs.lastY
			rs.lastX, rs.lastY = x, y
			od(dx, dy)
			return true
		}
	}
	i := rs.top(x, y, func(h *MouseHandlers) bool { return h.OnMove != nil })
	if i < 0 {
		return false
	}
	rs.entries[i].handlers.OnMove(x, y)
	return true
}

// Up ends any drag.
func (rs *Regions) Up(x, y float64) {
	rs.inDrag = false
}

// Dragging returns whether a drag is in progress.
func (rs *Regions) Dragging() bool {
	return rs.inDrag
}

// Click dispatches a click, returning whether it was handled.
func (rs *Regions) Click(x, y float64) bool {
	i := rs.top(x, y, func(h *MouseHandlers) bool { return h.OnClick != nil })
	if i < 0 {
		return false
	}
	rs.entries[i].handlers.OnClick(x, y)
	return true
}
