// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact turns mouse wheel and drag events into zooming and
// panning of an [axis.Axis], and wheel events into rotation of round
// charts.
//
// Failures while handling an event never reach the event source:
// errors raised by the renderer and panics are logged as warnings and
// dropped, and any other error is logged and returned to direct callers
// of [Controller.DoZoom] and [Controller.DoDrag] only.
package interact

import (
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/render"
)

// Controller handles mouse events for an axis.
type Controller struct {
	Axis     *axis.Axis
	Renderer render.Renderer

	// Logger is used for failures; if nil, [slog.Default] is used.
	Logger *slog.Logger
}

// New returns a new controller for the given axis and renderer.
func New(ax *axis.Axis, r render.Renderer) *Controller {
	return &Controller{Axis: ax, Renderer: r}
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Register registers wheel and drag handlers for the on-screen box of
// the axis, returning false without registering anything when zoom is
// disabled for the axis.
func (c *Controller) Register(region render.Rect) bool {
	if !c.Axis.ZoomEnabled() {
		return false
	}
	c.Renderer.RegisterMouseRegion(region, render.MouseHandlers{
		OnWheel: func(x, y float64, motion int) {
			c.Wheel(motion, x, y, region)
		},
		OnDrag: func(dx, dy float64) {
			c.DoDrag(dx, dy)
		},
	})
	return true
}

// Wheel zooms around the pointer at (x, y) within the given region.
func (c *Controller) Wheel(motion int, x, y float64, region render.Rect) {
	if c.Axis.Config.Orientation == axis.Vertical {
		c.DoZoom(motion, y, region.Y, region.H)
		return
	}
	c.DoZoom(motion, x, region.X, region.W)
}

// CenterFraction returns the position of pos within the extent
// starting at start, from 0 at the minimum end of the axis to 1 at the
// maximum end. Vertical axes have their minimum at the bottom. It is
// 0.5 for an empty extent.
func CenterFraction(pos, start, extent float64, vertical bool) float64 {
	if !(extent > 0) {
		return 0.5
	}
	f := min(max((pos-start)/extent, 0), 1)
	// Mirrored so the value under the pointer stays put. Older chart
	// code passed the unmirrored top-down fraction here.
	if vertical {
		f = 1 - f
	}
	return f
}

// DoZoom zooms in for negative wheel motion and out for positive
// motion by the zoom step of the axis, keeping the value under pos
// fixed, and then requests a repaint.
func (c *Controller) DoZoom(motion int, pos, start, extent float64) (err error) {
	defer c.catch("zoom", &err)
	if motion == 0 || !c.Axis.ZoomEnabled() {
		return nil
	}
	factor := c.Axis.ZoomStep()
	if motion < 0 {
		factor = 1 / factor
	}
	center := CenterFraction(pos, start, extent, c.Axis.Config.Orientation == axis.Vertical)
	if !c.Axis.Zoom(factor, center) {
		return nil
	}
	return c.repaint("zoom")
}

// DoDrag pans the axis by a pointer movement in pixels and then
// requests a repaint. Horizontal axes use dx; vertical axes use dy
// with the sign inverted, since their values grow upward.
func (c *Controller) DoDrag(dx, dy float64) (err error) {
	defer c.catch("drag", &err)
	if !c.Axis.ZoomEnabled() {
		return nil
	}
	spec, ok := c.Axis.Spec()
	size := c.Axis.Size()
	if !ok || size == 0 {
		return nil
	}
	per := (spec.Max - spec.Min) / float64(size)
	delta := dx * per
	if c.Axis.Config.Orientation == axis.Vertical {
		delta = -dy * per
	}
	if delta == 0 || math.IsNaN(delta) {
		return nil
	}
	if !c.Axis.Translate(delta) {
		return nil
	}
	return c.repaint("drag")
}

func (c *Controller) repaint(op string) error {
	return handle(c.logger(), op, c.Renderer.RequestRepaint(true))
}

// catch recovers a panic in op, logging it and clearing err.
func (c *Controller) catch(op string, err *error) {
	if r := recover(); r != nil {
		logPanic(c.logger(), op, r, err)
	}
}

// handle applies the failure policy to err: render errors are
// logged as warnings and dropped; other errors are logged and kept.
func handle(log *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if render.IsRenderError(err) {
		log.Warn("render failure during interaction", "op", op, "err", err)
		return nil
	}
	log.Error("interaction failed", "op", op, "err", err)
	return err
}

func logPanic(log *slog.Logger, op string, r any, err *error) {
	log.Warn("panic during interaction", "op", op, "panic", fmt.Sprint(r))
	*err = nil
}
