// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"log/slog"
	"math"

	"cogentcore.org/charts/render"
)

// Rotator rotates a round chart with the mouse wheel.
type Rotator struct {

	// Angle is the current rotation in degrees, in [0, 360).
	Angle float64

	// Step is the rotation in degrees for one wheel step.
	Step float64

	// OnRotate is called with the new angle after each rotation.
	OnRotate func(angle float64)

	Renderer render.Renderer

	// Logger is used for failures; if nil, [slog.Default] is used.
	Logger *slog.Logger
}

// NewRotator returns a new rotator with a step of 10 degrees.
func NewRotator(r render.Renderer, onRotate func(angle float64)) *Rotator {
	return &Rotator{Step: 10, OnRotate: onRotate, Renderer: r}
}

// Register registers a wheel handler for the given region.
func (rt *Rotator) Register(region render.Region) {
	rt.Renderer.RegisterMouseRegion(region, render.MouseHandlers{
		OnWheel: func(x, y float64, motion int) {
			rt.DoRotate(motion)
		},
	})
}

// DoRotate rotates clockwise for positive wheel motion and
// counterclockwise for negative motion, and requests a repaint.
func (rt *Rotator) DoRotate(motion int) (err error) {
	log := rt.Logger
	if log == nil {
		log = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logPanic(log, "rotate", r, &err)
		}
	}()
	if motion == 0 {
		return nil
	}
	delta := rt.Step
	if motion < 0 {
		delta = -delta
	}
	rt.Angle = math.Mod(rt.Angle+delta, 360)
	if rt.Angle < 0 {
		rt.Angle += 360
	}
	if rt.OnRotate != nil {
		rt.OnRotate(rt.Angle)
	}
	return handle(log, "rotate", rt.Renderer.RequestRepaint(false))
}
