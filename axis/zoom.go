// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "math"

// ListenerID identifies a registered listener.
type ListenerID int

// Listener is called with the new user bounds after a zoom or translate.
type Listener func(userMin, userMax float64)

// AddListener registers a listener, which is called after
// listeners registered before it.
func (a *Axis) AddListener(fun Listener) ListenerID {
	a.nextID++
	a.listeners.Add(a.nextID, fun)
	return a.nextID
}

// RemoveListener removes a listener, returning false if it was
// not registered.
func (a *Axis) RemoveListener(id ListenerID) bool {
	return a.listeners.DeleteKey(id)
}

// notify calls the listeners on a copy of the list. Listeners must
// not add or remove listeners; any that do only affect later
// notifications.
func (a *Axis) notify(userMin, userMax float64) {
	for _, fun := range a.listeners.Values() {
		fun(userMin, userMax)
	}
}

// ZoomEnabled returns whether zooming and panning are enabled.
func (a *Axis) ZoomEnabled() bool {
	return a.Config.Zoom.Enabled
}

// SetZoomEnabled enables or disables zooming and panning.
func (a *Axis) SetZoomEnabled(on bool) {
	a.Config.Zoom.Enabled = on
}

// ZoomStep returns the zoom factor of one wheel step.
func (a *Axis) ZoomStep() float64 {
	return a.Config.Zoom.Step
}

// SetZoomStep sets the zoom factor of one wheel step, which must be > 1.
func (a *Axis) SetZoomStep(step float64) error {
	if !(step > 1) || math.IsInf(step, 0) {
		return &LayoutError{"Zoom.Step", step, "must be greater than 1"}
	}
	a.Config.Zoom.Step = step
	return nil
}

// canMove returns whether zoom and translate apply.
func (a *Axis) canMove() bool {
	return a.Config.Zoom.Enabled && a.laidOut
}

// Zoom scales the range around the value at centerFraction of the
// range, where 0 is the minimum and 1 the maximum. A factor below 1
// zooms in. The new bounds become the user bounds and take effect
// immediately, and listeners are notified. It returns false and does
// nothing when zoom is disabled, there is no layout, or the factor
// is not positive.
func (a *Axis) Zoom(factor, centerFraction float64) bool {
	if !a.canMove() || !(factor > 0) || math.IsInf(factor, 0) || math.IsNaN(centerFraction) {
		return false
	}
	anchor := a.spec.Min + (a.spec.Max-a.spec.Min)*centerFraction
	a.move(anchor+(a.spec.Min-anchor)*factor, anchor+(a.spec.Max-anchor)*factor)
	return true
}

// Translate shifts the range by delta in value units. The new bounds
// become the user bounds and take effect immediately, and listeners
// are notified. It returns false and does nothing when zoom is
// disabled or there is no layout.
func (a *Axis) Translate(delta float64) bool {
	if !a.canMove() || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return false
	}
	a.move(a.spec.Min+delta, a.spec.Max+delta)
	return true
}

func (a *Axis) move(userMin, userMax float64) {
	a.user.SetMin(userMin)
	a.user.SetMax(userMax)
	a.spec.Min, a.spec.Max = userMin, userMax
	a.regrid()
	a.stale = true
	a.version++
	a.notify(userMin, userMax)
}
