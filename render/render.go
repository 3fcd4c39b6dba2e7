// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the contract between axes and a drawing
// backend, along with backend-independent helpers for multi-line text,
// anchoring, label overlap, mouse regions and repaint requests.
// Concrete backends live in render/renderers.
package render

// Measurer measures single lines of text.
type Measurer interface {

	// TextLineWidth returns the width of a single line of text.
	TextLineWidth(line string) float64

	// TextLineHeight returns the height of a single line of text.
	TextLineHeight(line string) float64
}

// Renderer is the interface for all drawing backends. All coordinates
// are already resolved pixels, with y growing downward.
type Renderer interface {
	Measurer

	// DrawLine draws a line from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2 float64) error

	// DrawText draws the possibly multi-line text so that the given
	// anchor of its bounding box is at (x, y), rotated clockwise by
	// angle degrees.
	DrawText(x, y float64, text string, angle float64, anchor Anchors) error

	// FillRect fills the given rectangle.
	FillRect(x, y, w, h float64) error

	// RegisterMouseRegion registers handlers for mouse events
	// within the given region.
	RegisterMouseRegion(region Region, h MouseHandlers)

	// RequestRepaint asks the host to redraw, first re-deriving the
	// data model when rebuildData is set. It does not wait for the
	// redraw to happen.
	RequestRepaint(rebuildData bool) error
}

// MouseHandlers are the callbacks for a mouse region. Any of them may be nil.
type MouseHandlers struct {

	// OnWheel is called with the pointer position and the wheel motion,
	// which is negative for scrolling up.
	OnWheel func(x, y float64, motion int)

	// OnDrag is called with the pointer movement since the
	// previous drag event.
	OnDrag func(dx, dy float64)

	// OnMove is called when the pointer moves without a button down.
	OnMove func(x, y float64)

	// OnClick is called when a button is clicked.
	OnClick func(x, y float64)
}
