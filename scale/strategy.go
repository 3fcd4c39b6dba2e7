// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Strategy is the behavior that differs between axis kinds.
type Strategy interface {

	// Resolve returns the tick size for the given range and pixel size.
	Resolve(min, max float64, sizePixels, minTickPixelSpacing int) float64

	// AdjustBounds snaps the non-fixed bounds to the tick grid,
	// reporting whether they changed.
	AdjustBounds(b Bounds, tick float64, fixedMin, fixedMax bool, policy NegativeMaxPolicy) (Bounds, bool)

	// Offset returns the pixel offset of v along an axis of the given size.
	Offset(v, min, max float64, size int, vertical bool) int
}

// Linear is the strategy for cartesian axes. Vertical axes grow
// upward, so their offsets are measured from the bottom.
type Linear struct{}

func (Linear) Resolve(min, max float64, sizePixels, minTickPixelSpacing int) float64 {
	return Resolve(min, max, sizePixels, minTickPixelSpacing)
}

func (Linear) AdjustBounds(b Bounds, tick float64, fixedMin, fixedMax bool, policy NegativeMaxPolicy) (Bounds, bool) {
	return AdjustBounds(b, tick, fixedMin, fixedMax, policy)
}

func (Linear) Offset(v, min, max float64, size int, vertical bool) int {
	r := Radius(v, min, max, size)
	if vertical {
		return size - r
	}
	return r
}

// Radial is the strategy for round charts, where the offset is a
// distance from the center and is never mirrored.
type Radial struct{}

func (Radial) Resolve(min, max float64, sizePixels, minTickPixelSpacing int) float64 {
	return Resolve(min, max, sizePixels, minTickPixelSpacing)
}

func (Radial) AdjustBounds(b Bounds, tick float64, fixedMin, fixedMax bool, policy NegativeMaxPolicy) (Bounds, bool) {
	return AdjustBounds(b, tick, fixedMin, fixedMax, policy)
}

func (Radial) Offset(v, min, max float64, size int, vertical bool) int {
	return Radius(v, min, max, size)
}

// MaxOffset is the largest pixel offset returned by [Radius].
const MaxOffset = math.MaxInt32

// Radius returns round((v-min)/(max-min)*size), clamped to
// ±[MaxOffset], or 0 when the range is empty or size is not positive.
func Radius(v, min, max float64, size int) int {
	if max == min || size <= 0 || !finite(v) {
		return 0
	}
	r := math.Round((v - min) / (max - min) * float64(size))
	return int(math.Max(-MaxOffset, math.Min(r, MaxOffset)))
}
