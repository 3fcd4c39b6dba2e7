// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale resolves "nice" tick sizes and axis bounds for a value
// range displayed over a number of pixels. Everything here is pure:
// the same inputs always produce the same outputs.
package scale

import "math"

// Multipliers are the nice multipliers of a power of ten that
// a tick size may take, in increasing order.
var Multipliers = []float64{1, 2, 2.5, 5, 10}

// DegenerateFraction is the fraction of |v| by which each bound of a
// degenerate range (min == max == v) is moved outward.
const DegenerateFraction = 0.1

// relTol is the relative tolerance used for nice-number and
// on-grid comparisons.
const relTol = 1e-9

// Widen returns a non-degenerate range for the given bounds.
// Reversed bounds are swapped. A single point v is widened by
// [DegenerateFraction] of |v| on each side, or to -1..1 when v is 0.
func Widen(min, max float64) (float64, float64) {
	if min > max {
		min, max = max, min
	}
	if min != max {
		return min, max
	}
	if min == 0 {
		return -1, 1
	}
	d := math.Abs(min) * DegenerateFraction
	return min - d, max + d
}

// Lines returns the number of tick intervals that fit in sizePixels
// when ticks are at least spacing pixels apart. It is always at least 1.
func Lines(sizePixels, spacing int) int {
	if spacing < 1 {
		spacing = 1
	}
	return max(1, sizePixels/spacing)
}

// Resolve returns the nice tick size for the range min..max displayed
// over sizePixels, with ticks at least minTickPixelSpacing pixels apart.
// The tick is the smallest multiplier of a power of ten that is at
// least (max-min)/lines. A range that crosses zero always spans at
// least two intervals of a grid through zero, so it gets two lines even
// when only one fits. NaN or infinite bounds give a NaN tick.
func Resolve(min, max float64, sizePixels, minTickPixelSpacing int) float64 {
	if !finite(min) || !finite(max) {
		return math.NaN()
	}
	min, max = Widen(min, max)
	lines := Lines(sizePixels, minTickPixelSpacing)
	if lines == 1 && min < 0 && max > 0 {
		lines = 2
	}
	return Nice((max - min) / float64(lines))
}

// Nice returns the smallest value c*10^e with c in [Multipliers]
// that is greater than or equal to raw, for raw > 0.
func Nice(raw float64) float64 {
	if !(raw > 0) || math.IsInf(raw, 0) {
		return math.NaN()
	}
	e := int(math.Floor(math.Log10(raw)))
	mag := pow10(e)
	// Log10 can be off by one ulp around exact powers of ten.
	for mag > raw {
		e--
		mag = pow10(e)
	}
	for mag*10 <= raw {
		e++
		mag = pow10(e)
	}
	if mag == 0 || math.IsInf(mag, 0) {
		return raw
	}
	lim := raw * (1 - relTol)
	for _, c := range Multipliers {
		if c*mag >= lim {
			return scaled(c, e)
		}
	}
	return scaled(10, e)
}

// scaled returns c*10^e, dividing for negative exponents so
// that decimal ticks such as 0.2 are exact.
func scaled(c float64, e int) float64 {
	if e < 0 {
		return c / pow10(-e)
	}
	return c * pow10(e)
}

func pow10(e int) float64 {
	return math.Pow10(e)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
