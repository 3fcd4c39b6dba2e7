// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides structs that hold Min and Max values,
// used for accumulating data ranges and for ranges with fixed ends.
package minmax

import "math"

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat, which is
// suitable for iteratively calling [F64.FitValInRange]. The range
// is not valid until at least one value has been fit.
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max. NaN values are never valid.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max).
func (mr *F64) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Midpoint returns point halfway between Min and Max.
func (mr *F64) Midpoint() float64 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range.
// NaN and infinite values are ignored. Returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range,
// without clipping. Returns 0 when the range is empty.
func (mr *F64) NormValue(val float64) float64 {
	r := mr.Range()
	if r == 0 {
		return 0
	}
	return (val - mr.Min) / r
}

// ProjValue projects a 0-1 normalized unit value into current Min / Max range
// (inverse of NormValue).
func (mr *F64) ProjValue(val float64) float64 {
	return mr.Min + (val * mr.Range())
}

// Range64 represents a range of values where either end can be fixed.
// Fixed ends are user-forced and take precedence over data-driven values.
type Range64 struct {

	// Min is the minimum value, used only when FixMin is set.
	Min float64

	// Max is the maximum value, used only when FixMax is set.
	Max float64

	// FixMin fixes the minimum end of the range.
	FixMin bool

	// FixMax fixes the maximum end of the range.
	FixMax bool
}

// SetMin fixes the minimum end to the given value.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.Min = mn
	rr.FixMin = true
	return rr
}

// SetMax fixes the maximum end to the given value.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.Max = mx
	rr.FixMax = true
	return rr
}

// Clear unfixes both ends.
func (rr *Range64) Clear() {
	*rr = Range64{}
}

// Range returns Max - Min.
func (rr *Range64) Range() float64 {
	return rr.Max - rr.Min
}

// Clamp returns the effective range for the given data range,
// replacing each end with the fixed value when that end is fixed.
func (rr *Range64) Clamp(data F64) F64 {
	if rr.FixMin {
		data.Min = rr.Min
	}
	if rr.FixMax {
		data.Max = rr.Max
	}
	return data
}
