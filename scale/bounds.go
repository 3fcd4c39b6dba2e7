// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"strings"
)

// Bounds is a resolved axis range.
type Bounds struct {
	Min float64
	Max float64
}

// Range returns Max - Min.
func (b Bounds) Range() float64 {
	return b.Max - b.Min
}

// NegativeMaxPolicy determines how a negative maximum that is not on
// the tick grid is adjusted.
type NegativeMaxPolicy int32 //enums:enum

const (
	// RoundUp snaps every non-fixed maximum up to the next tick multiple,
	// including negative ones.
	RoundUp NegativeMaxPolicy = iota

	// LegacyKeep leaves a negative off-grid maximum where it is and does
	// not report it as a change. Charts whose data ends below zero then
	// show an unlabeled gap at the top.
	LegacyKeep

	// NegativeMaxPolicyN is the number of policies.
	NegativeMaxPolicyN
)

var negativeMaxNames = []string{"RoundUp", "LegacyKeep"}

// String returns the name of the policy.
func (p NegativeMaxPolicy) String() string {
	if p < 0 || p >= NegativeMaxPolicyN {
		return fmt.Sprintf("NegativeMaxPolicy(%d)", int32(p))
	}
	return negativeMaxNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p NegativeMaxPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Names are matched case-insensitively.
func (p *NegativeMaxPolicy) UnmarshalText(text []byte) error {
	for i, nm := range negativeMaxNames {
		if strings.EqualFold(nm, string(text)) {
			*p = NegativeMaxPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type NegativeMaxPolicy", string(text))
}

// OnGrid returns whether v is a multiple of tick, within a small
// tolerance plus the rounding error of v/tick.
func OnGrid(v, tick float64) bool {
	q := v / tick
	return math.Abs(q-math.Round(q)) <= relTol+math.Abs(q)*quotientTol
}

// quotientTol is a few ulps of a quotient, relative to its magnitude.
const quotientTol = 1e-15

// SnapDown returns the largest multiple of tick that is <= v.
// Values already on the grid are returned unchanged.
func SnapDown(v, tick float64) float64 {
	if OnGrid(v, tick) {
		return v
	}
	return Multiple(math.Floor(v/tick), tick)
}

// SnapUp returns the smallest multiple of tick that is >= v.
// Values already on the grid are returned unchanged.
func SnapUp(v, tick float64) float64 {
	if OnGrid(v, tick) {
		return v
	}
	return Multiple(math.Ceil(v/tick), tick)
}

// AdjustBounds snaps the non-fixed ends of b outward to multiples of
// tick and reports whether either end changed. Fixed ends are kept.
func AdjustBounds(b Bounds, tick float64, fixedMin, fixedMax bool, policy NegativeMaxPolicy) (Bounds, bool) {
	if !(tick > 0) || math.IsInf(tick, 0) {
		return b, false
	}
	out := b
	if !fixedMin {
		out.Min = SnapDown(b.Min, tick)
	}
	if !fixedMax && !(policy == LegacyKeep && b.Max < 0) {
		out.Max = SnapUp(b.Max, tick)
	}
	return out, out != b
}

// Multiple returns k*tick. A tick below 1 that is the reciprocal of an
// integer, as every nice tick is, divides k by that integer instead, so
// that 3 * 0.1 gives 0.3 rather than 0.30000000000000004.
func Multiple(k, tick float64) float64 {
	if tick < 1 {
		inv := 1 / tick
		if ri := math.Round(inv); math.Abs(inv-ri) <= relTol*ri {
			return clean(k / ri)
		}
	}
	return clean(k * tick)
}

// clean turns negative zero into zero.
func clean(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
