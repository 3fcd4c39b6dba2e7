// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/charts/math32/minmax"
)

// MaxIterations is the maximum number of resolve and adjust rounds
// that [Converge] runs before accepting the last values.
const MaxIterations = 10

// maxValues bounds the number of grid values returned by [Values].
const maxValues = 100000

// Input holds everything needed to resolve an axis.
type Input struct {

	// Data is the range of the data shown on the axis.
	Data minmax.F64

	// User holds the user-forced bounds, which replace the data
	// bounds and are never snapped.
	User minmax.Range64

	// UserTick is a user-forced tick size; 0 means unset.
	UserTick float64

	// SizePixels is the length of the axis in pixels.
	SizePixels int

	// MinTickSpacing is the minimum number of pixels between ticks.
	MinTickSpacing int

	// MaxLineCount is the maximum number of grid lines;
	// values <= 0 mean unlimited.
	MaxLineCount int

	// NegativeMax selects how a negative maximum is snapped.
	NegativeMax NegativeMaxPolicy
}

// EffectiveSpacing returns the minimum tick spacing in pixels after
// applying MaxLineCount.
func (in *Input) EffectiveSpacing() int {
	sp := in.MinTickSpacing
	if in.MaxLineCount > 0 {
		sp = max(sp, in.SizePixels/in.MaxLineCount)
	}
	return sp
}

// Result is the outcome of [Converge].
type Result struct {
	Tick float64
	Min  float64
	Max  float64

	// Iterations is the number of resolve and adjust rounds run.
	Iterations int

	// Converged is set when the last round reported no change.
	// It is false when the iteration cap was hit.
	Converged bool

	// OK is false when the bounds were NaN or infinite and
	// nothing was resolved.
	OK bool
}

// Bounds returns the resolved bounds.
func (r *Result) Bounds() Bounds {
	return Bounds{Min: r.Min, Max: r.Max}
}

// Converge resolves a linear axis. See [ConvergeWith].
func Converge(in Input) Result {
	return ConvergeWith(Linear{}, in)
}

// ConvergeWith alternates between resolving the tick size and snapping
// the bounds until a round makes no change, or [MaxIterations] rounds
// have run. A user tick skips resolution and takes a single snapping
// round. Undefined bounds give a result that is not OK.
func ConvergeWith(s Strategy, in Input) Result {
	r := in.User.Clamp(in.Data)
	if !finite(r.Min) || !finite(r.Max) {
		return Result{Tick: math.NaN(), Min: r.Min, Max: r.Max}
	}
	b := Bounds{Min: r.Min, Max: r.Max}
	if b.Min >= b.Max {
		b.Min, b.Max = Widen(b.Min, b.Max)
	}
	fixMin, fixMax := in.User.FixMin, in.User.FixMax
	res := Result{OK: true}
	if in.UserTick > 0 && !math.IsInf(in.UserTick, 0) {
		b, _ = s.AdjustBounds(b, in.UserTick, fixMin, fixMax, in.NegativeMax)
		res.Tick = in.UserTick
		res.Min, res.Max = b.Min, b.Max
		res.Iterations = 1
		res.Converged = true
		return res
	}
	spacing := in.EffectiveSpacing()
	for i := 0; i < MaxIterations; i++ {
		tick := s.Resolve(b.Min, b.Max, in.SizePixels, spacing)
		nb, changed := s.AdjustBounds(b, tick, fixMin, fixMax, in.NegativeMax)
		res.Tick = tick
		res.Iterations = i + 1
		b = nb
		if !changed {
			res.Converged = true
			break
		}
	}
	res.Min, res.Max = b.Min, b.Max
	return res
}

// Values returns the multiples of tick that lie within min..max,
// in increasing order.
func Values(tick, min, max float64) []float64 {
	if !(tick > 0) || !finite(tick) || !finite(min) || !finite(max) || min > max {
		return nil
	}
	lo := math.Ceil(min/tick - relTol)
	hi := math.Floor(max/tick + relTol)
	if hi-lo >= maxValues {
		return nil
	}
	vals := make([]float64, 0, int(hi-lo)+1)
	for k := lo; k <= hi; k++ {
		vals = append(vals, Multiple(k, tick))
	}
	return vals
}
