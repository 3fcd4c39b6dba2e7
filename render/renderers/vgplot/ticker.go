// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vgplot

import (
	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/math32/minmax"
	"cogentcore.org/charts/scale"
	"gonum.org/v1/plot"
)

// Ticker is a [plot.Ticker] that places ticks with [scale.Converge]
// and labels them with an [axis.Formatter].
type Ticker struct {

	// SizePixels is the length of the axis.
	SizePixels int

	// MinTickSpacing is the minimum distance between ticks.
	MinTickSpacing int

	// MaxLineCount is the maximum number of ticks; <= 0 is unlimited.
	MaxLineCount int

	// Format formats the labels; nil is [axis.Plain].
	Format *axis.Formatter
}

// Resolve returns the converged tick and bounds for the given range.
// Plots should use the bounds as the axis range, so that the ticks
// land on both ends.
func (t Ticker) Resolve(min, max float64) scale.Result {
	return scale.Converge(scale.Input{
		Data:           minmax.F64{Min: min, Max: max},
		SizePixels:     t.SizePixels,
		MinTickSpacing: t.MinTickSpacing,
		MaxLineCount:   t.MaxLineCount,
	})
}

// Ticks returns the ticks within min..max.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	res := t.Resolve(min, max)
	if !res.OK {
		return nil
	}
	f := t.Format
	if f == nil {
		f = axis.NewFormatter(axis.Plain, "")
	}
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	var ticks []plot.Tick
	for _, v := range scale.Values(res.Tick, lo, hi) {
		ticks = append(ticks, plot.Tick{Value: v, Label: f.Format(v, res.Tick)})
	}
	return ticks
}
