// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis provides the state of a chart axis: its data range,
// user overrides, resolved ticks and bounds, the mapping between
// values and pixel positions, zooming and panning, and drawing
// through a [render.Renderer].
//
// An Axis is not safe for concurrent use; all calls are expected on
// the thread that handles layout and input events.
package axis

import (
	"math"
	"strings"

	"cogentcore.org/charts/base/errors"
	"cogentcore.org/charts/base/ordmap"
	"cogentcore.org/charts/math32/minmax"
	"cogentcore.org/charts/scale"
	"github.com/jinzhu/copier"
)

// AxisRange is the data range of an axis with its user overrides.
type AxisRange struct {
	Data minmax.F64
	User minmax.Range64
}

// TickSpec is the result of a layout: the tick size and resolved bounds.
type TickSpec struct {
	Tick float64
	Min  float64
	Max  float64
}

// Snapshot is an immutable copy of the state of an axis
// as of its last change.
type Snapshot struct {

	// Version increases with every layout, zoom and translate.
	Version int

	// OK is set when the axis has a valid layout.
	OK bool

	Range AxisRange
	Spec  TickSpec

	// Size is the length of the axis in pixels.
	Size int

	Orientation Orientations

	// Values are the tick values from Min to Max.
	Values []float64

	// Grid are the pixel positions of Values.
	Grid []int

	// Labels are the formatted Values.
	Labels []string
}

// Axis is a chart axis. Create one with [New].
type Axis struct {

	// Config is the configuration, which must not be modified
	// directly after [New]; use the setters.
	Config Config

	strategy scale.Strategy
	format   *Formatter

	data     minmax.F64
	user     minmax.Range64
	measures []string

	spec    TickSpec
	laidOut bool
	stale   bool
	size    int
	values  []float64
	labels  []string
	version int

	listeners *ordmap.Map[ListenerID, Listener]
	nextID    ListenerID
}

// New returns a new axis with the given configuration, which is
// validated first. The configuration's user bounds become the
// initial user bounds.
func New(cfg Config) (*Axis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Axis{
		Config:    cfg,
		strategy:  cfg.Kind.Strategy(),
		format:    NewFormatter(cfg.Labels, cfg.Locale),
		listeners: ordmap.New[ListenerID, Listener](),
		stale:     true,
	}
	a.data.SetInfinity()
	if cfg.UserMin != nil {
		a.user.SetMin(*cfg.UserMin)
	}
	if cfg.UserMax != nil {
		a.user.SetMax(*cfg.UserMax)
	}
	return a, nil
}

// SetData extends the data range to include the given values.
// NaN and infinite values are skipped.
func (a *Axis) SetData(values ...float64) {
	for _, v := range values {
		a.data.FitValInRange(v)
	}
	a.stale = true
}

// SetDataRange sets the data range. The bounds are swapped if
// reversed; NaN bounds leave the axis without data.
func (a *Axis) SetDataRange(min, max float64) {
	a.data.SetInfinity()
	a.SetData(min, max)
}

// ClearData removes all data, so that the axis has no layout
// until data or user bounds are set.
func (a *Axis) ClearData() {
	a.data.SetInfinity()
	a.stale = true
}

// HasData returns whether any data has been set.
func (a *Axis) HasData() bool {
	return a.data.IsValid()
}

// DataRange returns the data range.
func (a *Axis) DataRange() minmax.F64 {
	return a.data
}

// AddMeasures adds the names of measures shown on the axis,
// which make up the default title.
func (a *Axis) AddMeasures(names ...string) {
	a.measures = append(a.measures, names...)
}

// ClearMeasures removes all measure names.
func (a *Axis) ClearMeasures() {
	a.measures = nil
}

// Title returns the configured title, or the measure names.
func (a *Axis) Title() string {
	if a.Config.Title != "" {
		return a.Config.Title
	}
	return strings.Join(a.measures, ", ")
}

// SetUserMin forces the minimum, or clears it for nil.
func (a *Axis) SetUserMin(v *float64) error {
	if v == nil {
		a.user.FixMin = false
		a.stale = true
		return nil
	}
	if err := checkFinite("UserMin", v); err != nil {
		return err
	}
	if a.user.FixMax && *v >= a.user.Max {
		return &LayoutError{"UserMin", *v, "must be less than the user maximum"}
	}
	a.user.SetMin(*v)
	a.stale = true
	return nil
}

// SetUserMax forces the maximum, or clears it for nil.
func (a *Axis) SetUserMax(v *float64) error {
	if v == nil {
		a.user.FixMax = false
		a.stale = true
		return nil
	}
	if err := checkFinite("UserMax", v); err != nil {
		return err
	}
	if a.user.FixMin && *v <= a.user.Min {
		return &LayoutError{"UserMax", *v, "must be greater than the user minimum"}
	}
	a.user.SetMax(*v)
	a.stale = true
	return nil
}

// SetUserTick forces the tick size, or clears it for nil.
func (a *Axis) SetUserTick(v *float64) error {
	if v != nil && (!(*v > 0) || math.IsInf(*v, 0)) {
		return &LayoutError{"UserTick", *v, "must be positive"}
	}
	if v != nil {
		t := *v
		v = &t
	}
	a.Config.UserTick = v
	a.stale = true
	return nil
}

// UserRange returns the user bounds.
func (a *Axis) UserRange() minmax.Range64 {
	return a.user
}

// ResetZoom clears the user bounds set by zooming and panning,
// so that the next layout follows the data again.
func (a *Axis) ResetZoom() {
	a.user.Clear()
	a.stale = true
}

// NeedsLayout returns whether the axis changed since the last layout.
func (a *Axis) NeedsLayout() bool {
	return a.stale
}

// Layout resolves the tick size and bounds for an axis of the given
// length in pixels, and computes the tick values, positions and labels.
// A negative size is a [*LayoutError]. Without data the axis simply
// has no layout, which is not an error.
func (a *Axis) Layout(sizePixels int) (TickSpec, error) {
	if sizePixels < 0 {
		return TickSpec{}, &LayoutError{"SizePixels", sizePixels, "must not be negative"}
	}
	a.size = sizePixels
	a.stale = false
	a.version++
	in := scale.Input{
		Data:           a.data,
		User:           a.user,
		SizePixels:     sizePixels,
		MinTickSpacing: a.Config.MinTickSpacing,
		MaxLineCount:   a.Config.MaxLineCount,
		NegativeMax:    a.Config.NegativeMax,
	}
	if !a.data.IsValid() {
		in.Data = minmax.F64{Min: math.NaN(), Max: math.NaN()}
	}
	if a.Config.UserTick != nil {
		in.UserTick = *a.Config.UserTick
	}
	res := scale.ConvergeWith(a.strategy, in)
	if !res.OK {
		a.laidOut = false
		a.spec = TickSpec{}
		a.values, a.labels = nil, nil
		return TickSpec{}, nil
	}
	a.laidOut = true
	a.spec = TickSpec{Tick: res.Tick, Min: res.Min, Max: res.Max}
	a.regrid()
	return a.spec, nil
}

// regrid recomputes the tick values and labels from the tick spec.
func (a *Axis) regrid() {
	a.values = scale.Values(a.spec.Tick, a.spec.Min, a.spec.Max)
	a.labels = make([]string, len(a.values))
	for i, v := range a.values {
		a.labels[i] = a.format.Format(v, a.spec.Tick)
	}
}

// Spec returns the tick size and bounds, and whether the axis
// has a layout.
func (a *Axis) Spec() (TickSpec, bool) {
	return a.spec, a.laidOut
}

// Size returns the length of the axis in pixels at the last layout.
func (a *Axis) Size() int {
	return a.size
}

// Values returns the tick values.
func (a *Axis) Values() []float64 {
	return a.values
}

// Labels returns the tick labels.
func (a *Axis) Labels() []string {
	return a.labels
}

// Version returns the version of the axis state, which increases
// with every layout, zoom and translate.
func (a *Axis) Version() int {
	return a.version
}

func (a *Axis) vertical() bool {
	return a.Config.Orientation == Vertical
}

// Radius returns the distance in pixels of v from the minimum end of
// the axis, or 0 when there is no layout or the range is empty.
func (a *Axis) Radius(v float64) int {
	if !a.laidOut {
		return 0
	}
	return scale.Radius(v, a.spec.Min, a.spec.Max, a.size)
}

// Position returns the pixel offset of v along the axis. For vertical
// linear axes it is measured from the top, so the minimum is at the
// bottom. It is 0 when there is no layout.
func (a *Axis) Position(v float64) int {
	if !a.laidOut {
		return 0
	}
	return a.strategy.Offset(v, a.spec.Min, a.spec.Max, a.size, a.vertical())
}

// Value returns the value at the given pixel offset, the inverse of
// [Axis.Position]. It is NaN when there is no layout or the size is 0.
func (a *Axis) Value(offset float64) float64 {
	if !a.laidOut || a.size == 0 {
		return math.NaN()
	}
	if a.vertical() && a.Config.Kind == Linear {
		offset = float64(a.size) - offset
	}
	return a.spec.Min + offset/float64(a.size)*(a.spec.Max-a.spec.Min)
}

// Grid returns the pixel positions of the tick values.
func (a *Axis) Grid() []int {
	grid := make([]int, len(a.values))
	for i, v := range a.values {
		grid[i] = a.Position(v)
	}
	return grid
}

// Snapshot returns a copy of the axis state that does not share
// memory with the axis.
func (a *Axis) Snapshot() Snapshot {
	cur := Snapshot{
		Version:     a.version,
		OK:          a.laidOut,
		Range:       AxisRange{Data: a.data, User: a.user},
		Spec:        a.spec,
		Size:        a.size,
		Orientation: a.Config.Orientation,
		Values:      a.values,
		Grid:        a.Grid(),
		Labels:      a.labels,
	}
	var s Snapshot
	errors.Log(copier.CopyWithOption(&s, &cur, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return s
}
