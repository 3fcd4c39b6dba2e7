// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"

	"cogentcore.org/charts/scale"
)

// LayoutError is a malformed axis configuration or layout request.
type LayoutError struct {

	// Field is the name of the offending setting.
	Field string

	// Value is the offending value.
	Value any

	// Msg describes the constraint.
	Msg string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("axis layout: %s = %v: %s", e.Field, e.Value, e.Msg)
}

// ZoomState has the zoom settings of an axis.
type ZoomState struct {

	// Enabled allows zooming and panning with the mouse.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Step is the zoom factor for one wheel step, which must be > 1.
	Step float64 `toml:"step" yaml:"step" default:"1.2"`
}

// Config is the configuration of an axis.
type Config struct {

	// Title is the axis title; if empty, the measure names are used.
	Title string `toml:"title,omitempty" yaml:"title,omitempty"`

	Orientation Orientations `toml:"orientation" yaml:"orientation"`

	Kind Kinds `toml:"kind" yaml:"kind"`

	// MinTickSpacing is the minimum distance between ticks in pixels.
	MinTickSpacing int `toml:"min_tick_spacing" yaml:"min_tick_spacing" default:"25"`

	// MaxLineCount is the maximum number of grid lines.
	MaxLineCount int `toml:"max_line_count" yaml:"max_line_count"`

	Zoom ZoomState `toml:"zoom" yaml:"zoom"`

	// UserMin forces the minimum, which is then never snapped to the tick grid.
	UserMin *float64 `toml:"user_min,omitempty" yaml:"user_min,omitempty"`

	// UserMax forces the maximum, which is then never snapped to the tick grid.
	UserMax *float64 `toml:"user_max,omitempty" yaml:"user_max,omitempty"`

	// UserTick forces the tick size.
	UserTick *float64 `toml:"user_tick,omitempty" yaml:"user_tick,omitempty"`

	Labels LabelFormats `toml:"labels" yaml:"labels"`

	// Locale is the BCP 47 tag used by [Locale] labels, such as "de-CH".
	Locale string `toml:"locale,omitempty" yaml:"locale,omitempty"`

	NegativeMax scale.NegativeMaxPolicy `toml:"negative_max" yaml:"negative_max"`

	// TickLength is the length of tick marks in pixels.
	TickLength float64 `toml:"tick_length" yaml:"tick_length" default:"5"`
}

// Defaults sets the default values. Radial axes do not zoom by default.
func (c *Config) Defaults() {
	c.MinTickSpacing = 25
	c.MaxLineCount = math.MaxInt32
	c.Zoom.Enabled = c.Kind != Radial
	c.Zoom.Step = 1.2
	c.TickLength = 5
}

// NewConfig returns a configuration of the given orientation with defaults.
func NewConfig(o Orientations) Config {
	c := Config{Orientation: o}
	c.Defaults()
	return c
}

// Validate returns a [*LayoutError] for the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.MinTickSpacing < 1:
		return &LayoutError{"MinTickSpacing", c.MinTickSpacing, "must be at least 1"}
	case c.MaxLineCount < 1:
		return &LayoutError{"MaxLineCount", c.MaxLineCount, "must be at least 1"}
	case !(c.Zoom.Step > 1) || math.IsInf(c.Zoom.Step, 0):
		return &LayoutError{"Zoom.Step", c.Zoom.Step, "must be greater than 1"}
	case c.Orientation < 0 || c.Orientation >= OrientationsN:
		return &LayoutError{"Orientation", c.Orientation, "unknown orientation"}
	case c.Kind < 0 || c.Kind >= KindsN:
		return &LayoutError{"Kind", c.Kind, "unknown kind"}
	case c.Labels < 0 || c.Labels >= LabelFormatsN:
		return &LayoutError{"Labels", c.Labels, "unknown label format"}
	case c.TickLength < 0:
		return &LayoutError{"TickLength", c.TickLength, "must not be negative"}
	}
	if err := checkFinite("UserMin", c.UserMin); err != nil {
		return err
	}
	if err := checkFinite("UserMax", c.UserMax); err != nil {
		return err
	}
	if c.UserTick != nil && (!(*c.UserTick > 0) || math.IsInf(*c.UserTick, 0)) {
		return &LayoutError{"UserTick", *c.UserTick, "must be positive"}
	}
	if c.UserMin != nil && c.UserMax != nil && *c.UserMin >= *c.UserMax {
		return &LayoutError{"UserMin", *c.UserMin, fmt.Sprintf("must be less than UserMax %v", *c.UserMax)}
	}
	return nil
}

func checkFinite(field string, v *float64) error {
	if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
		return &LayoutError{field, *v, "must be finite"}
	}
	return nil
}
