// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"strings"

	"cogentcore.org/charts/scale"
)

// Orientations are the directions along which an axis is laid out.
type Orientations int32 //enums:enum

const (
	// Horizontal axes grow to the right.
	Horizontal Orientations = iota

	// Vertical axes grow upward, so positions are mirrored
	// relative to screen coordinates.
	Vertical

	OrientationsN
)

// Kinds are the kinds of axis.
type Kinds int32 //enums:enum

const (
	// Linear is a cartesian axis.
	Linear Kinds = iota

	// Radial is the value axis of a round chart, where positions
	// are distances from the center.
	Radial

	KindsN
)

// LabelFormats are the ways tick values are formatted as labels.
type LabelFormats int32 //enums:enum

const (
	// Plain formats values with as many decimals as the tick needs.
	Plain LabelFormats = iota

	// SI formats values with SI prefixes, such as 1.5k.
	SI

	// Locale formats values with the digit grouping and decimal
	// separator of the configured locale.
	Locale

	LabelFormatsN
)

var (
	orientationNames = []string{"Horizontal", "Vertical"}
	kindNames        = []string{"Linear", "Radial"}
	labelFormatNames = []string{"Plain", "SI", "Locale"}
)

func enumString(names []string, typ string, v int32) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, v)
	}
	return names[v]
}

func enumParse(names []string, typ string, text []byte) (int32, error) {
	for i, nm := range names {
		if strings.EqualFold(nm, string(text)) {
			return int32(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid value for type %s", string(text), typ)
}

func (o Orientations) String() string { return enumString(orientationNames, "Orientations", int32(o)) }
func (k Kinds) String() string        { return enumString(kindNames, "Kinds", int32(k)) }
func (lf LabelFormats) String() string {
	return enumString(labelFormatNames, "LabelFormats", int32(lf))
}

func (o Orientations) MarshalText() ([]byte, error)  { return []byte(o.String()), nil }
func (k Kinds) MarshalText() ([]byte, error)         { return []byte(k.String()), nil }
func (lf LabelFormats) MarshalText() ([]byte, error) { return []byte(lf.String()), nil }

func (o *Orientations) UnmarshalText(text []byte) error {
	v, err := enumParse(orientationNames, "Orientations", text)
	if err == nil {
		*o = Orientations(v)
	}
	return err
}

func (k *Kinds) UnmarshalText(text []byte) error {
	v, err := enumParse(kindNames, "Kinds", text)
	if err == nil {
		*k = Kinds(v)
	}
	return err
}

func (lf *LabelFormats) UnmarshalText(text []byte) error {
	v, err := enumParse(labelFormatNames, "LabelFormats", text)
	if err == nil {
		*lf = LabelFormats(v)
	}
	return err
}

// Strategy returns the scale strategy for the kind.
func (k Kinds) Strategy() scale.Strategy {
	if k == Radial {
		return scale.Radial{}
	}
	return scale.Linear{}
}
