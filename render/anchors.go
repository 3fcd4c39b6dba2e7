// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
)

// Anchors specify which point of a text box is placed at the
// drawing position.
type Anchors int32 //enums:enum

const (
	Center Anchors = iota
	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest

	// AnchorsN is the number of anchors.
	AnchorsN
)

var anchorNames = []string{"Center", "North", "South", "East", "West", "NorthEast", "NorthWest", "SouthEast", "SouthWest"}

// String returns the name of the anchor.
func (a Anchors) String() string {
	if a < 0 || a >= AnchorsN {
		return fmt.Sprintf("Anchors(%d)", int32(a))
	}
	return anchorNames[a]
}

// MarshalText implements [encoding.TextMarshaler].
func (a Anchors) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Anchors) UnmarshalText(text []byte) error {
	for i, nm := range anchorNames {
		if strings.EqualFold(nm, string(text)) {
			*a = Anchors(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Anchors", string(text))
}

// Fractions returns the position of the anchor within a box as
// fractions of its width and height, from the top left.
func (a Anchors) Fractions() (fx, fy float64) {
	switch a {
	case North:
		return 0.5, 0
	case South:
		return 0.5, 1
	case East:
		return 1, 0.5
	case West:
		return 0, 0.5
	case NorthEast:
		return 1, 0
	case NorthWest:
		return 0, 0
	case SouthEast:
		return 1, 1
	case SouthWest:
		return 0, 1
	}
	return 0.5, 0.5
}
