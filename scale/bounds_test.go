// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustBounds(t *testing.T) {
	b, changed := AdjustBounds(Bounds{3, 97}, 5, false, false, RoundUp)
	assert.True(t, changed)
	assert.Equal(t, Bounds{0, 100}, b)

	b, changed = AdjustBounds(Bounds{0, 100}, 5, false, false, RoundUp)
	assert.False(t, changed)
	assert.Equal(t, Bounds{0, 100}, b)

	b, changed = AdjustBounds(Bounds{-5, 5}, 2, false, false, RoundUp)
	assert.True(t, changed)
	assert.Equal(t, Bounds{-6, 6}, b)

	b, changed = AdjustBounds(Bounds{3, 97}, 5, true, false, RoundUp)
	assert.True(t, changed)
	assert.Equal(t, Bounds{3, 100}, b)

	b, changed = AdjustBounds(Bounds{3, 97}, 5, true, true, RoundUp)
	assert.False(t, changed)
	assert.Equal(t, Bounds{3, 97}, b)
}

func TestAdjustBoundsDecimal(t *testing.T) {
	b, changed := AdjustBounds(Bounds{0.13, 0.87}, 0.2, false, false, RoundUp)
	assert.True(t, changed)
	assert.Equal(t, Bounds{0, 1}, b)

	b, changed = AdjustBounds(Bounds{0.3, 0.7}, 0.1, false, false, RoundUp)
	assert.False(t, changed)
	assert.Equal(t, Bounds{0.3, 0.7}, b)

	b, _ = AdjustBounds(Bounds{0.21, 0.39}, 0.1, false, false, RoundUp)
	assert.Equal(t, Bounds{0.2, 0.4}, b)
}

func TestAdjustBoundsNegativeMax(t *testing.T) {
	b, changed := AdjustBounds(Bounds{-47, -3}, 2.5, false, false, RoundUp)
	assert.True(t, changed)
	assert.Equal(t, Bounds{-47.5, -2.5}, b)

	b, changed = AdjustBounds(Bounds{-47, -3}, 2.5, false, false, LegacyKeep)
	assert.True(t, changed)
	assert.Equal(t, Bounds{-47.5, -3}, b)

	// only the unrounded negative max: nothing is reported
	b, changed = AdjustBounds(Bounds{-47.5, -3}, 2.5, false, false, LegacyKeep)
	assert.False(t, changed)
	assert.Equal(t, Bounds{-47.5, -3}, b)

	// positive max is rounded under both policies
	b, _ = AdjustBounds(Bounds{-47, 3}, 2.5, false, false, LegacyKeep)
	assert.Equal(t, Bounds{-47.5, 5}, b)
}

func TestAdjustBoundsLargeOffset(t *testing.T) {
	b, changed := AdjustBounds(Bounds{1e12 + 0.3, 1e12 + 9.7}, 0.5, false, false, RoundUp)
	assert.True(t, changed)
	assert.Equal(t, Bounds{1e12, 1e12 + 10}, b)

	b, changed = AdjustBounds(Bounds{1e12, 1e12 + 10}, 0.5, false, false, RoundUp)
	assert.False(t, changed)
	assert.Equal(t, Bounds{1e12, 1e12 + 10}, b)

	assert.False(t, OnGrid(1e12+0.25, 0.5))
	assert.True(t, OnGrid(1e12+0.5, 0.5))
	assert.False(t, OnGrid(1.6e12+1, 1000))
}

func TestAdjustBoundsInvalidTick(t *testing.T) {
	b, changed := AdjustBounds(Bounds{3, 97}, 0, false, false, RoundUp)
	assert.False(t, changed)
	assert.Equal(t, Bounds{3, 97}, b)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, -6.0, SnapDown(-5, 2))
	assert.Equal(t, 6.0, SnapUp(5, 2))
	assert.Equal(t, 0.0, SnapDown(0.5, 2))
	assert.Equal(t, 0.0, SnapUp(-0.5, 2))
	assert.Equal(t, 0.6, SnapUp(0.55, 0.2))
	assert.Equal(t, 1.25, SnapDown(1.3, 0.25))
	assert.True(t, OnGrid(0.30000000000000004, 0.1))
	assert.False(t, OnGrid(0.31, 0.1))
}

func TestMultiple(t *testing.T) {
	assert.Equal(t, 0.3, Multiple(3, 0.1))
	assert.Equal(t, 0.7, Multiple(7, 0.1))
	assert.Equal(t, -0.6, Multiple(-3, 0.2))
	assert.Equal(t, 7.5, Multiple(3, 2.5))
	assert.Equal(t, 0.0, Multiple(0, 0.1))
}

func TestNegativeMaxPolicyText(t *testing.T) {
	assert.Equal(t, "LegacyKeep", LegacyKeep.String())
	assert.Equal(t, "NegativeMaxPolicy(7)", NegativeMaxPolicy(7).String())

	txt, err := LegacyKeep.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "LegacyKeep", string(txt))

	var p NegativeMaxPolicy
	require.NoError(t, p.UnmarshalText([]byte("legacykeep")))
	assert.Equal(t, LegacyKeep, p)
	assert.Error(t, p.UnmarshalText([]byte("sideways")))
}
