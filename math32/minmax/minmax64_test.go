// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var mr F64
	mr.SetInfinity()
	assert.False(t, mr.IsValid())

	assert.True(t, mr.FitValInRange(3))
	assert.True(t, mr.IsValid())
	assert.Equal(t, F64{3, 3}, mr)

	assert.False(t, mr.FitValInRange(math.NaN()))
	assert.False(t, mr.FitValInRange(math.Inf(1)))
	assert.True(t, mr.FitValInRange(-2))
	assert.True(t, mr.FitValInRange(8))
	assert.False(t, mr.FitValInRange(5))

	assert.Equal(t, F64{-2, 8}, mr)
	assert.Equal(t, 10.0, mr.Range())
	assert.Equal(t, 3.0, mr.Midpoint())
	assert.True(t, mr.InRange(8))
	assert.False(t, mr.InRange(8.5))

	assert.Equal(t, 0.5, mr.NormValue(3))
	assert.Equal(t, 3.0, mr.ProjValue(0.5))

	mr.Set(4, 4)
	assert.Equal(t, 0.0, mr.NormValue(10))
}

func TestRange64(t *testing.T) {
	var rr Range64
	data := F64{Min: 3, Max: 97}
	assert.Equal(t, data, rr.Clamp(data))

	rr.SetMin(0)
	assert.Equal(t, F64{Min: 0, Max: 97}, rr.Clamp(data))

	rr.SetMax(50)
	assert.Equal(t, F64{Min: 0, Max: 50}, rr.Clamp(data))
	assert.Equal(t, 50.0, rr.Range())

	rr.Clear()
	assert.False(t, rr.FixMin)
	assert.False(t, rr.FixMax)
}
