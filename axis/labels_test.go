// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimals(t *testing.T) {
	assert.Equal(t, 0, Decimals(5))
	assert.Equal(t, 0, Decimals(1000))
	assert.Equal(t, 1, Decimals(2.5))
	assert.Equal(t, 1, Decimals(0.2))
	assert.Equal(t, 2, Decimals(0.25))
	assert.Equal(t, 3, Decimals(0.001))
	assert.Equal(t, 0, Decimals(0))
	assert.Equal(t, 0, Decimals(math.NaN()))
}

func TestFormatPlain(t *testing.T) {
	f := NewFormatter(Plain, "")
	assert.Equal(t, "0.3", f.Format(0.30000000000000004, 0.1))
	assert.Equal(t, "2.5", f.Format(2.5, 2.5))
	assert.Equal(t, "5.0", f.Format(5, 2.5))
	assert.Equal(t, "100", f.Format(100, 5))
	assert.Equal(t, "-6", f.Format(-6, 2))
	assert.Equal(t, "0", f.Format(math.Copysign(0, -1), 1))
	assert.Equal(t, "0.25", f.Format(0.25, 0.25))
}

func TestFormatSI(t *testing.T) {
	f := NewFormatter(SI, "")
	assert.Equal(t, "0", f.Format(0, 500))
	assert.Equal(t, "1.5k", f.Format(1500, 500))
	assert.Equal(t, "2.5M", f.Format(2.5e6, 5e5))
	assert.Equal(t, "20", f.Format(20, 5))
}

func TestFormatLocale(t *testing.T) {
	assert.Equal(t, "1,234.5", NewFormatter(Locale, "").Format(1234.5, 0.5))
	assert.Equal(t, "1.234,5", NewFormatter(Locale, "de").Format(1234.5, 0.5))
	assert.Equal(t, "1,000", NewFormatter(Locale, "not a tag!").Format(1000, 100))
}

func TestFormatterLiteral(t *testing.T) {
	f := &Formatter{Style: Locale}
	assert.Equal(t, "1,234.5", f.Format(1234.5, 0.5))
	f = &Formatter{Style: Locale, Locale: "de"}
	assert.Equal(t, "1.234,5", f.Format(1234.5, 0.5))
	assert.Equal(t, "12", (&Formatter{}).Format(12, 1))
}

func TestEnumsText(t *testing.T) {
	assert.Equal(t, "Vertical", Vertical.String())
	assert.Equal(t, "Radial", Radial.String())
	assert.Equal(t, "SI", SI.String())
	assert.Equal(t, "Kinds(4)", Kinds(4).String())

	var o Orientations
	require.NoError(t, o.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Vertical, o)
	assert.Error(t, o.UnmarshalText([]byte("diagonal")))

	var lf LabelFormats
	require.NoError(t, lf.UnmarshalText([]byte("Locale")))
	assert.Equal(t, Locale, lf)

	var k Kinds
	require.NoError(t, k.UnmarshalText([]byte("RADIAL")))
	assert.Equal(t, Radial, k)

	b, err := Horizontal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Horizontal", string(b))
}
