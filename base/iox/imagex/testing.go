// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] save images instead of comparing
// them. It is set by the environment variable CHARTS_UPDATE_TESTDATA=true.
var UpdateTestImages = os.Getenv("CHARTS_UPDATE_TESTDATA") == "true"

// Tolerance is the maximum difference of a color channel
// accepted by [Assert].
var Tolerance = 10

func closeEnough(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -Tolerance && d <= Tolerance
}

// SameColor returns whether two colors differ by at most [Tolerance]
// in every channel.
func SameColor(a, b color.RGBA) bool {
	return closeEnough(a.R, b.R) && closeEnough(a.G, b.G) && closeEnough(a.B, b.B) && closeEnough(a.A, b.A)
}

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// Assert asserts that the image is the same as the one saved at the
// given name in the testdata directory, with ".png" added if there is
// no extension. A missing image is saved for future runs. On failure
// the image is saved with ".fail" before the extension.
func Assert(t TestingT, img image.Image, name string) {
	filename := filepath.Join("testdata", name)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
		return
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext

	saved, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving image: %v", err)
		}
		os.Remove(failFilename)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: error opening saved image: %v", err)
		return
	}
	if msg := compare(img, saved); msg != "" {
		t.Errorf("imagex.Assert: image for %s %s; see %s", filename, msg, failFilename)
		if err := Save(img, failFilename); err != nil {
			t.Errorf("imagex.Assert: error saving fail image: %v", err)
		}
		return
	}
	os.Remove(failFilename)
}

// compare returns a description of the first difference, or "".
func compare(img, saved image.Image) string {
	ib, sb := img.Bounds(), saved.Bounds()
	if ib != sb {
		return "has bounds " + ib.String() + " instead of " + sb.String()
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			if !SameColor(rgba(img, x, y), rgba(saved, x, y)) {
				return "differs at " + image.Pt(x, y).String()
			}
		}
	}
	return ""
}
