// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recorder

import (
	"bytes"
	"fmt"
	"sync"

	"cogentcore.org/charts/base/errors"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
)

// Fixed measures text with a fixed advance per rune and a fixed
// line height, which keeps layouts predictable in tests.
type Fixed struct {
	CharWidth  float64
	LineHeight float64
}

// DefaultFixed is a 7x13 fixed metric, matching the common
// fixed-size bitmap font.
var DefaultFixed = &Fixed{CharWidth: 7, LineHeight: 13}

func (fm *Fixed) TextLineWidth(line string) float64 {
	return fm.CharWidth * float64(len([]rune(line)))
}

func (fm *Fixed) TextLineHeight(line string) float64 {
	return fm.LineHeight
}

// Face measures text from the advances and extents of a font face.
type Face struct {

	// Size is the font size in pixels.
	Size float64

	face *font.Face
}

// NewFace returns metrics for the first face in the given
// TrueType or OpenType data, at the given size in pixels.
func NewFace(ttf []byte, size float64) (*Face, error) {
	faces, err := font.ParseTTC(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if len(faces) == 0 {
		return nil, errors.New("failed to parse font: no faces")
	}
	return &Face{Size: size, face: faces[0]}, nil
}

var (
	sansOnce sync.Once
	sansFace *font.Face
)

// SansFace returns metrics for the Latin Modern Sans face at the given size.
func SansFace(size float64) *Face {
	sansOnce.Do(func() {
		sansFace = errors.Must1(font.ParseTTC(bytes.NewReader(lmsans10regular.TTF)))[0]
	})
	return &Face{Size: size, face: sansFace}
}

func (fm *Face) scale() float64 {
	return fm.Size / float64(fm.face.Upem())
}

func (fm *Face) TextLineWidth(line string) float64 {
	adv := float32(0)
	for _, r := range line {
		gid, _ := fm.face.Cmap.Lookup(r)
		adv += fm.face.HorizontalAdvance(gid)
	}
	return float64(adv) * fm.scale()
}

func (fm *Face) TextLineHeight(line string) float64 {
	ext, ok := fm.face.FontHExtents()
	if !ok {
		return 1.2 * fm.Size
	}
	return float64(ext.Ascender-ext.Descender+ext.LineGap) * fm.scale()
}
