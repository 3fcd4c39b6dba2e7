// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides functions for reading and writing images
// in the formats supported by the standard library and x/image, and
// for comparing rendered images against saved test images.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the supported image formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

// ExtToFormat returns the format for a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	}
	return None, fmt.Errorf("imagex: extension %q not recognized", ext)
}

// Open opens an image from the given filename,
// returning its format.
func Open(filename string) (image.Image, Formats, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}

// Read reads an image from the given reader, returning its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	img, ext, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(ext)
	return img, f, err
}

// Save saves the image to the given filename,
// in the format given by its extension.
func Save(img image.Image, filename string) error {
	format, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := Write(img, bw, format); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image in the given format.
func Write(img image.Image, w io.Writer, format Formats) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, img, nil)
	case TIFF:
		return tiff.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("imagex: format %d not valid", format)
}
