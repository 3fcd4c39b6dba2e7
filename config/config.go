// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads axis configuration from TOML or YAML files,
// and watches them for changes.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/base/iox/tomlx"
	"cogentcore.org/charts/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of the axes of a chart.
type Config struct {

	// X is the horizontal axis.
	X axis.Config `toml:"x" yaml:"x"`

	// Y is the vertical axis.
	Y axis.Config `toml:"y" yaml:"y"`
}

// New returns a new configuration with defaults applied.
func New() *Config {
	return &Config{X: axis.NewConfig(axis.Horizontal), Y: axis.NewConfig(axis.Vertical)}
}

// Validate validates both axes.
func (c *Config) Validate() error {
	if err := c.X.Validate(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := c.Y.Validate(); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	return nil
}

// Formats are the supported file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatFor returns the file format for the extension of filename:
// .toml, or .yaml and .yml.
func FormatFor(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported file type %q", filepath.Ext(filename))
}

// Expand returns filename with a leading ~ expanded to the home directory.
func Expand(filename string) (string, error) {
	return homedir.Expand(filename)
}

// Open reads the configuration from the given file, on top of the
// defaults, and validates it. Axis errors are [*axis.LayoutError]s.
func Open(filename string) (*Config, error) {
	fn, err := Expand(filename)
	if err != nil {
		return nil, err
	}
	format, err := FormatFor(fn)
	if err != nil {
		return nil, err
	}
	c := New()
	switch format {
	case YAML:
		err = yamlx.Open(c, fn)
	default:
		err = tomlx.Open(c, fn)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	return c, nil
}

// Save writes the configuration to the given file, in the format
// given by its extension.
func Save(c *Config, filename string) error {
	fn, err := Expand(filename)
	if err != nil {
		return err
	}
	format, err := FormatFor(fn)
	if err != nil {
		return err
	}
	if format == YAML {
		return yamlx.Save(c, fn)
	}
	return tomlx.Save(c, fn)
}
