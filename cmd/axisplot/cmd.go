// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/charts/axis"
	"cogentcore.org/charts/base/logx"
	"cogentcore.org/charts/config"
	"github.com/jeandeaual/go-locale"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// options are the command line options.
type options struct {
	Min, Max    float64
	Size        int
	Spacing     int
	MaxLines    int
	Tick        float64
	UserMin     float64
	UserMax     float64
	Vertical    bool
	Labels      string
	Locale      string
	Config      string
	Out         string
	Backend     string
	Zoom        float64
	Center      float64
	Translate   float64
	Watch       bool
	Verbose     bool
	Title       string
	FontSize    float64
	userMinSet  bool
	userMaxSet  bool
	tickSet     bool
	spacingSet  bool
	maxLinesSet bool
	labelsSet   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "axisplot",
		Short: "Resolve and draw the ticks of a chart axis",
		Long: `Resolves the tick size and bounds of a chart axis for the given data range
and axis length, prints the ticks and their labels, and optionally draws
the axis to a PNG or SVG file. With --watch, the axis is resolved again each
time the --config file changes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			opts.userMinSet = fl.Changed("user-min")
			opts.userMaxSet = fl.Changed("user-max")
			opts.tickSet = fl.Changed("tick")
			opts.spacingSet = fl.Changed("spacing")
			opts.maxLinesSet = fl.Changed("max-lines")
			opts.labelsSet = fl.Changed("labels")
			if opts.Verbose {
				logx.UserLevel = slog.LevelDebug
			}
			logx.SetOutput(cmd.ErrOrStderr())
			out := cmd.OutOrStdout()
			if !opts.Watch {
				return run(opts, out)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, opts, out)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&opts.Min, "min", 0, "minimum of the data")
	fl.Float64Var(&opts.Max, "max", 100, "maximum of the data")
	fl.IntVar(&opts.Size, "size", 500, "length of the axis in pixels")
	fl.IntVar(&opts.Spacing, "spacing", 25, "minimum distance between ticks in pixels")
	fl.IntVar(&opts.MaxLines, "max-lines", 0, "maximum number of grid lines")
	fl.Float64Var(&opts.Tick, "tick", 0, "fixed tick size")
	fl.Float64Var(&opts.UserMin, "user-min", 0, "fixed minimum")
	fl.Float64Var(&opts.UserMax, "user-max", 0, "fixed maximum")
	fl.BoolVar(&opts.Vertical, "vertical", false, "lay out a vertical axis")
	fl.StringVar(&opts.Labels, "labels", "plain", "label format: plain, si or locale")
	fl.StringVar(&opts.Locale, "locale", "", "locale for locale labels; defaults to the system locale")
	fl.StringVarP(&opts.Config, "config", "c", "", "TOML or YAML axis configuration file")
	fl.StringVarP(&opts.Out, "out", "o", "", "PNG or SVG file to draw the axis into")
	fl.StringVar(&opts.Backend, "backend", "vg", "drawing backend: vg or raster")
	fl.Float64Var(&opts.Zoom, "zoom", 0, "zoom factor applied after layout")
	fl.Float64Var(&opts.Center, "center", 0.5, "zoom center as a fraction of the axis")
	fl.Float64Var(&opts.Translate, "translate", 0, "translation applied after layout, in data units")
	fl.BoolVarP(&opts.Watch, "watch", "w", false, "resolve again when the config file changes")
	fl.BoolVarP(&opts.Verbose, "verbose", "v", false, "print debug messages")
	fl.StringVar(&opts.Title, "title", "", "axis title")
	fl.Float64Var(&opts.FontSize, "font-size", 12, "font size of labels in pixels")
	return cmd
}

// axisConfig returns the axis configuration from the config file,
// if any, with the flags that were set applied on top.
func axisConfig(opts *options, file *config.Config) (axis.Config, error) {
	o := axis.Horizontal
	if opts.Vertical {
		o = axis.Vertical
	}
	cfg := axis.NewConfig(o)
	if file != nil {
		cfg = file.X
		if opts.Vertical {
			cfg = file.Y
		}
	}
	if opts.Title != "" {
		cfg.Title = opts.Title
	}
	if opts.spacingSet {
		cfg.MinTickSpacing = opts.Spacing
	}
	if opts.maxLinesSet {
		cfg.MaxLineCount = opts.MaxLines
	}
	if opts.tickSet {
		cfg.UserTick = &opts.Tick
	}
	if opts.userMinSet {
		cfg.UserMin = &opts.UserMin
	}
	if opts.userMaxSet {
		cfg.UserMax = &opts.UserMax
	}
	if opts.labelsSet {
		if err := cfg.Labels.UnmarshalText([]byte(opts.Labels)); err != nil {
			return cfg, err
		}
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}
	if cfg.Labels == axis.Locale && cfg.Locale == "" {
		if tag, err := locale.GetLocale(); err == nil {
			cfg.Locale = tag
		} else {
			logx.PrintlnWarn("cannot detect the system locale: ", err)
		}
	}
	return cfg, cfg.Validate()
}

// run resolves, prints and draws the axis once.
func run(opts *options, out io.Writer) error {
	var file *config.Config
	if opts.Config != "" {
		var err error
		file, err = config.Open(opts.Config)
		if err != nil {
			return err
		}
	}
	return runWith(opts, file, out)
}

func runWith(opts *options, file *config.Config, out io.Writer) error {
	cfg, err := axisConfig(opts, file)
	if err != nil {
		return err
	}
	ax, err := axis.New(cfg)
	if err != nil {
		return err
	}
	ax.SetDataRange(opts.Min, opts.Max)
	if _, err := ax.Layout(opts.Size); err != nil {
		return err
	}
	if opts.Zoom != 0 && !ax.Zoom(opts.Zoom, opts.Center) {
		return fmt.Errorf("axis cannot zoom by %v", opts.Zoom)
	}
	if opts.Translate != 0 && !ax.Translate(opts.Translate) {
		return fmt.Errorf("axis cannot translate by %v", opts.Translate)
	}
	if ax.NeedsLayout() {
		if _, err := ax.Layout(opts.Size); err != nil {
			return err
		}
	}
	printAxis(termenv.NewOutput(out), ax)
	if opts.Out != "" {
		return draw(ax, opts)
	}
	return nil
}

// watch runs once and then again on every change of the config file,
// until ctx is done.
func watch(ctx context.Context, opts *options, out io.Writer) error {
	if opts.Config == "" {
		return fmt.Errorf("--watch needs a --config file")
	}
	if err := run(opts, out); err != nil {
		return err
	}
	logx.PrintlnInfo("watching ", opts.Config)
	return config.Watch(ctx, opts.Config, func(c *config.Config) {
		logx.PrintlnDebug("reloaded ", opts.Config)
		if err := runWith(opts, c, out); err != nil {
			logx.PrintlnError(err)
		}
	})
}
