// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/charts/axis"
	"github.com/muesli/termenv"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// printAxis prints the layout of the axis.
func printAxis(o *termenv.Output, ax *axis.Axis) {
	key := func(s string) termenv.Style {
		return o.String(fmt.Sprintf("%-8s", s)).Bold()
	}
	dr := ax.DataRange()
	fmt.Fprintf(o, "%s%v %s .. %s at %dpx\n", key("axis"), ax.Config.Orientation, num(dr.Min), num(dr.Max), ax.Size())
	spec, ok := ax.Spec()
	if !ok {
		fmt.Fprintln(o, o.String("no layout").Foreground(o.Color("1")))
		return
	}
	fmt.Fprintf(o, "%s%s\n", key("tick"), o.String(num(spec.Tick)).Foreground(o.Color("2")))
	fmt.Fprintf(o, "%s%s .. %s\n", key("bounds"), num(spec.Min), num(spec.Max))
	fmt.Fprintf(o, "%s%s\n", key("labels"), strings.Join(ax.Labels(), " "))
	grid := make([]string, 0, len(ax.Grid()))
	for _, p := range ax.Grid() {
		grid = append(grid, strconv.Itoa(p))
	}
	fmt.Fprintf(o, "%s%s\n", key("grid"), strings.Join(grid, " "))
}
