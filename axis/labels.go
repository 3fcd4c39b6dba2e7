// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDecimals is the maximum number of decimals in a label.
const maxDecimals = 12

// Decimals returns the number of decimals needed to show
// multiples of tick exactly.
func Decimals(tick float64) int {
	tick = math.Abs(tick)
	if tick == 0 || math.IsNaN(tick) || math.IsInf(tick, 0) {
		return 0
	}
	for d := 0; d < maxDecimals; d++ {
		s := tick * math.Pow10(d)
		if math.Abs(s-math.Round(s)) <= 1e-9*s {
			return d
		}
	}
	return maxDecimals
}

// Formatter formats tick values as labels.
type Formatter struct {
	Style LabelFormats

	// Locale is the BCP 47 tag used for [Locale] formatting.
	// An empty or unknown tag formats as English.
	Locale string

	printer *message.Printer
}

// NewFormatter returns a formatter for the given format and locale.
func NewFormatter(format LabelFormats, locale string) *Formatter {
	f := &Formatter{Style: format, Locale: locale}
	if format == Locale {
		f.printer = newPrinter(locale)
	}
	return f
}

func newPrinter(locale string) *message.Printer {
	tag := language.English
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			tag = t
		}
	}
	return message.NewPrinter(tag)
}

// Format returns the label for value v on an axis with the given tick.
func (f *Formatter) Format(v, tick float64) string {
	if v == 0 {
		v = 0 // no negative zero
	}
	switch f.Style {
	case SI:
		return formatSI(v, tick)
	case Locale:
		if f.printer == nil {
			f.printer = newPrinter(f.Locale)
		}
		d := Decimals(tick)
		return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(d), number.MaxFractionDigits(d)))
	}
	return strconv.FormatFloat(v, 'f', Decimals(tick), 64)
}

func formatSI(v, tick float64) string {
	value, prefix := humanize.ComputeSI(v)
	factor := 1.0
	if value != 0 {
		factor = math.Pow10(int(math.Round(math.Log10(v / value))))
	}
	return humanize.FtoaWithDigits(value, Decimals(tick/factor)) + prefix
}
