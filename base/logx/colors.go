// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// LevelColor returns the string colored for the given level:
// gray for debug, green for info, yellow for warn and red for error.
// Terminals without color support get the string unchanged.
func LevelColor(level slog.Level, str string) string {
	s := Output.String(str)
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSIGreen)
	default:
		s = s.Foreground(termenv.ANSIBrightBlack)
	}
	return s.String()
}

// TitleColor returns the string in bold.
func TitleColor(str string) string {
	return Output.String(str).Bold().String()
}
