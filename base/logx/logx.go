// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging setup of command line tools:
// a user level for [log/slog], and leveled printing with colors
// chosen by the terminal profile.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level set by the user. Messages below
// it are not printed. It is Info by default, Debug with the "debug"
// build tag and Warn with the "release" build tag.
var UserLevel = defaultUserLevel

// Output is where leveled messages are printed.
var Output = termenv.NewOutput(os.Stderr)

// SetOutput makes leveled messages and the default [slog.Logger]
// write to w, filtered by [UserLevel].
func SetOutput(w io.Writer) {
	Output = termenv.NewOutput(w)
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// Print prints the message at the given level if it is at or
// above [UserLevel], colored for the level.
func Print(level slog.Level, msg string) {
	if level < UserLevel {
		return
	}
	fmt.Fprintln(Output, LevelColor(level, msg))
}

// PrintlnDebug prints the values at the debug level.
func PrintlnDebug(a ...any) {
	Print(slog.LevelDebug, fmt.Sprint(a...))
}

// PrintlnInfo prints the values at the info level.
func PrintlnInfo(a ...any) {
	Print(slog.LevelInfo, fmt.Sprint(a...))
}

// PrintlnWarn prints the values at the warn level.
func PrintlnWarn(a ...any) {
	Print(slog.LevelWarn, fmt.Sprint(a...))
}

// PrintlnError prints the values at the error level.
func PrintlnError(a ...any) {
	Print(slog.LevelError, fmt.Sprint(a...))
}

// PrintfWarn prints the formatted message at the warn level.
func PrintfWarn(format string, a ...any) {
	Print(slog.LevelWarn, fmt.Sprintf(format, a...))
}

// PrintfError prints the formatted message at the error level.
func PrintfError(format string, a ...any) {
	Print(slog.LevelError, fmt.Sprintf(format, a...))
}
