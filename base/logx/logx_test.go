// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	level, out, logger := UserLevel, Output, slog.Default()
	defer func() {
		UserLevel, Output = level, out
		slog.SetDefault(logger)
	}()

	var b bytes.Buffer
	UserLevel = slog.LevelWarn
	SetOutput(&b)
	PrintlnInfo("hidden")
	PrintlnWarn("watch ", 3)
	PrintfError("failed: %d", 2)
	assert.Equal(t, "watch 3\nfailed: 2\n", b.String())

	b.Reset()
	slog.Info("quiet")
	slog.Warn("loud", "n", 1)
	assert.NotContains(t, b.String(), "quiet")
	assert.Contains(t, b.String(), "level=WARN msg=loud n=1")
}

func TestColors(t *testing.T) {
	out, logger := Output, slog.Default()
	defer func() {
		Output = out
		slog.SetDefault(logger)
	}()
	var b bytes.Buffer
	SetOutput(&b)
	// a buffer is not a terminal, so there are no colors
	assert.Equal(t, "x", LevelColor(slog.LevelError, "x"))
	assert.Equal(t, "x", TitleColor("x"))
}
