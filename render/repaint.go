// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/charts/base/errors"
)

// RenderError is an error raised by a backend while drawing or
// handling a repaint request.
type RenderError struct {

	// Op is the operation that failed, such as "DrawLine".
	Op string

	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// IsRenderError returns whether err is or wraps a [*RenderError].
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}

// Wrap returns err as a [*RenderError] for the given operation,
// or nil if err is nil. Errors that already are render errors
// are returned unchanged.
func Wrap(op string, err error) error {
	if err == nil || IsRenderError(err) {
		return err
	}
	return &RenderError{Op: op, Err: err}
}

// Repainters is a list of host functions called on repaint requests,
// which backends embed to implement [Renderer.RequestRepaint].
type Repainters struct {
	funcs []func(rebuildData bool) error

	// Requests counts the repaint requests made.
	Requests int
}

// OnRepaint adds a function called on each repaint request.
func (rp *Repainters) OnRepaint(fun func(rebuildData bool) error) {
	rp.funcs = append(rp.funcs, fun)
}

// RequestRepaint calls every repaint function in order. All of them
// are called even if one fails; the first error is returned as a
// [*RenderError].
func (rp *Repainters) RequestRepaint(rebuildData bool) error {
	rp.Requests++
	var first error
	for _, fun := range rp.funcs {
		if err := fun(rebuildData); err != nil && first == nil {
			first = err
		}
	}
	return Wrap("RequestRepaint", first)
}
