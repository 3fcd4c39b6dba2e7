// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
// Use it in place of the standard library package so that
// log-and-continue sites read the same everywhere.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

var (
	// New is [errors.New].
	New = errors.New

	// Is is [errors.Is].
	Is = errors.Is

	// Join is [errors.Join].
	Join = errors.Join

	// Unwrap is [errors.Unwrap].
	Unwrap = errors.Unwrap
)

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
