// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a small set of slog-based helpers on top of
// the standard library errors package. Stage code returns errors; these
// helpers are for call sites that want to log and move on.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// Re-exports of the standard library, so that this package can be used
// as a drop-in replacement:

var (
	// New returns an error that formats as the given text.
	New = errors.New

	// Join returns an error that wraps the given errors.
	Join = errors.Join

	// Is reports whether any error in err's tree matches target.
	Is = errors.Is

	// As finds the first error in err's tree that matches target.
	As = errors.As

	// Unwrap returns the result of calling the Unwrap method on err.
	Unwrap = errors.Unwrap
)

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error. The %w verb wraps errors as in [fmt.Errorf].
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value,
// logging the error if it is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must panics if the given error is non-nil. It is for configuration
// errors that should be impossible in a correctly wired program.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
