// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
// It re-exports the standard functions so that it can be
// used as a drop-in replacement.
package errors

import (
	"errors"
	"fmt"
)

// New is [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Errorf is [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is is [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join is [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
