// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

// ErrTooManyVariables is returned when the variables section defines
// more than maxVariables entries. The bound caps substitution cost and
// guards against misconfiguration.
var ErrTooManyVariables = errors.New("more than 64 variables defined")

// ErrNotInteger is returned when a value requested through the integer
// lane is not a JSON number with an integral value in int32 range.
// Strings are never coerced to integers.
var ErrNotInteger = errors.New("value is not a 32-bit integer")

// FatalError marks a configuration failure the application cannot run
// through: an unreadable or malformed config file, a value of the
// wrong shape for its requested lane, or a variable table over its
// bound.
//
// Lookups report a missing section or key as absence, never as a
// FatalError. Callers that do receive a FatalError are expected to
// surface it to the top level, which logs it and terminates the
// process.
type FatalError struct {
	// Op describes the failed operation ("reading config",
	// "parsing config", ...).
	Op string

	// Path is the config file path for file-level failures.
	Path string

	// Root and Key name the offending value for value-level failures.
	Root string
	Key  string

	// Err is the underlying cause.
	Err error
}

func (e *FatalError) Error() string {
	switch {
	case e.Root != "" && e.Key != "":
		return fmt.Sprintf("%s %s.%s: %v", e.Op, e.Root, e.Key, e.Err)
	case e.Root != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Root, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *FatalError) Unwrap() error { return e.Err }

// IsFatal reports whether err is, or wraps, a FatalError.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
