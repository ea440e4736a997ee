// SPDX-License-Identifier: MIT
// Package: closestpair/pointgen
//
// errors.go — sentinel errors for the pointgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach parameters with %w, never in the sentinel text.
//   • Generators never panic at runtime; option constructors panic on nil.

package pointgen

import (
	"errors"
	"fmt"
)

// ErrBadCount indicates a negative number of points was requested.
var ErrBadCount = errors.New("pointgen: point count must be non-negative")

// ErrBadRange indicates a coordinate range with min > max.
var ErrBadRange = errors.New("pointgen: empty coordinate range")

// wrapf attaches method context to a sentinel.
func wrapf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
