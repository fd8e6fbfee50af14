// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinels and the static panic
// messages used across the matrix package. Tests MUST check errors via
// errors.Is. Panics are reserved for programmer errors (out-of-range
// indexing).

package matrix

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by Inverse when the determinant is exactly 0.
// Near-singular matrices are not rejected: they invert to very large or
// non-finite entries.
var ErrSingular = errors.New("matrix: singular matrix has no inverse")

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
)

// Static panic messages (no magic strings at call sites).
const (
	panicIndexOutOfRange = "matrix: index out of range"
	panicVectorIndex     = "matrix: row/column index out of range"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching the sentinel.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
