// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. Algorithms return these sentinels and
// tests check them via errors.Is.
package matrix

import "errors"

var (
	// ErrBadShape indicates non-positive matrix dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates operand shapes incompatible for the
	// requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
