// SPDX-License-Identifier: MIT
// Package matrix provides the small integer linear algebra the graph
// recognizers need: a row-major dense matrix over int, multiplication, and
// the diagonal of the cube of a 0/1 adjacency matrix.
//
// Why the cube diagonal? For an adjacency matrix A, (A^3)[v][v] counts the
// closed walks of length three through v; a nonzero entry certifies a
// triangle through v. The claw-free recognizer runs this on complement
// graphs, where a triangle is an independent triple of the original.
//
// Errors:
//
//	ErrBadShape          - non-positive dimensions.
//	ErrDimensionMismatch - operand shapes incompatible for the operation.
//	ErrNonSquare         - a square matrix was required.
//
// All sentinels are returned, never panicked, and matched via errors.Is;
// wrap with fmt.Errorf("ctx: %w", ...) when context is needed. Panics are
// reserved for programmer errors (out-of-range At/Set indices).
package matrix
