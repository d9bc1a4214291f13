// SPDX-License-Identifier: MIT
// Dense is a row-major int matrix backed by one flat slice.
package matrix

import "fmt"

// Dense stores an r x c integer matrix in row-major order.
type Dense struct {
	rows, cols int
	data       []int
}

// NewDense allocates a zeroed r x c matrix. Returns ErrBadShape for
// non-positive dimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Dense{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (r, c). Panics on out-of-range indices.
//
// Complexity: O(1).
func (m *Dense) At(r, c int) int {
	m.boundsCheck(r, c)

	return m.data[r*m.cols+c]
}

// Set stores v at (r, c). Panics on out-of-range indices.
//
// Complexity: O(1).
func (m *Dense) Set(r, c, v int) {
	m.boundsCheck(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Dense) boundsCheck(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) outside %dx%d", r, c, m.rows, m.cols))
	}
}
