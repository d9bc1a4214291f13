// SPDX-License-Identifier: MIT
// Multiplication and the cube-diagonal triangle certificate.
package matrix

import "fmt"

// Mul returns m * other. Returns ErrDimensionMismatch when m's column
// count differs from other's row count.
//
// Complexity: O(rows * cols * inner).
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := &Dense{rows: m.rows, cols: other.cols, data: make([]int, m.rows*other.cols)}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] += a * other.data[k*other.cols+j]
			}
		}
	}

	return out, nil
}

// DiagCube returns the diagonal of m^3. Entry v counts the closed
// three-step walks through v; for a 0/1 adjacency matrix a nonzero entry
// proves a triangle through vertex v. One explicit square followed by a
// row-column dot product keeps it at two matrix passes instead of three.
//
// Returns ErrNonSquare for a non-square receiver.
//
// Complexity: O(n^3).
func (m *Dense) DiagCube() ([]int, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.rows, m.cols)
	}
	sq, err := m.Mul(m)
	if err != nil {
		return nil, err
	}
	n := m.rows
	diag := make([]int, n)
	for v := 0; v < n; v++ {
		sum := 0
		for k := 0; k < n; k++ {
			sum += m.data[v*n+k] * sq.data[k*n+v]
		}
		diag[v] = sum
	}

	return diag, nil
}
