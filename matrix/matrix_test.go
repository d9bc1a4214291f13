package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgraph/modgraph/matrix"
)

func fill(t *testing.T, rows, cols int, vals []int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i, v := range vals {
		m.Set(i/cols, i%cols, v)
	}

	return m
}

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetAndPanics(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Set(1, 0, 5)
	assert.Equal(t, 5, m.At(1, 0))
	assert.Equal(t, 0, m.At(0, 1))
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
}

func TestMul(t *testing.T) {
	a := fill(t, 2, 3, []int{1, 2, 3, 4, 5, 6})
	b := fill(t, 3, 2, []int{7, 8, 9, 10, 11, 12})

	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 58, p.At(0, 0))
	assert.Equal(t, 64, p.At(0, 1))
	assert.Equal(t, 139, p.At(1, 0))
	assert.Equal(t, 154, p.At(1, 1))

	_, err = a.Mul(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDiagCube_Triangle(t *testing.T) {
	// Adjacency of K3: every vertex sits on one triangle, walked in two
	// directions, so each diagonal entry of A^3 is 2.
	a := fill(t, 3, 3, []int{
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	})

	diag, err := a.DiagCube()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, diag)
}

func TestDiagCube_TriangleFree(t *testing.T) {
	// Path 0-1-2-3 has no triangles: zero diagonal.
	a := fill(t, 4, 4, []int{
		0, 1, 0, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		0, 0, 1, 0,
	})

	diag, err := a.DiagCube()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, diag)
}

func TestDiagCube_NonSquare(t *testing.T) {
	m := fill(t, 2, 3, []int{0, 1, 0, 1, 0, 1})
	_, err := m.DiagCube()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
