package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgraph/modgraph/builder"
	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/decompose"
	"github.com/modgraph/modgraph/mdtree"
)

func TestComplete(t *testing.T) {
	g, err := builder.Build(nil, builder.Complete(4))
	require.NoError(t, err)
	require.NoError(t, g.Check())

	assert.Equal(t, 4, g.Len())
	for v := 0; v < 4; v++ {
		assert.Equal(t, 3, g.Degree(v))
	}
}

func TestCycle(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(5))
	require.NoError(t, err)
	require.NoError(t, g.Check())

	assert.Equal(t, 5, g.Len())
	for v := 0; v < 5; v++ {
		assert.Equal(t, 2, g.Degree(v))
	}
	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	assert.Equal(t, mdtree.KindPrime, tr.Kind(tr.Root()))
}

func TestPath(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(4))
	require.NoError(t, err)
	require.NoError(t, g.Check())

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 1, g.Degree(3))
}

func TestStar_IsClaw(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(3))
	require.NoError(t, err)
	require.NoError(t, g.Check())

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.Degree(0))
	for v := 1; v <= 3; v++ {
		assert.Equal(t, 1, g.Degree(v))
	}
}

func TestSparse_DeterministicPerSeed(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(42)}
	a, err := builder.Build(opts, builder.Sparse(12, 0.4))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithSeed(42)}, builder.Sparse(12, 0.4))
	require.NoError(t, err)

	require.NoError(t, a.Check())
	assert.Equal(t, a.AdjacencyLabels(), b.AdjacencyLabels())
}

func TestSparse_ExtremeProbabilities(t *testing.T) {
	empty, err := builder.Build([]builder.Option{builder.WithSeed(1)}, builder.Sparse(6, 0))
	require.NoError(t, err)
	full, err := builder.Build([]builder.Option{builder.WithSeed(1)}, builder.Sparse(6, 1))
	require.NoError(t, err)

	for v := 0; v < 6; v++ {
		assert.Equal(t, 0, empty.Degree(v))
		assert.Equal(t, 5, full.Degree(v))
	}
}

func TestWithRand(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g, err := builder.Build([]builder.Option{builder.WithRand(r)}, builder.Sparse(5, 0.5))
	require.NoError(t, err)
	require.NoError(t, g.Check())
}

func TestWithLabelFn(t *testing.T) {
	shift := func(i int) core.Label { return core.Label(i + 100) }
	g, err := builder.Build([]builder.Option{builder.WithLabelFn(shift)}, builder.Path(3))
	require.NoError(t, err)

	for v := 0; v < 3; v++ {
		assert.Equal(t, core.Label(v+100), g.Label(v))
	}
}

func TestBuild_LabelCollisionSurfaces(t *testing.T) {
	// Two constructors over the same label scheme collide on AddNode.
	_, err := builder.Build(nil, builder.Complete(3), builder.Path(3))
	require.ErrorIs(t, err, core.ErrDuplicateLabel)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.Option
		want error
	}{
		{"complete too small", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"star too small", builder.Star(0), nil, builder.ErrTooFewVertices},
		{"sparse bad p", builder.Sparse(4, 1.5), []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"sparse no rng", builder.Sparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(tc.opts, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
