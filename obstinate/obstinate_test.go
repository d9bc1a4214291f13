package obstinate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/obstinate"
)

// staircase builds the canonical obstinate graph of order 2k: halves
// a0..a(k-1) (labels 0..k-1) and b0..b(k-1) (labels k..2k-1), with the
// edge ai-bj present iff j <= i.
func staircase(t *testing.T, k int) *core.Graph {
	t.Helper()
	var edges [][2]core.Label
	for i := 0; i < k; i++ {
		for j := 0; j <= i; j++ {
			edges = append(edges, [2]core.Label{core.Label(i), core.Label(k + j)})
		}
	}
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

// requireCertificate verifies that a positive Result is a valid staircase
// certificate for g, whichever of the two symmetric labelings came back.
func requireCertificate(t *testing.T, g *core.Graph, res obstinate.Result) {
	t.Helper()
	require.True(t, res.Obstinate)
	if res.Kind == obstinate.KindComplement {
		g = g.Clone()
		g.Complement()
	}
	k := g.Len() / 2
	require.Len(t, res.A, k)
	require.Len(t, res.B, k)
	require.True(t, g.SetIsIndependent(res.A))
	require.True(t, g.SetIsIndependent(res.B))
	for i, v := range res.A {
		require.Equal(t, i+1, g.Degree(v))
		for j, w := range res.B {
			require.Equal(t, j <= i, g.HasEdge(v, w),
				"edge A[%d]-B[%d]", i, j)
		}
	}
}

func TestCheck_EmptyGraph(t *testing.T) {
	res := obstinate.Check(core.NewGraph())
	require.True(t, res.Obstinate)
	assert.Equal(t, obstinate.KindItself, res.Kind)
	assert.Empty(t, res.A)
	assert.Empty(t, res.B)
}

func TestCheck_OddOrder(t *testing.T) {
	g, err := core.FromEdges([][2]core.Label{{0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.False(t, obstinate.Check(g).Obstinate)
}

func TestCheck_SingleEdge(t *testing.T) {
	g, err := core.FromEdges([][2]core.Label{{0, 1}})
	require.NoError(t, err)
	requireCertificate(t, g, obstinate.Check(g))
}

func TestCheck_PathFour(t *testing.T) {
	g, err := core.FromEdges([][2]core.Label{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	res := obstinate.Check(g)
	requireCertificate(t, g, res)
	assert.Equal(t, obstinate.KindItself, res.Kind)
}

func TestCheck_StaircaseFamily(t *testing.T) {
	for k := 1; k <= 5; k++ {
		g := staircase(t, k)
		res := obstinate.Check(g)
		requireCertificate(t, g, res)
		assert.Equal(t, obstinate.KindItself, res.Kind, "k=%d", k)
	}
}

func TestCheck_ComplementKind(t *testing.T) {
	g := staircase(t, 3)
	g.Complement()

	res := obstinate.Check(g)
	requireCertificate(t, g, res)
	assert.Equal(t, obstinate.KindComplement, res.Kind)
}

func TestCheck_DegreeSequenceMismatch(t *testing.T) {
	// C6: all degrees 2 fit neither staircase.
	g, err := core.FromEdges([][2]core.Label{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0},
	})
	require.NoError(t, err)
	assert.False(t, obstinate.Check(g).Obstinate)
}

func TestCheck_SequenceMatchesButHalvesDependent(t *testing.T) {
	// Degree sequence 1,1,2,2,3,3 like the k=3 staircase, but one half
	// carries an internal edge.
	g, err := core.FromEdges([][2]core.Label{
		{0, 3}, {0, 1}, {1, 3}, {2, 3}, {2, 4}, {2, 5},
	})
	require.NoError(t, err)
	assert.False(t, obstinate.Check(g).Obstinate)
}

func TestCheck_DualLabelingsBothValid(t *testing.T) {
	// Swapping the halves and reversing each is the other valid
	// certificate; verify it directly for the returned one.
	g := staircase(t, 4)
	res := obstinate.Check(g)
	requireCertificate(t, g, res)

	flipped := obstinate.Result{
		Obstinate: true,
		Kind:      res.Kind,
		A:         reverse(res.B),
		B:         reverse(res.A),
	}
	requireCertificate(t, g, flipped)
}

func reverse(in []core.Node) []core.Node {
	out := make([]core.Node, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}

	return out
}
