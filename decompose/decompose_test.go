package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/decompose"
	"github.com/modgraph/modgraph/mdtree"
)

func mustGraph(t *testing.T, edges [][2]core.Label) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(edges)
	require.NoError(t, err)

	return g
}

func TestDecompose_Errors(t *testing.T) {
	_, err := decompose.Decompose(nil)
	require.ErrorIs(t, err, decompose.ErrNilGraph)

	_, err = decompose.Decompose(core.NewGraph())
	require.ErrorIs(t, err, decompose.ErrEmptyGraph)
}

func TestDecompose_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(7)
	require.NoError(t, err)

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindLeaf, tr.Kind(tr.Root()))
	assert.Equal(t, core.Node(0), tr.LeafNode(tr.Root()))
}

func TestDecompose_CompleteIsSeries(t *testing.T) {
	g := mustGraph(t, [][2]core.Label{{0, 1}, {1, 2}, {2, 0}})

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindSeries, tr.Kind(tr.Root()))
	require.Len(t, tr.Children(tr.Root()), 3)
	for _, c := range tr.Children(tr.Root()) {
		assert.Equal(t, mdtree.KindLeaf, tr.Kind(c))
	}
}

func TestDecompose_IndependentIsParallel(t *testing.T) {
	g := core.NewGraph()
	for l := core.Label(0); l < 3; l++ {
		_, err := g.AddNode(l)
		require.NoError(t, err)
	}

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindParallel, tr.Kind(tr.Root()))
	assert.Len(t, tr.Children(tr.Root()), 3)
}

func TestDecompose_PathFourIsPrime(t *testing.T) {
	g := mustGraph(t, [][2]core.Label{{0, 1}, {1, 2}, {2, 3}})

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindPrime, tr.Kind(tr.Root()))
	require.True(t, tr.FullyPrime(tr.Root()))
	assert.Len(t, tr.Children(tr.Root()), 4)
}

func TestDecompose_FiveCycleIsPrime(t *testing.T) {
	g := mustGraph(t, [][2]core.Label{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindPrime, tr.Kind(tr.Root()))
	assert.True(t, tr.FullyPrime(tr.Root()))
	assert.Len(t, tr.Children(tr.Root()), 5)
}

func TestDecompose_Star(t *testing.T) {
	// Star: complement splits the center off, rays form an independent
	// set. Series(Leaf(center), Parallel(Leaf, Leaf, Leaf)).
	g := mustGraph(t, [][2]core.Label{{0, 1}, {0, 2}, {0, 3}})

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindSeries, tr.Kind(tr.Root()))

	children := tr.Children(tr.Root())
	require.Len(t, children, 2)
	var leaf, par mdtree.NodeID = mdtree.NoID, mdtree.NoID
	for _, c := range children {
		if tr.Kind(c) == mdtree.KindLeaf {
			leaf = c
		} else {
			par = c
		}
	}
	require.NotEqual(t, mdtree.NoID, leaf)
	require.NotEqual(t, mdtree.NoID, par)

	center, ok := g.FindNode(0)
	require.True(t, ok)
	assert.Equal(t, center, tr.LeafNode(leaf))
	assert.Equal(t, mdtree.KindParallel, tr.Kind(par))
	assert.Len(t, tr.Children(par), 3)
}

func TestDecompose_TwinInsidePrime(t *testing.T) {
	// Path 0-1-2-3 with 4 a true twin of 1: the root is Prime with
	// children {0}, {1,4} (a Series pair), {2}, {3}.
	g := mustGraph(t, [][2]core.Label{
		{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 2}, {1, 4},
	})

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, mdtree.KindPrime, tr.Kind(tr.Root()))

	children := tr.Children(tr.Root())
	require.Len(t, children, 4)
	twinModules := 0
	for _, c := range children {
		switch tr.Kind(c) {
		case mdtree.KindLeaf:
		case mdtree.KindSeries:
			twinModules++
			labels := []core.Label{}
			for _, n := range tr.ModuleNodes(c) {
				labels = append(labels, g.Label(n))
			}
			assert.ElementsMatch(t, []core.Label{1, 4}, labels)
		default:
			t.Fatalf("unexpected child kind %v", tr.Kind(c))
		}
	}
	assert.Equal(t, 1, twinModules)
}

func TestDecompose_EquivalentAcrossNumberings(t *testing.T) {
	// The same labelled graph ingested in two edge orders gets different
	// slot numberings but equivalent trees.
	edges := [][2]core.Label{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 2}, {1, 4}}
	reversed := make([][2]core.Label, len(edges))
	for i, e := range edges {
		reversed[len(edges)-1-i] = e
	}

	ga := mustGraph(t, edges)
	gb := mustGraph(t, reversed)
	ta, err := decompose.Decompose(ga)
	require.NoError(t, err)
	tb, err := decompose.Decompose(gb)
	require.NoError(t, err)

	assert.True(t, mdtree.Equivalent(ta, tb, ga.Label, gb.Label))
}

func TestDecompose_LeafCountMatchesGraph(t *testing.T) {
	g := mustGraph(t, [][2]core.Label{
		{0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 4},
	})

	tr, err := decompose.Decompose(g)
	require.NoError(t, err)
	assert.Equal(t, g.Len(), tr.LeafCount())
}
