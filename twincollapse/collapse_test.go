package twincollapse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/modgraph/modgraph/clawfree"
	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/decompose"
	"github.com/modgraph/modgraph/mdtree"
	"github.com/modgraph/modgraph/twincollapse"
)

func build(t *testing.T, adj map[core.Label][]core.Label) (*core.Graph, *mdtree.Tree) {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)
	tr, err := decompose.Decompose(g)
	require.NoError(t, err)

	return g, tr
}

// requireConsistent re-derives the decomposition of the collapsed graph
// and demands it be equivalent to the co-mutated tree.
func requireConsistent(t *testing.T, g *core.Graph, tr *mdtree.Tree) {
	t.Helper()
	require.NoError(t, g.Check())
	fresh, err := decompose.Decompose(g)
	require.NoError(t, err)
	require.True(t, mdtree.Equivalent(tr, fresh, g.Label, g.Label))
}

func TestCollapse_ClawBecomesSingleVertex(t *testing.T) {
	g, tr := build(t, map[core.Label][]core.Label{
		0: {1, 2, 3}, 1: {0}, 2: {0}, 3: {0},
	})

	require.NoError(t, twincollapse.Collapse(g, tr))

	assert.Equal(t, 1, g.Len())
	require.Equal(t, mdtree.KindLeaf, tr.Kind(tr.Root()))
	assert.Equal(t, core.Node(0), tr.LeafNode(tr.Root()))
	requireConsistent(t, g, tr)

	res, err := clawfree.Check(g, tr)
	require.NoError(t, err)
	assert.True(t, res.ClawFree)
}

func TestCollapse_TwinsGraphFullyCollapses(t *testing.T) {
	// Merging the false twins 1 and 2 leaves a four-vertex quotient, an
	// all-leaf Prime within the unconditional bound, so everything folds
	// into one representative.
	g, tr := build(t, map[core.Label][]core.Label{
		0: {1, 2, 3}, 1: {0, 4}, 2: {0, 4}, 3: {0}, 4: {1, 2},
	})
	before := g.Len()

	require.NoError(t, twincollapse.Collapse(g, tr))

	assert.LessOrEqual(t, g.Len(), before)
	assert.Equal(t, 1, g.Len())
	requireConsistent(t, g, tr)
}

// fiveCycleWithTwin is a 5-cycle whose vertex 0 has the false twin 5.
func fiveCycleWithTwin(t *testing.T) (*core.Graph, *mdtree.Tree) {
	t.Helper()

	return build(t, map[core.Label][]core.Label{
		0: {1, 4}, 1: {0, 2, 5}, 2: {1, 3}, 3: {2, 4}, 4: {3, 0, 5}, 5: {1, 4},
	})
}

func TestCollapse_LargePrimeKeptWithoutOracle(t *testing.T) {
	g, tr := fiveCycleWithTwin(t)

	require.NoError(t, twincollapse.Collapse(g, tr, twincollapse.WithLogger(zap.NewNop())))

	// The twin pair merged; the remaining 5-cycle quotient has five leaf
	// children and no oracle to vouch for it.
	assert.Equal(t, 5, g.Len())
	require.Equal(t, mdtree.KindPrime, tr.Kind(tr.Root()))
	assert.Equal(t, 5, tr.LeafCount())
	requireConsistent(t, g, tr)
}

func TestCollapse_LargePrimeWithAffirmingOracle(t *testing.T) {
	g, tr := fiveCycleWithTwin(t)
	queried := 0
	oracle := twincollapse.OracleFunc(func(q *core.Graph) (bool, error) {
		queried++
		assert.Equal(t, 5, q.Len())

		return true, nil
	})

	require.NoError(t, twincollapse.Collapse(g, tr, twincollapse.WithOracle(oracle)))

	assert.Equal(t, 1, queried)
	assert.Equal(t, 1, g.Len())
	requireConsistent(t, g, tr)
}

func TestCollapse_LargePrimeWithDenyingOracle(t *testing.T) {
	g, tr := fiveCycleWithTwin(t)
	oracle := twincollapse.OracleFunc(func(*core.Graph) (bool, error) {
		return false, nil
	})

	require.NoError(t, twincollapse.Collapse(g, tr, twincollapse.WithOracle(oracle)))

	assert.Equal(t, 5, g.Len())
	requireConsistent(t, g, tr)
}

func TestCollapse_OracleFailureIsRecoverable(t *testing.T) {
	g, tr := fiveCycleWithTwin(t)
	errBroken := errors.New("pipe burst")
	oracle := twincollapse.OracleFunc(func(*core.Graph) (bool, error) {
		return false, errBroken
	})

	err := twincollapse.Collapse(g, tr, twincollapse.WithOracle(oracle))

	// The failure is reported, but the module was skipped conservatively
	// and the pair is fully usable.
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, 5, g.Len())
	requireConsistent(t, g, tr)
}

func TestCollapse_KeepsOneLeafBesideUncollapsedModule(t *testing.T) {
	// K2 joined with a 5-cycle: the two join vertices are true twins, one
	// survives beside the untouched Prime module.
	g, tr := build(t, map[core.Label][]core.Label{
		0: {1, 2, 3, 4, 5, 6},
		1: {0, 2, 3, 4, 5, 6},
		2: {0, 1, 3, 6}, 3: {0, 1, 2, 4}, 4: {0, 1, 3, 5}, 5: {0, 1, 4, 6}, 6: {0, 1, 5, 2},
	})

	require.NoError(t, twincollapse.Collapse(g, tr))

	assert.Equal(t, 6, g.Len())
	root := tr.Root()
	require.Equal(t, mdtree.KindSeries, tr.Kind(root))
	leaves, modules := 0, 0
	for _, child := range tr.Children(root) {
		if tr.Kind(child) == mdtree.KindLeaf {
			leaves++
		} else {
			modules++
		}
	}
	assert.Equal(t, 1, leaves, "exactly one direct Leaf child survives")
	assert.Equal(t, 1, modules)
	requireConsistent(t, g, tr)
}

func TestCollapse_JoinOfCliqueAndPathFolds(t *testing.T) {
	// K3 joined with a path on four vertices: the path's Prime module is
	// within the unconditional bound, so the whole thing folds to one
	// vertex through its Series root.
	g, tr := build(t, map[core.Label][]core.Label{
		0: {1, 2, 3, 4, 5, 6},
		1: {0, 2, 3, 4, 5, 6},
		2: {0, 1, 3, 4, 5, 6},
		3: {0, 1, 2, 4}, 4: {0, 1, 2, 3, 5}, 5: {0, 1, 2, 4, 6}, 6: {0, 1, 2, 5},
	})

	require.NoError(t, twincollapse.Collapse(g, tr))

	assert.Equal(t, 1, g.Len())
	requireConsistent(t, g, tr)
}

func TestCollapse_SingleVertexNoOp(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(3)
	require.NoError(t, err)
	tr, err := decompose.Decompose(g)
	require.NoError(t, err)

	require.NoError(t, twincollapse.Collapse(g, tr))
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, mdtree.KindLeaf, tr.Kind(tr.Root()))
}

func TestCollapse_NilInputs(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, twincollapse.Collapse(nil, mdtree.NewTree()), twincollapse.ErrNilInput)
	require.ErrorIs(t, twincollapse.Collapse(g, nil), twincollapse.ErrNilInput)
}

func TestCollapse_EmptyTree(t *testing.T) {
	require.NoError(t, twincollapse.Collapse(core.NewGraph(), mdtree.NewTree()))
}
