package simplicial

import (
	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
)

// Enumerate returns the simplicial cliques of g, guided by its
// decomposition tree t. g must be connected, claw-free and twin-collapsed;
// g and t are not mutated. Every returned clique is re-verified against g,
// and an empty set is a valid result.
//
// Complexity: polynomial in V for claw-free inputs; the Prime search
// recurses once per vertex per fully-prime remainder.
func Enumerate(g *core.Graph, t *mdtree.Tree, opts ...Option) (*CliqueSet, error) {
	if g == nil || t == nil {
		return nil, ErrNilInput
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	set := newCliqueSet()
	root := t.Root()
	if root == mdtree.NoID {
		return set, nil
	}

	e := &enumerator{cfg: cfg}
	var (
		cliques [][]core.Label
		err     error
	)
	switch t.Kind(root) {
	case mdtree.KindLeaf:
		cliques = [][]core.Label{{g.Label(t.LeafNode(root))}}
	case mdtree.KindPrime:
		cliques, err = e.primeSimplicial(g, t, root)
	case mdtree.KindSeries:
		cliques, err = e.seriesSimplicial(g, t, root)
	case mdtree.KindParallel:
		return nil, ErrDisconnected
	}
	if err != nil {
		return nil, err
	}

	for _, clique := range cliques {
		if nodes, ok := labelNodes(g, clique); ok && IsSimplicial(g, nodes) {
			set.add(clique)
		}
	}

	return set, nil
}

type enumerator struct {
	cfg config
}

// IsSimplicial reports whether the given slots form a clique whose every
// member's outside neighbourhood is again a clique.
func IsSimplicial(g *core.Graph, clique []core.Node) bool {
	if !g.SetIsClique(clique) {
		return false
	}
	member := make(map[core.Node]struct{}, len(clique))
	for _, v := range clique {
		member[v] = struct{}{}
	}
	for _, v := range clique {
		var outside []core.Node
		g.ForEachNeighbour(v, func(w core.Node) {
			if _, in := member[w]; !in {
				outside = append(outside, w)
			}
		})
		if !g.SetIsClique(outside) {
			return false
		}
	}

	return true
}

// toLabels rewrites one clique of slots into the graph's labels.
func toLabels(g *core.Graph, clique []core.Node) []core.Label {
	out := make([]core.Label, len(clique))
	for i, v := range clique {
		out[i] = g.Label(v)
	}

	return out
}

// labelNodes resolves labels back to slots; false if any label is unknown.
func labelNodes(g *core.Graph, clique []core.Label) ([]core.Node, bool) {
	out := make([]core.Node, len(clique))
	for i, l := range clique {
		v, ok := g.FindNode(l)
		if !ok {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}
