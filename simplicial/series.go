package simplicial

import (
	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
)

// seriesSimplicial handles a Series root. The complement of the graph is
// two-colored by flood fill; on success the color classes are the two
// simplicial cliques. On failure the claw-free shape guarantees at most
// one non-leaf child, and the answer lifts from it: a Prime child restarts
// the prime search on its induced subgraph, a Parallel child contributes
// its two grandchild modules directly.
func (e *enumerator) seriesSimplicial(g *core.Graph, t *mdtree.Tree, module mdtree.NodeID) ([][]core.Label, error) {
	comp := g.Clone()
	comp.Complement()
	if a, b, ok := bipartition(comp); ok {
		return [][]core.Label{toLabels(g, a), toLabels(g, b)}, nil
	}

	nonLeaf := mdtree.NoID
	for _, child := range t.Children(module) {
		switch t.Kind(child) {
		case mdtree.KindLeaf:
			continue
		case mdtree.KindSeries:
			return nil, ErrTreeContract
		default:
			if nonLeaf != mdtree.NoID {
				return nil, ErrNotClawFree
			}
			nonLeaf = child
		}
	}
	if nonLeaf == mdtree.NoID {
		return nil, nil
	}

	switch t.Kind(nonLeaf) {
	case mdtree.KindPrime:
		sub := g.Subgraph(t.ModuleNodes(nonLeaf))
		st, err := e.cfg.decomposer(sub)
		if err != nil {
			return nil, err
		}
		if st.Root() == mdtree.NoID || st.Kind(st.Root()) != mdtree.KindPrime {
			return nil, ErrTreeContract
		}

		return e.primeSimplicial(sub, st, st.Root())
	default:
		grandchildren := t.Children(nonLeaf)
		if len(grandchildren) != 2 {
			return nil, ErrNotClawFree
		}
		out := make([][]core.Label, 0, 2)
		for _, gc := range grandchildren {
			nodes := t.ModuleNodes(gc)
			if !IsSimplicial(g, nodes) {
				return nil, ErrNotClawFree
			}
			out = append(out, toLabels(g, nodes))
		}

		return out, nil
	}
}

// bipartition two-colors g by flood fill; ok is false when some edge joins
// two equally colored slots. Isolated slots land in the first class.
func bipartition(g *core.Graph) (a, b []core.Node, ok bool) {
	const (
		unseen = iota
		classA
		classB
	)
	color := make([]uint8, g.Len())
	var stack []core.Node
	for start := 0; start < g.Len(); start++ {
		if color[start] != unseen {
			continue
		}
		color[start] = classA
		stack = append(stack[:0], core.Node(start))
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			next := classA + classB - color[v]
			for _, w := range g.Neighbours(v) {
				switch color[w] {
				case color[v]:
					return nil, nil, false
				case unseen:
					color[w] = next
					stack = append(stack, w)
				}
			}
		}
	}

	for v := 0; v < g.Len(); v++ {
		if color[v] == classA {
			a = append(a, core.Node(v))
		} else {
			b = append(b, core.Node(v))
		}
	}

	return a, b, true
}
