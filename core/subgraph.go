// This file implements induced-subgraph extraction.
package core

// subgraphTearDownRatio is the kept fraction above which Subgraph clones
// the whole graph and removes the rest instead of rebuilding from scratch.
const subgraphTearDownRatio = 0.6

// Subgraph returns the subgraph induced by keep, as a fresh graph with
// slots reindexed from zero. Labels carry over. The strategy is chosen by
// the kept fraction: below subgraphTearDownRatio the result is built
// add-up (insert kept vertices, wire edges among those already inserted);
// at or above it the graph is cloned and the complement of keep removed.
// Both bound the cost near O(min(|keep| * avg-degree, V + E)).
//
// Slots in keep must be live and distinct; duplicates panic via AddNode's
// bijection guard in the add-up path and are a programmer error in both.
func (g *Graph) Subgraph(keep []Node) *Graph {
	if len(g.nbrs) == 0 || len(keep) == 0 {
		return NewGraph()
	}
	if float64(len(keep)) < subgraphTearDownRatio*float64(len(g.nbrs)) {
		return g.subgraphAddUp(keep)
	}
	sub := g.Clone()
	sub.RetainNodes(keep)

	return sub
}

func (g *Graph) subgraphAddUp(keep []Node) *Graph {
	sub := NewGraph()
	slot := make(map[Node]Node, len(keep))
	for _, v := range keep {
		g.boundsCheck(v)
		nv, err := sub.AddNode(g.labels[v])
		if err != nil {
			panic("core: duplicate slot in subgraph keep set")
		}
		slot[v] = nv
		for u := range g.nbrs[v] {
			if nu, ok := slot[u]; ok {
				sub.nbrs[nv][nu] = struct{}{}
				sub.nbrs[nu][nv] = struct{}{}
			}
		}
	}

	return sub
}

// RetainNodes removes, in place, every vertex whose current slot is not in
// keep. Removal swap-compacts, so the pass tracks pre-removal slot ids
// through a SwapRemoveMap.
//
// Complexity: O(V + E).
func (g *Graph) RetainNodes(keep []Node) {
	kept := make(map[Node]struct{}, len(keep))
	for _, v := range keep {
		g.boundsCheck(v)
		kept[v] = struct{}{}
	}
	m := NewSwapRemoveMap(len(g.nbrs))
	for id := 0; id < m.OriginalLen(); id++ {
		if _, ok := kept[id]; ok {
			continue
		}
		g.RemoveNode(m.Map(id))
		m.SwapRemove(id)
	}
}
