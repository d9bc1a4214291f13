// This file implements ingestion validation and repair.
package core

import "fmt"

// Check returns the first invariant violation found: a self-loop
// (ErrSelfLoop) or an asymmetric neighbour pair (ErrAsymmetry). A nil
// return means the graph is simple and symmetric.
//
// Complexity: O(V + E).
func (g *Graph) Check() error {
	for v := 0; v < len(g.nbrs); v++ {
		if _, ok := g.nbrs[v][v]; ok {
			return fmt.Errorf("%w: node %d (label %d)", ErrSelfLoop, v, g.labels[v])
		}
		for u := range g.nbrs[v] {
			if _, ok := g.nbrs[u][v]; !ok {
				return fmt.Errorf("%w: %d lists %d, not vice versa", ErrAsymmetry, v, u)
			}
		}
	}

	return nil
}

// Correct repairs Check's violations in place: self-loops are dropped and
// missing reverse edges completed. Afterwards Check returns nil.
//
// Complexity: O(V + E).
func (g *Graph) Correct() {
	for v := 0; v < len(g.nbrs); v++ {
		delete(g.nbrs[v], v)
		for u := range g.nbrs[v] {
			g.nbrs[u][v] = struct{}{}
		}
	}
}
