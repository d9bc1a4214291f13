// Tree-free claw detection by per-vertex neighbourhood complementing.
package clawfree

import (
	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/matrix"
)

// Naive reports whether g is claw-free without a decomposition tree. For
// every vertex the induced open neighbourhood is complemented and probed
// for a triangle: three neighbours pairwise non-adjacent in g form one,
// and with their common center that is a claw.
//
// Complexity: O(V * d^3) for maximum degree d.
func Naive(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilInput
	}
	for v := 0; v < g.Len(); v++ {
		hood := g.Subgraph(g.Neighbours(v))
		if hood.Len() < 3 {
			continue
		}
		hood.Complement()
		nodes, counts, err := triangleCounts(hood)
		if err != nil {
			return Result{}, err
		}
		for _, c := range counts {
			if c != 0 {
				return no(Witness{
					Stage:  StagePrime,
					Center: g.Label(v),
					Nodes:  nodes,
					Counts: counts,
				}), nil
			}
		}
	}

	return yes(), nil
}

// triangleCounts returns g's vertex labels and the cube diagonal of its
// adjacency matrix: entry i counts closed three-walks, so a nonzero entry
// certifies a triangle through labels[i].
func triangleCounts(g *core.Graph) ([]core.Label, []int, error) {
	n := g.Len()
	labels := make([]core.Label, n)
	for v := 0; v < n; v++ {
		labels[v] = g.Label(v)
	}
	if n == 0 {
		return labels, nil, nil
	}
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for v := 0; v < n; v++ {
		g.ForEachNeighbour(v, func(u core.Node) {
			adj.Set(v, u, 1)
		})
	}
	counts, err := adj.DiagCube()
	if err != nil {
		return nil, nil, err
	}

	return labels, counts, nil
}
