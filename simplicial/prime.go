package simplicial

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
	"github.com/modgraph/modgraph/obstinate"
)

// primeSimplicial handles a Prime module: search the quotient of one
// representative slot per child, then blow each representative back up to
// its full module. A claw-free twin-collapsed input has only singleton or
// clique modules here, so the expansion preserves simpliciality.
func (e *enumerator) primeSimplicial(g *core.Graph, t *mdtree.Tree, module mdtree.NodeID) ([][]core.Label, error) {
	children := t.Children(module)
	reps := make([]core.Node, 0, len(children))
	moduleOf := make(map[core.Label]mdtree.NodeID, len(children))
	for _, child := range children {
		rep, ok := t.Representative(child)
		if !ok {
			return nil, ErrTreeContract
		}
		reps = append(reps, rep)
		moduleOf[g.Label(rep)] = child
	}

	quotient := g.Subgraph(reps)
	cliques, err := e.primeRecurse(quotient)
	if err != nil {
		return nil, err
	}

	out := make([][]core.Label, 0, len(cliques))
	for _, clique := range cliques {
		var expanded []core.Label
		for _, v := range clique {
			for _, n := range t.ModuleNodes(moduleOf[quotient.Label(v)]) {
				expanded = append(expanded, g.Label(n))
			}
		}
		out = append(out, expanded)
	}

	return out, nil
}

// primeRecurse enumerates candidate simplicial cliques of a fully prime
// graph. The obstinate certificate short-circuits the search; otherwise
// each vertex is removed in turn and the recursion continues into every
// remainder that is again fully prime. The same clique is reachable
// through several removed vertices, so candidates are deduplicated before
// the simplicial test.
func (e *enumerator) primeRecurse(g *core.Graph) ([][]core.Node, error) {
	if cliques, ok, err := e.obstinateCliques(g); ok || err != nil {
		return cliques, err
	}

	seen := hashset.New()
	var found [][]core.Node
	consider := func(clique []core.Node) {
		key := cliqueKey(g, clique)
		if seen.Contains(key) {
			return
		}
		seen.Add(key)
		if IsSimplicial(g, clique) {
			found = append(found, clique)
		}
	}

	for v := 0; v < g.Len(); v++ {
		consider([]core.Node{v})

		rest := g.Clone()
		rest.RemoveNode(v)
		rt, err := e.cfg.decomposer(rest)
		if err != nil {
			return nil, err
		}
		if rt.Root() == mdtree.NoID || !rt.FullyPrime(rt.Root()) {
			continue
		}
		sub, err := e.primeRecurse(rest)
		if err != nil {
			return nil, err
		}
		for _, sc := range sub {
			// Slots shift under removal; labels carry the identity back.
			mapped := make([]core.Node, len(sc), len(sc)+1)
			for i, w := range sc {
				n, ok := g.FindNode(rest.Label(w))
				if !ok {
					return nil, ErrTreeContract
				}
				mapped[i] = n
			}
			consider(mapped)
			consider(append(mapped, v))
		}
	}

	return found, nil
}

// obstinateCliques returns the closed-form simplicial cliques when g is
// obstinate; ok is false otherwise. In the Itself case a claw-free graph
// has order 2 or 4, each with an explicit clique list over the certificate
// halves; in the Complement case every prefix of one half pairs with the
// matching suffix of the other.
func (e *enumerator) obstinateCliques(g *core.Graph) ([][]core.Node, bool, error) {
	res := obstinate.Check(g)
	if !res.Obstinate {
		return nil, false, nil
	}
	a, b := res.A, res.B
	switch res.Kind {
	case obstinate.KindItself:
		switch g.Len() {
		case 0:
			return nil, true, nil
		case 2:
			return [][]core.Node{{a[0]}, {b[0]}, {a[0], b[0]}}, true, nil
		case 4:
			return [][]core.Node{
				{a[0]},
				{a[0], b[0]},
				{a[1], b[0]},
				{a[1], b[1]},
				{b[1]},
			}, true, nil
		default:
			return nil, true, ErrNotClawFree
		}
	default:
		k := len(a)
		out := make([][]core.Node, 0, 2*k)
		for i := 0; i < k; i++ {
			out = append(out, append([]core.Node(nil), a[i:]...))
			out = append(out, append([]core.Node(nil), b[:i+1]...))
		}

		return out, true, nil
	}
}

// cliqueKey canonicalizes a slot set by its sorted labels.
func cliqueKey(g *core.Graph, clique []core.Node) string {
	labels := toLabels(g, clique)
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	return labelKey(labels)
}
