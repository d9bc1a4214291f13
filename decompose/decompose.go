package decompose

import (
	"errors"
	"sort"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
)

var (
	// ErrNilGraph indicates a nil graph was passed to Decompose.
	ErrNilGraph = errors.New("decompose: nil graph")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = errors.New("decompose: empty graph")
)

// Decompose returns the modular decomposition tree of g. Leaves wrap g's
// current slots; g is not mutated.
func Decompose(g *core.Graph) (*mdtree.Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	d := &decomposer{g: g, t: mdtree.NewTree()}
	all := make([]core.Node, g.Len())
	for i := range all {
		all[i] = i
	}
	d.t.SetRoot(d.build(all, mdtree.NoID))

	return d.t, nil
}

type decomposer struct {
	g *core.Graph
	t *mdtree.Tree
}

// build decomposes the induced vertex subset and returns the id of the
// tree node covering it.
func (d *decomposer) build(subset []core.Node, parent mdtree.NodeID) mdtree.NodeID {
	if len(subset) == 1 {
		return d.t.NewLeaf(subset[0], parent)
	}

	if comps := d.parts(subset, false); len(comps) > 1 {
		id := d.t.NewModule(mdtree.KindParallel, parent)
		for _, c := range comps {
			d.build(c, id)
		}

		return id
	}

	if cocomps := d.parts(subset, true); len(cocomps) > 1 {
		id := d.t.NewModule(mdtree.KindSeries, parent)
		for _, c := range cocomps {
			d.build(c, id)
		}

		return id
	}

	// Connected and co-connected: the node is Prime and its children are
	// the maximal proper strong modules.
	id := d.t.NewModule(mdtree.KindPrime, parent)
	for _, c := range d.primeChildren(subset) {
		d.build(c, id)
	}

	return id
}

// parts returns the connected components of the subset-induced graph, or
// of its complement when inverted is true. Components come out sorted, in
// order of their smallest member.
func (d *decomposer) parts(subset []core.Node, inverted bool) [][]core.Node {
	seen := make(map[core.Node]struct{}, len(subset))
	var comps [][]core.Node
	for _, start := range subset {
		if _, ok := seen[start]; ok {
			continue
		}
		comp := []core.Node{start}
		seen[start] = struct{}{}
		for i := 0; i < len(comp); i++ {
			v := comp[i]
			for _, u := range subset {
				if _, ok := seen[u]; ok {
					continue
				}
				if d.g.HasEdge(v, u) != inverted {
					seen[u] = struct{}{}
					comp = append(comp, u)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// primeChildren partitions a connected, co-connected subset into the
// maximal proper strong modules. For each uncovered v, the child holding
// v is the union of every pair closure through v that stays proper; with
// a prime quotient that union is exactly v's maximal proper strong
// module, and strong modules are pairwise disjoint.
func (d *decomposer) primeChildren(subset []core.Node) [][]core.Node {
	covered := make(map[core.Node]struct{}, len(subset))
	var children [][]core.Node
	for _, v := range subset {
		if _, ok := covered[v]; ok {
			continue
		}
		child := map[core.Node]struct{}{v: {}}
		for _, u := range subset {
			if u == v {
				continue
			}
			closure := d.pairClosure(subset, v, u)
			if len(closure) < len(subset) {
				for w := range closure {
					child[w] = struct{}{}
				}
			}
		}
		members := make([]core.Node, 0, len(child))
		for w := range child {
			covered[w] = struct{}{}
			members = append(members, w)
		}
		sort.Ints(members)
		children = append(children, members)
	}

	return children
}

// pairClosure returns the smallest module of the subset-induced graph
// containing both v and u: grow {v,u} by splitters (vertices adjacent to
// part of the set but not all of it) until none remain.
func (d *decomposer) pairClosure(subset []core.Node, v, u core.Node) map[core.Node]struct{} {
	set := map[core.Node]struct{}{v: {}, u: {}}
	for changed := true; changed; {
		changed = false
		for _, w := range subset {
			if _, ok := set[w]; ok {
				continue
			}
			if d.splits(w, set) {
				set[w] = struct{}{}
				changed = true
			}
		}
	}

	return set
}

// splits reports whether w is adjacent to some but not all of set.
func (d *decomposer) splits(w core.Node, set map[core.Node]struct{}) bool {
	sawEdge, sawGap := false, false
	for x := range set {
		if d.g.HasEdge(w, x) {
			sawEdge = true
		} else {
			sawGap = true
		}
		if sawEdge && sawGap {
			return true
		}
	}

	return false
}
