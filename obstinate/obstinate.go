package obstinate

import (
	"fmt"
	"sort"

	"github.com/modgraph/modgraph/core"
)

// Kind says which graph carries the staircase certificate.
type Kind uint8

const (
	// KindItself means the graph matches the certificate directly.
	KindItself Kind = iota

	// KindComplement means the complement does.
	KindComplement
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindItself:
		return "Itself"
	case KindComplement:
		return "Complement"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result is the outcome of Check. When Obstinate is true, A and B are the
// two ordered halves of the certificate: A's degrees ascend 1..k, B's
// descend, and A[i]-B[j] is an edge iff j <= i, all read in the graph
// named by Kind. One of two symmetric labelings is returned.
type Result struct {
	Obstinate bool
	Kind      Kind
	A, B      []core.Node
}

// Check tests whether g is obstinate. g is not mutated.
//
// Complexity: O(V^2).
func Check(g *core.Graph) Result {
	n := g.Len()
	if n%2 != 0 {
		return Result{}
	}
	if n == 0 {
		return Result{Obstinate: true, Kind: KindItself, A: []core.Node{}, B: []core.Node{}}
	}
	k := n / 2

	degrees := make([]nodeDegree, n)
	for v := 0; v < n; v++ {
		degrees[v] = nodeDegree{node: v, degree: g.Degree(v)}
	}
	sort.Slice(degrees, func(i, j int) bool { return degrees[i].degree < degrees[j].degree })

	// Pick the certificate side by the sorted degree sequence, then read
	// all further adjacency in that side's graph.
	var kind Kind
	var aEnd, bStart core.Node
	switch {
	case degreeStaircase(degrees, 1):
		kind = KindItself
		aEnd, bStart = degrees[n-2].node, degrees[n-1].node
	case degreeStaircase(degrees, k-1):
		kind = KindComplement
		g = g.Clone()
		g.Complement()
		// In the complement the staircase degrees invert, so the two
		// degree-k vertices sit at the low end of the original sort.
		aEnd, bStart = degrees[0].node, degrees[1].node
	default:
		return Result{}
	}

	// The boundary vertices' neighbourhoods are the only candidates for
	// the two halves.
	aPart := g.Neighbours(bStart)
	bPart := g.Neighbours(aEnd)
	if len(aPart) != k || len(bPart) != k {
		return Result{}
	}
	if intersects(aPart, bPart) ||
		!g.SetIsIndependent(aPart) || !g.SetIsIndependent(bPart) {
		return Result{}
	}

	a := byDegree(g, aPart, false)
	b := byDegree(g, bPart, true)
	for i, v := range a {
		if g.Degree(v) != i+1 {
			return Result{}
		}
	}
	// B's degrees need no separate check: the halves are independent and
	// disjoint, together they carry 1,1,..,k,k, and A took 1..k.

	for i, v := range a {
		for j, w := range b {
			if g.HasEdge(v, w) != (j <= i) {
				return Result{}
			}
		}
	}

	return Result{Obstinate: true, Kind: kind, A: a, B: b}
}

type nodeDegree struct {
	node   core.Node
	degree int
}

// degreeStaircase reports whether the sorted degrees are
// start,start,start+1,start+1,...
func degreeStaircase(degrees []nodeDegree, start int) bool {
	for i := 0; 2*i+1 < len(degrees); i++ {
		want := start + i
		if degrees[2*i].degree != want || degrees[2*i+1].degree != want {
			return false
		}
	}

	return true
}

// byDegree sorts nodes by degree in g, descending when desc is set. Ties
// keep no secondary order; both resulting labelings are valid.
func byDegree(g *core.Graph, nodes []core.Node, desc bool) []core.Node {
	out := append([]core.Node(nil), nodes...)
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return g.Degree(out[i]) > g.Degree(out[j])
		}

		return g.Degree(out[i]) < g.Degree(out[j])
	})

	return out
}

func intersects(a, b []core.Node) bool {
	set := make(map[core.Node]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}

	return false
}
