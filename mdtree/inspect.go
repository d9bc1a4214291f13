// This file implements the read-only module inspections used by the
// recognizers.
package mdtree

import "github.com/modgraph/modgraph/core"

// Representative returns one graph slot standing in for the module id: the
// leaf reached by repeatedly descending into the first live child. Returns
// false only for a module with no live leaf underneath.
//
// Complexity: O(depth).
func (t *Tree) Representative(id NodeID) (core.Node, bool) {
	for {
		n := t.alive(id)
		if n.kind == KindLeaf {
			return n.leaf, true
		}
		next := NoID
		for _, c := range n.children {
			if !t.nodes[c].dead {
				next = c
				break
			}
		}
		if next == NoID {
			return 0, false
		}
		id = next
	}
}

// ReducedModule returns one representative slot per child of id; for a
// Leaf it returns the leaf's own slot. This is the quotient vertex set the
// numeric claw-free test and the simplicial prime path operate on.
func (t *Tree) ReducedModule(id NodeID) []core.Node {
	n := t.alive(id)
	if n.kind == KindLeaf {
		return []core.Node{n.leaf}
	}
	out := make([]core.Node, 0, len(n.children))
	for _, c := range t.Children(id) {
		if rep, ok := t.Representative(c); ok {
			out = append(out, rep)
		}
	}

	return out
}

// ModuleNodes returns every graph slot under id, depth-first.
func (t *Tree) ModuleNodes(id NodeID) []core.Node {
	n := t.alive(id)
	if n.kind == KindLeaf {
		return []core.Node{n.leaf}
	}
	var out []core.Node
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.Children(cur) {
			if t.nodes[c].kind == KindLeaf {
				out = append(out, t.nodes[c].leaf)
			} else {
				stack = append(stack, c)
			}
		}
	}

	return out
}

// FullyPrime reports whether id is a Prime module all of whose children
// are Leaves.
func (t *Tree) FullyPrime(id NodeID) bool {
	if t.alive(id).kind != KindPrime {
		return false
	}
	for _, c := range t.Children(id) {
		if t.nodes[c].kind != KindLeaf {
			return false
		}
	}

	return true
}

// ModuleIsClique reports whether the module id is a clique purely from the
// tree shape: a Leaf, or a Series whose children are all Leaves. Prime and
// Parallel modules of more than one vertex are never cliques.
func (t *Tree) ModuleIsClique(id NodeID) bool {
	n := t.alive(id)
	switch n.kind {
	case KindLeaf:
		return true
	case KindSeries:
		for _, c := range t.Children(id) {
			if t.nodes[c].kind != KindLeaf {
				return false
			}
		}

		return true
	default:
		return false
	}
}
