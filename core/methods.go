// This file implements queries and in-place mutation: neighbour access,
// swap-compacting removal, and complement.
package core

import "sort"

// Len returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.nbrs) }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return len(g.nbrs) == 0 }

// Label returns the external label of slot v. Panics if v is out of range.
func (g *Graph) Label(v Node) Label {
	g.boundsCheck(v)

	return g.labels[v]
}

// FindNode returns the current slot carrying the given label.
//
// Complexity: O(1).
func (g *Graph) FindNode(label Label) (Node, bool) {
	v, ok := g.index[label]

	return v, ok
}

// Degree returns |neighbours(v)|. Panics if v is out of range.
func (g *Graph) Degree(v Node) int {
	g.boundsCheck(v)

	return len(g.nbrs[v])
}

// HasEdge reports whether the edge {a,b} is present.
//
// Complexity: O(1).
func (g *Graph) HasEdge(a, b Node) bool {
	g.boundsCheck(a)
	g.boundsCheck(b)
	_, ok := g.nbrs[a][b]

	return ok
}

// Neighbours returns a sorted copy of v's neighbour slots. The copy is the
// caller's to keep; it does not alias graph state.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbours(v Node) []Node {
	g.boundsCheck(v)
	out := make([]Node, 0, len(g.nbrs[v]))
	for u := range g.nbrs[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// ForEachNeighbour calls fn for every neighbour of v, in unspecified order.
// fn must not mutate the graph.
func (g *Graph) ForEachNeighbour(v Node, fn func(Node)) {
	g.boundsCheck(v)
	for u := range g.nbrs[v] {
		fn(u)
	}
}

// RemoveNode deletes slot v. If v is not the last slot, the last slot is
// swapped into v's place and relabelled, keeping the index range dense.
//
// Steps:
//  1. Detach v from all its neighbours' sets.
//  2. Drop v's label from the index.
//  3. If v was not last: re-point the last slot's edges at v, move its
//     neighbour set and label into v, and update the index.
//  4. Truncate the slot arrays.
//
// Complexity: O(deg(v) + deg(last)).
func (g *Graph) RemoveNode(v Node) {
	g.boundsCheck(v)

	for u := range g.nbrs[v] {
		delete(g.nbrs[u], v)
	}
	delete(g.index, g.labels[v])

	last := len(g.nbrs) - 1
	if v != last {
		moved := g.nbrs[last]
		for u := range moved {
			delete(g.nbrs[u], last)
			g.nbrs[u][v] = struct{}{}
		}
		g.nbrs[v] = moved
		g.labels[v] = g.labels[last]
		g.index[g.labels[v]] = v
	}
	g.nbrs = g.nbrs[:last]
	g.labels = g.labels[:last]
}

// Complement inverts the edge relation in place, excluding self-loops.
// Applying it twice restores the original neighbour-set structure.
//
// Complexity: O(V^2).
func (g *Graph) Complement() {
	n := len(g.nbrs)
	inverted := make([]map[Node]struct{}, n)
	for v := 0; v < n; v++ {
		set := make(map[Node]struct{}, n-1-len(g.nbrs[v]))
		for u := 0; u < n; u++ {
			if u == v {
				continue
			}
			if _, ok := g.nbrs[v][u]; !ok {
				set[u] = struct{}{}
			}
		}
		inverted[v] = set
	}
	g.nbrs = inverted
}

// Clone returns a deep copy sharing no state with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nbrs:   make([]map[Node]struct{}, len(g.nbrs)),
		labels: make([]Label, len(g.labels)),
		index:  make(map[Label]Node, len(g.index)),
	}
	copy(c.labels, g.labels)
	for v, set := range g.nbrs {
		cs := make(map[Node]struct{}, len(set))
		for u := range set {
			cs[u] = struct{}{}
		}
		c.nbrs[v] = cs
	}
	for l, v := range g.index {
		c.index[l] = v
	}

	return c
}

// SetIsClique reports whether every pair in nodes is adjacent.
//
// Complexity: O(|nodes|^2).
func (g *Graph) SetIsClique(nodes []Node) bool {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if !g.HasEdge(nodes[i], nodes[j]) {
				return false
			}
		}
	}

	return true
}

// SetIsIndependent reports whether no pair in nodes is adjacent.
//
// Complexity: O(|nodes|^2).
func (g *Graph) SetIsIndependent(nodes []Node) bool {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if g.HasEdge(nodes[i], nodes[j]) {
				return false
			}
		}
	}

	return true
}

// AdjacencyLabels exports the graph as a label-keyed adjacency map with
// sorted neighbour lists. Inverse of FromAdjacency up to ordering.
//
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyLabels() map[Label][]Label {
	out := make(map[Label][]Label, len(g.nbrs))
	for v, set := range g.nbrs {
		ls := make([]Label, 0, len(set))
		for u := range set {
			ls = append(ls, g.labels[u])
		}
		sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
		out[g.labels[v]] = ls
	}

	return out
}
