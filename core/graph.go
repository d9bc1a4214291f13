// This file implements construction: incremental AddNode/AddEdge and the
// batch From* constructors over labelled edge and adjacency inputs.
package core

import (
	"fmt"
	"sort"
)

// AddNode appends a vertex with the given label and returns its slot.
// Returns ErrDuplicateLabel if the label is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label Label) (Node, error) {
	if _, ok := g.index[label]; ok {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateLabel, label)
	}
	v := len(g.nbrs)
	g.nbrs = append(g.nbrs, make(map[Node]struct{}))
	g.labels = append(g.labels, label)
	g.index[label] = v

	return v, nil
}

// AddEdge inserts the undirected edge {a,b}. Inserting an existing edge is
// a no-op. Panics if a slot is out of range; a self-loop (a == b) is stored
// as given and left for Check/Correct, matching the ingestion contract.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b Node) {
	g.boundsCheck(a)
	g.boundsCheck(b)
	g.nbrs[a][b] = struct{}{}
	g.nbrs[b][a] = struct{}{}
}

// FromEdges builds a validated Graph from labelled edge pairs. Endpoint
// labels are created on first sight, slots in order of first appearance.
//
// Complexity: O(E).
func FromEdges(edges [][2]Label) (*Graph, error) {
	g := FromEdgesUnchecked(edges)
	if err := g.Check(); err != nil {
		return nil, err
	}

	return g, nil
}

// FromEdgesUnchecked is FromEdges without the final Check. Intended for
// trusted, pre-validated input.
func FromEdgesUnchecked(edges [][2]Label) *Graph {
	g := NewGraph()
	for _, e := range edges {
		a := g.ensureNode(e[0])
		b := g.ensureNode(e[1])
		g.nbrs[a][b] = struct{}{}
		g.nbrs[b][a] = struct{}{}
	}

	return g
}

// FromAdjacency builds a validated Graph from a label-keyed adjacency map.
// Keys are assigned slots in ascending label order so construction is
// deterministic. A neighbour label without its own key yields
// ErrUnknownLabel; asymmetric or self-looping input is reported by the
// final Check.
//
// Complexity: O(V log V + E).
func FromAdjacency(adj map[Label][]Label) (*Graph, error) {
	g, err := fromAdjacency(adj)
	if err != nil {
		return nil, err
	}
	if err = g.Check(); err != nil {
		return nil, err
	}

	return g, nil
}

// FromAdjacencyUnchecked is FromAdjacency without the final symmetry and
// loop Check. Unknown neighbour labels still fail: without them the
// label⇄slot bijection cannot be formed.
func FromAdjacencyUnchecked(adj map[Label][]Label) (*Graph, error) {
	return fromAdjacency(adj)
}

// FromAdjacencyList builds a validated Graph from a positional adjacency
// list: row i holds the neighbour labels of the vertex labeled i. Slot
// order equals row order.
//
// Complexity: O(V + E).
func FromAdjacencyList(rows [][]Label) (*Graph, error) {
	g := NewGraph()
	for i := range rows {
		// Row indices are distinct by construction; ignore the error.
		_, _ = g.AddNode(Label(i))
	}
	for i, row := range rows {
		for _, nl := range row {
			u, ok := g.index[nl]
			if !ok {
				return nil, fmt.Errorf("%w: %d referenced by row %d", ErrUnknownLabel, nl, i)
			}
			g.nbrs[i][u] = struct{}{}
		}
	}
	if err := g.Check(); err != nil {
		return nil, err
	}

	return g, nil
}

func fromAdjacency(adj map[Label][]Label) (*Graph, error) {
	keys := make([]Label, 0, len(adj))
	for l := range adj {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	g := NewGraph()
	for _, l := range keys {
		// Duplicates are impossible for map keys; ignore the error.
		_, _ = g.AddNode(l)
	}
	for _, l := range keys {
		v := g.index[l]
		for _, nl := range adj[l] {
			u, ok := g.index[nl]
			if !ok {
				return nil, fmt.Errorf("%w: %d referenced by %d", ErrUnknownLabel, nl, l)
			}
			g.nbrs[v][u] = struct{}{}
		}
	}

	return g, nil
}

// ensureNode returns the slot for label, adding a fresh vertex if needed.
func (g *Graph) ensureNode(label Label) Node {
	if v, ok := g.index[label]; ok {
		return v
	}
	v := len(g.nbrs)
	g.nbrs = append(g.nbrs, make(map[Node]struct{}))
	g.labels = append(g.labels, label)
	g.index[label] = v

	return v
}

// boundsCheck panics when v is not a live slot. Programmer error, not a
// recoverable condition.
func (g *Graph) boundsCheck(v Node) {
	if v < 0 || v >= len(g.nbrs) {
		panic(fmt.Sprintf("core: slot %d out of range [0,%d)", v, len(g.nbrs)))
	}
}
