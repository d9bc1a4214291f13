// This file declares the Node and Label aliases, the Graph type, and the
// package's sentinel errors.
package core

import "errors"

// Sentinel errors for graph construction and validation.
var (
	// ErrSelfLoop indicates a vertex listed itself as a neighbour.
	ErrSelfLoop = errors.New("core: self-loop")

	// ErrAsymmetry indicates a one-directional neighbour pair in an
	// undirected graph.
	ErrAsymmetry = errors.New("core: asymmetric neighbourhoods")

	// ErrDuplicateLabel indicates the same label was supplied for two
	// distinct vertices.
	ErrDuplicateLabel = errors.New("core: duplicate label")

	// ErrUnknownLabel indicates an edge referenced a label that no vertex
	// carries.
	ErrUnknownLabel = errors.New("core: unknown label")
)

// Node is a dense physical slot index, valid in 0..Len()-1. Slots are
// reassigned by RemoveNode's swap-compaction; use Label for stable identity.
type Node = int

// Label is an externally meaningful vertex identifier. The Graph never
// interprets it beyond the bijection with slots.
type Label = int64

// Graph is a compact store for a finite simple undirected graph.
//
// Invariants (after any exported mutation):
//   - symmetric: a ∈ nbrs[b] ⇔ b ∈ nbrs[a];
//   - loop-free: v ∉ nbrs[v];
//   - labels[slot] ⇄ index[label] is a bijection over 0..len-1.
//
// The zero value is not usable; construct via NewGraph or the From*
// constructors. Graph is not safe for concurrent mutation; callers that
// parallelize give each worker its own Clone.
type Graph struct {
	// nbrs[v] is the neighbour set of slot v.
	nbrs []map[Node]struct{}

	// labels[v] is the external label of slot v.
	labels []Label

	// index maps a label back to its current slot.
	index map[Label]Node
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[Label]Node)}
}
