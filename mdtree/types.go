// This file declares Kind, NodeID, the Tree arena, and the Decomposer
// contract.
package mdtree

import (
	"fmt"

	"github.com/modgraph/modgraph/core"
)

// Kind tags a tree node.
type Kind uint8

const (
	// KindPrime marks a module with no internal regularity.
	KindPrime Kind = iota

	// KindSeries marks a module whose children are pairwise fully
	// connected.
	KindSeries

	// KindParallel marks a module whose children are pairwise
	// disconnected.
	KindParallel

	// KindLeaf marks a node wrapping a single graph slot.
	KindLeaf
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPrime:
		return "Prime"
	case KindSeries:
		return "Series"
	case KindParallel:
		return "Parallel"
	case KindLeaf:
		return "Leaf"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// NodeID identifies a tree node. Ids are stable for the lifetime of the
// Tree; removed ids are never reused.
type NodeID = int

// NoID is the absent NodeID, used for a detached node's parent.
const NoID NodeID = -1

type treeNode struct {
	kind     Kind
	leaf     core.Node // meaningful only for KindLeaf
	parent   NodeID
	children []NodeID
	dead     bool
}

// Tree is a rooted modular decomposition tree over stable node ids.
// The zero value is not usable; construct via NewTree.
type Tree struct {
	nodes []treeNode
	root  NodeID
	live  int
}

// NewTree returns an empty tree with no root.
func NewTree() *Tree {
	return &Tree{root: NoID}
}

// Decomposer produces the modular decomposition tree of a graph. The
// returned tree's leaves wrap the graph's current slots.
type Decomposer func(*core.Graph) (*Tree, error)
