// This file implements tree construction and the mutations driven by twin
// collapse: subtree removal and module-to-leaf retargeting.
package mdtree

import "github.com/modgraph/modgraph/core"

// NewModule appends a non-leaf node of the given kind under parent and
// returns its id. Pass NoID to create a detached node (set it as root via
// SetRoot). Panics if kind is KindLeaf (use NewLeaf) or parent is a Leaf.
func (t *Tree) NewModule(kind Kind, parent NodeID) NodeID {
	if kind == KindLeaf {
		panic("mdtree: NewModule called with KindLeaf")
	}

	return t.attach(treeNode{kind: kind, parent: parent}, parent)
}

// NewLeaf appends a Leaf wrapping graph slot n under parent and returns
// its id.
func (t *Tree) NewLeaf(n core.Node, parent NodeID) NodeID {
	return t.attach(treeNode{kind: KindLeaf, leaf: n, parent: parent}, parent)
}

func (t *Tree) attach(tn treeNode, parent NodeID) NodeID {
	if parent != NoID {
		p := t.alive(parent)
		if p.kind == KindLeaf {
			panic("mdtree: cannot attach a child under a Leaf")
		}
	}
	id := len(t.nodes)
	t.nodes = append(t.nodes, tn)
	t.live++
	if parent != NoID {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}

	return id
}

// SetRoot declares id the root of the tree.
func (t *Tree) SetRoot(id NodeID) {
	t.alive(id)
	t.root = id
}

// Root returns the root id, or NoID for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Kind returns the tag of id.
func (t *Tree) Kind(id NodeID) Kind { return t.alive(id).kind }

// LeafNode returns the graph slot wrapped by a Leaf. Panics if id is not
// a Leaf.
func (t *Tree) LeafNode(id NodeID) core.Node {
	n := t.alive(id)
	if n.kind != KindLeaf {
		panic("mdtree: LeafNode on a non-Leaf node")
	}

	return n.leaf
}

// SetLeafNode rewrites the graph slot wrapped by a Leaf. Used by the twin
// collapse finalization to remap surviving leaves onto the compacted
// graph's numbering.
func (t *Tree) SetLeafNode(id NodeID, n core.Node) {
	tn := t.alive(id)
	if tn.kind != KindLeaf {
		panic("mdtree: SetLeafNode on a non-Leaf node")
	}
	tn.leaf = n
}

// Parent returns the parent of id, NoID for the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.alive(id).parent }

// Children returns the live children of id, in insertion order. The slice
// is a copy.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.alive(id)
	out := make([]NodeID, 0, len(n.children))
	for _, c := range n.children {
		if !t.nodes[c].dead {
			out = append(out, c)
		}
	}

	return out
}

// Remove deletes id and its whole subtree, detaching it from its parent.
// The freed ids stay dead forever; no other id changes.
func (t *Tree) Remove(id NodeID) {
	n := t.alive(id)
	if n.parent != NoID {
		t.detachChild(n.parent, id)
	}
	t.removeSubtree(id)
	if id == t.root {
		t.root = NoID
	}
}

func (t *Tree) removeSubtree(id NodeID) {
	n := &t.nodes[id]
	if n.dead {
		return
	}
	for _, c := range n.children {
		t.removeSubtree(c)
	}
	n.dead = true
	n.children = nil
	t.live--
}

// SetToLeaf collapses the module id into a Leaf wrapping graph slot n,
// removing whatever remains of its subtree. The id itself stays valid.
func (t *Tree) SetToLeaf(id NodeID, n core.Node) {
	tn := t.alive(id)
	for _, c := range tn.children {
		t.removeSubtree(c)
	}
	tn.children = nil
	tn.kind = KindLeaf
	tn.leaf = n
}

// NodeCount returns the number of live nodes.
func (t *Tree) NodeCount() int { return t.live }

// LeafCount returns the number of live leaves.
//
// Complexity: O(arena size).
func (t *Tree) LeafCount() int {
	count := 0
	for i := range t.nodes {
		if !t.nodes[i].dead && t.nodes[i].kind == KindLeaf {
			count++
		}
	}

	return count
}

// ForEachLeaf calls fn for every live Leaf in the arena, in id order. fn
// may call SetLeafNode on the visited id but must not add or remove nodes.
func (t *Tree) ForEachLeaf(fn func(id NodeID, n core.Node)) {
	for i := range t.nodes {
		if !t.nodes[i].dead && t.nodes[i].kind == KindLeaf {
			fn(i, t.nodes[i].leaf)
		}
	}
}

func (t *Tree) detachChild(parent, child NodeID) {
	cs := t.nodes[parent].children
	for i, c := range cs {
		if c == child {
			t.nodes[parent].children = append(cs[:i], cs[i+1:]...)

			return
		}
	}
}

func (t *Tree) alive(id NodeID) *treeNode {
	if id < 0 || id >= len(t.nodes) {
		panic("mdtree: node id out of range")
	}
	n := &t.nodes[id]
	if n.dead {
		panic("mdtree: node id already removed")
	}

	return n
}
