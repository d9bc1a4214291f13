// This file implements the equivalence relation between two independently
// built decomposition trees of the same labelled graph.
package mdtree

import "github.com/modgraph/modgraph/core"

// Equivalent reports whether two trees describe the same decomposition of
// the same labelled graph. The trees may come from different Graph
// instances with different slot numberings; amap and bmap translate each
// tree's leaf slots to the shared label space.
//
// Checking children recursively from the root would need to match children
// up to permutation. Instead the walk goes bottom-up: the root kinds must
// match, and for every leaf label the parent path to the root must carry
// the same kinds and, at every step, the same set of leaf-sibling labels.
// Covering all leaves of both trees makes the check complete: the highest
// differing node either is a leaf (caught by the sibling-set check at its
// parent) or heads a subtree whose leaves' parent paths expose the
// difference.
func Equivalent(a, b *Tree, amap, bmap func(core.Node) core.Label) bool {
	if a.live != b.live {
		return false
	}
	if a.root == NoID || b.root == NoID {
		return a.root == NoID && b.root == NoID
	}
	if a.live == 1 {
		an, bn := a.alive(a.root), b.alive(b.root)

		return an.kind == KindLeaf && bn.kind == KindLeaf &&
			amap(an.leaf) == bmap(bn.leaf)
	}
	if a.alive(a.root).kind != b.alive(b.root).kind {
		return false
	}

	aLeaves := leavesByLabel(a, amap)
	bLeaves := leavesByLabel(b, bmap)
	if len(aLeaves) != len(bLeaves) {
		return false
	}
	for label, aLeaf := range aLeaves {
		bLeaf, ok := bLeaves[label]
		if !ok {
			return false
		}
		if !compareParentPath(a, b, amap, bmap, aLeaf, bLeaf) {
			return false
		}
	}

	return true
}

// compareParentPath walks from a matched pair of nodes up to the roots,
// requiring equal parent kinds and equal leaf-sibling label sets at every
// step.
func compareParentPath(a, b *Tree, amap, bmap func(core.Node) core.Label, an, bn NodeID) bool {
	for {
		ap, bp := a.nodes[an].parent, b.nodes[bn].parent
		if (ap == NoID) != (bp == NoID) {
			return false
		}
		if ap == NoID {
			return true
		}
		if a.nodes[ap].kind != b.nodes[bp].kind {
			return false
		}
		if !sameLeafChildren(a, b, amap, bmap, ap, bp) {
			return false
		}
		atRootA, atRootB := ap == a.root, bp == b.root
		if atRootA != atRootB {
			return false
		}
		if atRootA {
			return true
		}
		an, bn = ap, bp
	}
}

func sameLeafChildren(a, b *Tree, amap, bmap func(core.Node) core.Label, ap, bp NodeID) bool {
	as := leafChildLabels(a, amap, ap)
	bs := leafChildLabels(b, bmap, bp)
	if len(as) != len(bs) {
		return false
	}
	for l := range as {
		if _, ok := bs[l]; !ok {
			return false
		}
	}

	return true
}

func leafChildLabels(t *Tree, m func(core.Node) core.Label, id NodeID) map[core.Label]struct{} {
	out := make(map[core.Label]struct{})
	for _, c := range t.Children(id) {
		if t.nodes[c].kind == KindLeaf {
			out[m(t.nodes[c].leaf)] = struct{}{}
		}
	}

	return out
}

func leavesByLabel(t *Tree, m func(core.Node) core.Label) map[core.Label]NodeID {
	out := make(map[core.Label]NodeID)
	t.ForEachLeaf(func(id NodeID, n core.Node) {
		out[m(n)] = id
	})

	return out
}
