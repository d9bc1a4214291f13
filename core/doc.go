// Package core provides a compact, mutable, in-memory store for finite
// simple undirected graphs, indexed densely by integer slots.
//
// The Graph G = (V,E) keeps vertices in slots 0..Len()-1. Every slot carries
// an external Label (an arbitrary int64 chosen by the caller) and a
// neighbour set of slots. The label⇄slot mapping is a bijection.
//
// What the package offers:
//
//   - O(1) amortized edge and vertex insertion.
//   - O(deg(v)) vertex removal via swap-compaction: the removed slot is
//     refilled by the last slot, so the index range stays dense.
//   - In-place Complement (self-inverse, loop-free).
//   - Induced Subgraph extraction with an add-up vs. tear-down strategy
//     chosen by the kept-fraction of the vertex set.
//   - SwapRemoveMap, a correspondence table that lets a caller keep
//     addressing slots by their pre-removal ids across a whole sequence of
//     swap-compacting removals.
//
// Why a dense slot store?
//
//   - The analysis algorithms built on top (twin collapse, claw-free and
//     obstinate recognition, simplicial-clique enumeration) interleave
//     heavy neighbour-set iteration with bursts of vertex removal; dense
//     int slots keep both cheap and allocation-light.
//   - Labels decouple the caller's stable vertex identities from the
//     churning physical slots.
//
// Validation:
//
//	Check() reports the first self-loop or asymmetric neighbour pair;
//	Correct() repairs both in place. The From* constructors validate by
//	default; the *Unchecked variants skip it for trusted input.
//
// Errors:
//
//	ErrSelfLoop  - a vertex lists itself as a neighbour.
//	ErrAsymmetry - b in neighbours(a) but a not in neighbours(b).
//	ErrDuplicateLabel - the same label given for two vertices.
//	ErrUnknownLabel   - an edge references a label with no vertex.
//
// Panics are reserved for programmer errors: out-of-range slots passed to
// accessors, or misuse of SwapRemoveMap (double removal, unknown id).
package core
