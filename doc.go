// Package modgraph analyzes finite simple undirected graphs through their
// modular decomposition trees: twin collapse, claw-free recognition,
// obstinate recognition, and simplicial-clique enumeration.
//
// 🚀 What is modgraph?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: a dense graph store with O(degree) swap-removal,
//		  complement, induced subgraphs, and a label⇄slot bijection
//		• Index correspondence: stable logical ids across interleaved removals
//		• A reference modular decomposition and a mutable tree wrapper
//		• Twin collapse: module-driven graph reduction, tree kept in lockstep
//		• Recognizers: claw-free (tree shape + complement-triangle test) and
//		  obstinate (degree staircase certificate)
//		• Simplicial cliques: tree-driven enumeration on claw-free graphs
//		• Builders: deterministic and seeded-random graph generators
//
// ✨ Why choose modgraph?
//
//   - Deterministic – same input, same seed, same answer, every run
//   - Explicit errors – sentinel values for every failure class, no panics
//     on valid inputs
//   - Tree-driven – polynomial recognizers where brute force is exponential
//
// Everything is organized under focused subpackages:
//
//	core/         — Graph, SwapRemoveMap, validation & repair
//	mdtree/       — decomposition tree wrapper (consumed, co-mutated)
//	decompose/    — reference modular decomposition
//	twincollapse/ — twin collapse + external line-graph oracle client
//	clawfree/     — claw-free recognizer with witnesses, plus Naive oracle
//	obstinate/    — obstinate certificate recognizer
//	simplicial/   — simplicial-clique enumerator
//	matrix/       — dense integer matrix, diagonal-of-cube triangle counts
//	builder/      — Complete/Cycle/Path/Star/Sparse constructors
//
// Quick example, end to end:
//
//	g, _ := core.FromAdjacency(adj)
//	t, _ := decompose.Decompose(g)
//	_ = twincollapse.Collapse(g, t)
//	if res, _ := clawfree.Check(g, t); res.ClawFree {
//		cliques, _ := simplicial.Enumerate(g, t)
//		...
//	}
package modgraph
