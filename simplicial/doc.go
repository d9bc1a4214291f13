// Package simplicial enumerates the simplicial cliques of a connected
// claw-free graph, driven by its modular decomposition tree.
//
// What it does:
//
//   - A clique C is simplicial when, for every v in C, the neighbours of v
//     outside C again form a clique.
//   - Enumerate dispatches on the root module kind. A Leaf root yields the
//     singleton clique. A Series root complements the graph and attempts a
//     two-coloring; the two color classes are the answer, with a fallback
//     through the single non-leaf child when the coloring fails. A Prime
//     root reduces the graph to one representative per child module and
//     searches the quotient: either the quotient is obstinate and the
//     cliques follow from closed formulas over its certificate, or a
//     per-vertex remove-and-redecompose recursion collects candidates.
//   - Results come back as a CliqueSet of sorted label slices, every member
//     verified simplicial in the input graph.
//
// Why it matters:
//
//   - On claw-free graphs the simplicial cliques capture exactly the local
//     structure the surrounding analysis needs, and the tree-driven search
//     avoids enumerating all cliques.
//
// Callers are expected to run the claw-free check and twin collapse first.
// A graph that turns out not to be claw-free mid-search surfaces as
// ErrNotClawFree; a Parallel root (disconnected graph) as ErrDisconnected.
// An empty CliqueSet is a valid negative result, not an error.
package simplicial
