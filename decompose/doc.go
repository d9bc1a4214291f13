// Package decompose builds modular decomposition trees.
//
// Decompose is a reference implementation of the mdtree.Decomposer
// contract, written for correctness rather than speed. The recursion is
// the classical one: a disconnected vertex set is a Parallel over its
// components, a co-disconnected set a Series over its co-components, and
// an otherwise irreducible set a Prime over its maximal proper strong
// modules, which are found through pair-closure computation (grow {v,u}
// by splitters until it is a module; the child containing v is the union
// of all proper closures through v).
//
// Worst-case cost is polynomial but steep, around O(V^5); fine for the
// graph sizes the recognizers and their tests work with. Callers with
// large inputs supply their own Decomposer.
//
// Errors:
//
//	ErrNilGraph   - nil graph.
//	ErrEmptyGraph - a graph with no vertices has no decomposition.
package decompose
