// Package mdtree provides the modular decomposition tree consumed and
// co-mutated by the recognizers built on top of the core graph store.
//
// A Tree is a rooted arena of nodes tagged Prime, Series, Parallel, or
// Leaf. A Leaf wraps exactly one graph slot; a module's children are its
// sibling submodules. The decomposition contract (assumed, not verified):
// under Series every pair of child modules is fully connected in the
// original graph, under Parallel none is, Prime imposes no regularity.
//
// Node ids are stable: removal marks arena slots free and never compacts,
// so one traversal can hold on to ids across arbitrary removals. The graph
// side compacts on removal instead; a single core.SwapRemoveMap bridges
// the two numbering schemes during a collapse pass.
//
// Inspection helpers cover what the recognizers ask of a tree:
// Representative (one graph slot standing in for a module), ReducedModule
// (one representative per child), ModuleNodes (every slot under a module),
// FullyPrime, ModuleIsClique, and Equivalent (the leaf-path equivalence
// relation between two independently built trees of the same graph).
//
// Trees are produced by a Decomposer. The package does not build
// decompositions itself; see the decompose package for a reference
// Decomposer.
//
// Panics are reserved for programmer errors: dead or out-of-range ids,
// leaf access on a module, child creation under a Leaf.
package mdtree
