// Package clawfree recognizes claw-free graphs through their modular
// decomposition tree.
//
// A claw is an induced star K_{1,3}: a center adjacent to three pairwise
// non-adjacent leaves. Check runs two short-circuiting stages:
//
//  1. Shape: pure tree inspection. A Prime module's children must each be
//     a clique; a Series module's Prime children must have all-clique
//     grandchildren and its Parallel children at most two, each a clique.
//     Any violation already forces a claw somewhere.
//  2. Numeric: the reduced quotient of each Prime module in play is
//     complemented and tested for triangles via the cube diagonal of its
//     adjacency matrix. A triangle in a complement is an independent
//     triple of the original; around a common neighbour that is a claw.
//
// A negative answer carries a Witness naming the stage and, where known,
// the offending module chain or the triangle counts. It is diagnostic
// only, never an error.
//
// Naive is the tree-free fallback: per vertex it complements the open
// neighbourhood and looks for a triangle the same way. It is quadratic in
// uses of the matrix cube, fine for reduced quotients and as a test
// oracle.
//
// Errors:
//
//	ErrNilInput     - nil graph or tree.
//	ErrTreeContract - the tree violates the decomposition contract, e.g.
//	                  Series under Series. The input oracle is at fault;
//	                  this is fatal and distinct from a negative result.
package clawfree
