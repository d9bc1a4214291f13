// Package obstinate recognizes obstinate graphs, the even-order class
// defined by a staircase bipartite certificate.
//
// A graph of order 2k is obstinate when its vertices split into two
// disjoint independent halves A and B, sortable so that A's degrees are
// exactly 1..k and the edge A[i]-B[j] exists iff j <= i. The recognizer
// tests the graph itself (degree sequence 1,1,2,2,..,k,k) and, failing
// that, its complement (degree sequence k-1,k-1,..,2k-2,2k-2).
//
// The check is pure degree and adjacency arithmetic; no decomposition tree
// is involved. A negative answer is a valid result, never an error.
//
// The two halves returned with a positive answer are one of exactly two
// valid labelings: swapping A and B and reversing each yields the other.
// The degree sort breaks ties arbitrarily, so callers must accept either.
package obstinate
