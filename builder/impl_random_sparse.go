// SPDX-License-Identifier: MIT
// Package: modgraph/builder
//
// impl_random_sparse.go - the Erdős–Rényi Sparse constructor.
//
// Determinism:
//   - One rng.Float64() draw per unordered pair, in lexicographic (i,j)
//     order with i < j; a fixed seed reproduces the graph exactly.

package builder

import (
	"fmt"

	"github.com/modgraph/modgraph/core"
)

const (
	methodSparse   = "Sparse"
	minSparseNodes = 1
	minProbability = 0.0
	maxProbability = 1.0
)

// Sparse returns a Constructor sampling G(n, p): each unordered pair is an
// edge independently with probability p. Requires WithSeed or WithRand.
//
// Complexity: O(n^2) draws.
func Sparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%v: %w", methodSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodSparse, ErrNeedRandSource)
		}
		nodes, err := addNodes(g, cfg, methodSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					g.AddEdge(nodes[i], nodes[j])
				}
			}
		}

		return nil
	}
}
