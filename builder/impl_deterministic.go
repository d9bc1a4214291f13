// SPDX-License-Identifier: MIT
// Package: modgraph/builder
//
// impl_deterministic.go - Complete, Cycle, Path and Star constructors.
//
// Determinism:
//   - Vertices are added in ascending index order via cfg.labelFn.
//   - Edges are emitted in a stable, documented order per topology.

package builder

import (
	"fmt"

	"github.com/modgraph/modgraph/core"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarLeaves    = 1
)

// Complete returns a Constructor building the complete graph K_n. Pairs
// {i,j} with i < j are emitted in lexicographic order.
//
// Complexity: O(n) vertices + O(n^2) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(nodes[i], nodes[j])
			}
		}

		return nil
	}
}

// Cycle returns a Constructor building the cycle C_n: edges i-(i+1) in
// index order, closed by (n-1)-0.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddEdge(nodes[i], nodes[(i+1)%n])
		}

		return nil
	}
}

// Path returns a Constructor building the path P_n: edges i-(i+1).
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			g.AddEdge(nodes[i], nodes[i+1])
		}

		return nil
	}
}

// Star returns a Constructor building a star with k leaves: the hub is
// index 0, leaves are 1..k. Star(3) is the claw K_{1,3}.
//
// Complexity: O(k).
func Star(k int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if k < minStarLeaves {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodStar, k, minStarLeaves, ErrTooFewVertices)
		}
		nodes, err := addNodes(g, cfg, methodStar, k+1)
		if err != nil {
			return err
		}
		for i := 1; i <= k; i++ {
			g.AddEdge(nodes[0], nodes[i])
		}

		return nil
	}
}
