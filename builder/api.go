// SPDX-License-Identifier: MIT
// Package: modgraph/builder
//
// api.go - the Build orchestrator and the Constructor contract.
//
// Design contract:
//   - Constructors validate early and return sentinel errors; no panics.
//   - Same options, seed and constructor order produce identical graphs.
//   - Build wraps each failure once at the API boundary with %w so callers
//     can still branch on the sentinels.

package builder

import (
	"fmt"

	"github.com/modgraph/modgraph/core"
)

// Constructor applies one deterministic topology to g using the resolved
// configuration.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a fresh graph, resolves opts, and applies the constructors
// in order. The first failure aborts and is returned wrapped.
//
// Complexity: O(len(opts)) resolution plus the sum of constructor costs.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts n labeled vertices and returns their slots in insertion
// order. Used by every topology constructor.
func addNodes(g *core.Graph, cfg config, method string, n int) ([]core.Node, error) {
	nodes := make([]core.Node, n)
	for i := 0; i < n; i++ {
		v, err := g.AddNode(cfg.labelFn(i))
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", method, cfg.labelFn(i), err)
		}
		nodes[i] = v
	}

	return nodes, nil
}
