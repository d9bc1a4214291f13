// SPDX-License-Identifier: MIT
// Package: modgraph/builder
//
// Package builder provides deterministic and seeded-random graph
// constructors for tests and experiment harnesses.
//
// What it does:
//
//   - Deterministic topologies: Complete(n), Cycle(n), Path(n), Star(k).
//     Star(3) is the claw, the smallest graph the recognizers reject.
//   - Seeded random topology: Sparse(n, p), an Erdős–Rényi sample, driven
//     by WithSeed or WithRand for reproducible runs.
//   - One orchestrator: Build(opts, cons...) creates a graph, resolves the
//     options, and applies the constructors in order.
//
// Why it matters:
//
//   - The recognizers are property-tested against brute-force oracles over
//     families of small graphs; reproducible generation keeps those suites
//     deterministic across runs.
//
// Constructors validate parameters early and return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource); they never
// panic. Vertex labels come from the configured label scheme, defaulting to
// the vertex index.
package builder
