// SPDX-License-Identifier: MIT
// Package: modgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context with %w wrapping, never by renaming
//     the sentinel.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (Complete needs n >= 1, Cycle n >= 3, Path n >= 2, Star k >= 1).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator received unusable input,
// such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
