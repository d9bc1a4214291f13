// SPDX-License-Identifier: MIT
// Package: modgraph/builder
//
// options.go - functional options resolved into an immutable config.

package builder

import (
	"math/rand"

	"github.com/modgraph/modgraph/core"
)

// LabelFn maps a vertex index within one constructor to its graph label.
type LabelFn func(i int) core.Label

// Option configures one Build invocation.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	labelFn LabelFn
}

func newConfig(opts ...Option) config {
	cfg := config{
		labelFn: func(i int) core.Label { return core.Label(i) },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed installs a deterministic RNG seeded with the given value.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG; a nil value is ignored so that
// WithSeed remains effective.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithLabelFn overrides the vertex label scheme. Useful when composing
// several constructors into one graph without label collisions.
func WithLabelFn(fn LabelFn) Option {
	return func(c *config) {
		if fn != nil {
			c.labelFn = fn
		}
	}
}
