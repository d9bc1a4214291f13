// This file declares the sentinels, the oracle contract, and the
// functional options.
package twincollapse

import (
	"errors"

	"go.uber.org/zap"

	"github.com/modgraph/modgraph/core"
)

var (
	// ErrNilInput indicates a nil graph or tree.
	ErrNilInput = errors.New("twincollapse: nil graph or tree")

	// ErrTreeContract indicates a Series or Parallel module without
	// children, which no valid decomposition produces.
	ErrTreeContract = errors.New("twincollapse: decomposition tree violates its contract")

	// ErrOracleUnavailable indicates the line-graph oracle process could
	// not be spawned or spoken to.
	ErrOracleUnavailable = errors.New("twincollapse: line-graph oracle unavailable")

	// ErrOracleProtocol indicates the oracle replied with something other
	// than a boolean line.
	ErrOracleProtocol = errors.New("twincollapse: line-graph oracle protocol violation")
)

// maxUnconditionalPrime is the largest all-leaf Prime module collapsed
// without consulting the oracle.
const maxUnconditionalPrime = 4

// LineGraphOracle answers whether a graph is a line graph. Used for
// all-leaf Prime modules with more than maxUnconditionalPrime children,
// whose quotient is safe to merge exactly when it is a line graph.
type LineGraphOracle interface {
	IsLineGraph(g *core.Graph) (bool, error)
}

// OracleFunc adapts a function to the LineGraphOracle interface.
type OracleFunc func(g *core.Graph) (bool, error)

// IsLineGraph implements LineGraphOracle.
func (f OracleFunc) IsLineGraph(g *core.Graph) (bool, error) { return f(g) }

// Option configures Collapse.
type Option func(*config)

type config struct {
	oracle LineGraphOracle
	logger *zap.Logger
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

// WithOracle supplies the line-graph oracle consulted for large all-leaf
// Prime modules. Without one those modules are left uncollapsed.
func WithOracle(o LineGraphOracle) Option {
	return func(c *config) { c.oracle = o }
}

// WithLogger routes collapse decisions to l at debug level. A nil l keeps
// the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
