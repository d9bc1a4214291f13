package simplicial

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/decompose"
	"github.com/modgraph/modgraph/mdtree"
)

var (
	// ErrNilInput is returned when the graph or tree is nil.
	ErrNilInput = errors.New("simplicial: nil graph or tree")

	// ErrDisconnected is returned for a Parallel root; the enumeration is
	// defined per connected component.
	ErrDisconnected = errors.New("simplicial: graph is disconnected")

	// ErrNotClawFree is returned when the search reaches a configuration
	// the claw-free precondition rules out.
	ErrNotClawFree = errors.New("simplicial: graph is not claw-free")

	// ErrTreeContract is returned when the decomposition tree violates its
	// shape contract, such as a Series child under a Series module.
	ErrTreeContract = errors.New("simplicial: decomposition tree violates module contract")
)

// Option configures Enumerate.
type Option func(*config)

type config struct {
	decomposer mdtree.Decomposer
}

func defaultConfig() config {
	return config{decomposer: decompose.Decompose}
}

// WithDecomposer substitutes the decomposition oracle used when the search
// re-derives trees of intermediate subgraphs. A nil value is ignored.
func WithDecomposer(d mdtree.Decomposer) Option {
	return func(c *config) {
		if d != nil {
			c.decomposer = d
		}
	}
}

// CliqueSet is a deduplicated collection of simplicial cliques, each a
// sorted slice of graph labels.
type CliqueSet struct {
	cliques [][]core.Label
	keys    *hashset.Set
}

func newCliqueSet() *CliqueSet {
	return &CliqueSet{keys: hashset.New()}
}

// add records one clique, sorting it and dropping empties and duplicates.
func (s *CliqueSet) add(clique []core.Label) {
	if len(clique) == 0 {
		return
	}
	sorted := append([]core.Label(nil), clique...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := labelKey(sorted)
	if s.keys.Contains(key) {
		return
	}
	s.keys.Add(key)
	s.cliques = append(s.cliques, sorted)
}

// Len returns the number of cliques.
func (s *CliqueSet) Len() int { return len(s.cliques) }

// Contains reports whether the given label set is one of the cliques.
// The argument order does not matter.
func (s *CliqueSet) Contains(clique []core.Label) bool {
	sorted := append([]core.Label(nil), clique...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return s.keys.Contains(labelKey(sorted))
}

// Cliques returns the cliques in discovery order. The slices are shared;
// callers must not mutate them.
func (s *CliqueSet) Cliques() [][]core.Label {
	return s.cliques
}

// labelKey canonicalizes a sorted label slice for set membership.
func labelKey(sorted []core.Label) string {
	var b strings.Builder
	for i, l := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(l), 10))
	}

	return b.String()
}
