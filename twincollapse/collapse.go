// The post-order collapse walk and its graph/tree co-mutation.
package twincollapse

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/modgraph/modgraph/core"
	"github.com/modgraph/modgraph/mdtree"
)

// Collapse merges twin leaves throughout g and t, mutating both. On
// return the pair is consistent: every surviving tree Leaf wraps a valid
// slot of the shrunken graph.
//
// A returned error wrapping ErrOracleUnavailable or ErrOracleProtocol is
// recoverable: the affected Prime modules were skipped conservatively and
// the graph/tree pair is still valid. ErrNilInput and ErrTreeContract are
// not; the structures must be considered undefined after them.
func Collapse(g *core.Graph, t *mdtree.Tree, opts ...Option) error {
	if g == nil || t == nil {
		return ErrNilInput
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if t.Root() == mdtree.NoID {
		return nil
	}

	c := &collapser{g: g, t: t, gmap: core.NewSwapRemoveMap(g.Len()), cfg: cfg}
	if err := c.walk(t.Root()); err != nil {
		return err
	}

	// Leaves still carry pre-collapse slots; rewrite them onto the
	// compacted numbering.
	t.ForEachLeaf(func(id mdtree.NodeID, n core.Node) {
		t.SetLeafNode(id, c.gmap.Map(n))
	})

	return c.oracleErr
}

type collapser struct {
	g    *core.Graph
	t    *mdtree.Tree
	gmap *core.SwapRemoveMap
	cfg  config

	// oracleErr keeps the first recoverable oracle failure; the walk
	// continues conservatively past it.
	oracleErr error
}

func (c *collapser) walk(module mdtree.NodeID) error {
	switch c.t.Kind(module) {
	case mdtree.KindLeaf:
		return nil
	case mdtree.KindPrime:
		return c.walkPrime(module)
	default:
		return c.walkDegenerate(module)
	}
}

// walkPrime recurses into every child and, when all of them end up as
// Leaves, decides whether the whole module collapses to one
// representative.
func (c *collapser) walkPrime(module mdtree.NodeID) error {
	for _, child := range c.t.Children(module) {
		if err := c.walk(child); err != nil {
			return err
		}
	}

	children := c.t.Children(module)
	for _, child := range children {
		if c.t.Kind(child) != mdtree.KindLeaf {
			return nil
		}
	}

	if len(children) <= maxUnconditionalPrime {
		c.collapseAllLeaves(module, children)

		return nil
	}

	if c.cfg.oracle == nil {
		c.cfg.logger.Debug("prime module kept: no line-graph oracle",
			zap.Int("module", module),
			zap.Int("children", len(children)))

		return nil
	}

	reps := make([]core.Node, len(children))
	for i, child := range children {
		reps[i] = c.gmap.Map(c.t.LeafNode(child))
	}
	isLine, err := c.cfg.oracle.IsLineGraph(c.g.Subgraph(reps))
	if err != nil {
		if c.oracleErr == nil {
			c.oracleErr = fmt.Errorf("prime module %d: %w", module, err)
		}
		c.cfg.logger.Debug("prime module kept: oracle failed",
			zap.Int("module", module),
			zap.Error(err))

		return nil
	}
	if !isLine {
		c.cfg.logger.Debug("prime module kept: quotient is not a line graph",
			zap.Int("module", module),
			zap.Int("children", len(children)))

		return nil
	}
	c.collapseAllLeaves(module, children)

	return nil
}

// collapseAllLeaves removes every leaf of the module but the first and
// retargets the module as that survivor.
func (c *collapser) collapseAllLeaves(module mdtree.NodeID, children []mdtree.NodeID) {
	survivor := c.t.LeafNode(children[0])
	for _, child := range children[1:] {
		c.removeGraphNode(c.t.LeafNode(child))
	}
	c.t.SetToLeaf(module, survivor)
	c.cfg.logger.Debug("prime module collapsed",
		zap.Int("module", module),
		zap.Int("merged", len(children)-1))
}

// walkDegenerate handles Series and Parallel modules: after recursion all
// Leaf children are mutual twins, so the first survives and the rest go.
func (c *collapser) walkDegenerate(module mdtree.NodeID) error {
	keptLeaf := mdtree.NoID
	nonLeafRemain := false
	merged := 0
	for _, child := range c.t.Children(module) {
		if err := c.walk(child); err != nil {
			return err
		}
		if c.t.Kind(child) != mdtree.KindLeaf {
			nonLeafRemain = true
			continue
		}
		if keptLeaf == mdtree.NoID {
			keptLeaf = child
			continue
		}
		c.removeGraphNode(c.t.LeafNode(child))
		c.t.Remove(child)
		merged++
	}
	if merged > 0 {
		c.cfg.logger.Debug("twin leaves merged",
			zap.Int("module", module),
			zap.Stringer("kind", c.t.Kind(module)),
			zap.Int("merged", merged))
	}

	if nonLeafRemain {
		return nil
	}
	if keptLeaf == mdtree.NoID {
		return fmt.Errorf("%w: %s module %d has no children",
			ErrTreeContract, c.t.Kind(module), module)
	}
	c.t.SetToLeaf(module, c.t.LeafNode(keptLeaf))

	return nil
}

// removeGraphNode deletes the graph vertex known by its pre-collapse slot
// id, keeping the correspondence map in step.
func (c *collapser) removeGraphNode(original core.Node) {
	c.g.RemoveNode(c.gmap.Map(original))
	c.gmap.SwapRemove(original)
}
